package llm

import (
	"context"

	"resumeforge/pkg/models"
)

// Provider defines the interface for LLM providers backing the writing
// assistant and import/review pipelines
type Provider interface {
	// RewriteText rewrites a snippet in the requested tone, preserving facts
	RewriteText(ctx context.Context, text, tone string) (string, error)

	// FixTypos corrects spelling and grammar without changing meaning
	FixTypos(ctx context.Context, text string) (string, error)

	// CustomizeText transforms a snippet according to a free-form directive
	CustomizeText(ctx context.Context, text, directive string) (string, error)

	// StructureResume converts raw resume text into a structured document
	StructureResume(ctx context.Context, rawText string) (*models.ResumeDocument, error)

	// StructureResumeFromImage converts a resume page image into a structured
	// document. The image is base64-encoded; mediaType is its MIME type.
	StructureResumeFromImage(ctx context.Context, imageBase64, mediaType string) (*models.ResumeDocument, error)

	// ReviewResume scores a document against a job description
	ReviewResume(ctx context.Context, doc *models.ResumeDocument, jobDescription string) (*models.ReviewAnalysis, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
