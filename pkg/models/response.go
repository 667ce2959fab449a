package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidationErrorResponse carries the path-qualified error list produced when
// a document fails whole-schema validation at an import boundary
type ValidationErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Fields    []string  `json:"fields"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ResumeResponse is the full state of one resume session
type ResumeResponse struct {
	ResumeID     string               `json:"resume_id"`
	Document     ResumeDocument       `json:"document"`
	Settings     PresentationSettings `json:"settings"`
	SectionOrder []SectionID          `json:"section_order"`
}

// ExportPDFResponse is the artifact descriptor returned by the export
// collaborator flow
type ExportPDFResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// TextTransformResponse carries the result of an AI text transform
type TextTransformResponse struct {
	Text string `json:"text"`
}

// ImportResponse reports a completed (all-or-nothing) import
type ImportResponse struct {
	ResumeID string         `json:"resume_id"`
	Source   string         `json:"source"` // "json", "pdf", "text", "image"
	Document ResumeDocument `json:"document"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
