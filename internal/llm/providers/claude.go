package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// RewriteText rewrites a snippet in the requested tone, preserving facts
func (cp *ClaudeProvider) RewriteText(ctx context.Context, text, tone string) (string, error) {
	prompt := fmt.Sprintf(`You are a resume writing assistant. Rewrite the text below in a %s tone.

RULES:
1. Preserve every fact: names, numbers, dates, technologies. Never invent achievements.
2. Keep roughly the same length.
3. Return ONLY the rewritten text, no explanation, no quotes around it.

TEXT:
%s`, tone, text)

	return cp.completeText(ctx, prompt)
}

// FixTypos corrects spelling and grammar without changing meaning
func (cp *ClaudeProvider) FixTypos(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`You are a proofreader. Correct spelling, grammar and punctuation in the text below.

RULES:
1. Change nothing but errors: keep wording, tone and formatting as-is.
2. If the text has no errors, return it unchanged.
3. Return ONLY the corrected text, no explanation, no quotes around it.

TEXT:
%s`, text)

	return cp.completeText(ctx, prompt)
}

// CustomizeText transforms a snippet according to a free-form directive
func (cp *ClaudeProvider) CustomizeText(ctx context.Context, text, directive string) (string, error) {
	prompt := fmt.Sprintf(`You are a resume writing assistant. Apply the following instruction to the text below: %s

RULES:
1. Preserve every fact: names, numbers, dates, technologies. Never invent achievements.
2. Return ONLY the resulting text, no explanation, no quotes around it.

TEXT:
%s`, directive, text)

	return cp.completeText(ctx, prompt)
}

// StructureResume converts raw resume text into a structured document
func (cp *ClaudeProvider) StructureResume(ctx context.Context, rawText string) (*models.ResumeDocument, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume structuring with Claude", map[string]interface{}{
		"text_length": len(rawText),
		"provider":    "claude",
	})

	// Rough estimation: 3 chars per token
	maxContentLength := cp.config.LLM.MaxTokens * 3
	if len(rawText) > maxContentLength {
		rawText = rawText[:maxContentLength] + "..."
		cp.logger.Debug("Resume text truncated to fit token limits")
	}

	prompt := cp.buildStructurePrompt() + "\n\nRESUME CONTENT:\n" + rawText

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	doc, err := cp.parseDocumentResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	cp.logger.Info("Resume structuring completed successfully", map[string]interface{}{
		"name":            doc.Basics.Name,
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})

	return doc, nil
}

// StructureResumeFromImage converts a resume page image into a structured document
func (cp *ClaudeProvider) StructureResumeFromImage(ctx context.Context, imageBase64, mediaType string) (*models.ResumeDocument, error) {
	startTime := time.Now()

	cp.logger.Info("Starting resume structuring from image with Claude", map[string]interface{}{
		"media_type": mediaType,
		"provider":   "claude",
	})

	prompt := cp.buildStructurePrompt() + "\n\nThe resume is provided as the attached image. Transcribe and structure its content."

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewImageBlockBase64(mediaType, imageBase64),
				{OfText: &anthropic.TextBlockParam{Text: prompt}},
			},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	doc, err := cp.parseDocumentResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	cp.logger.Info("Resume structuring from image completed successfully", map[string]interface{}{
		"name":            doc.Basics.Name,
		"processing_time": time.Since(startTime).String(),
		"provider":        "claude",
	})

	return doc, nil
}

// ReviewResume scores a document against a job description
func (cp *ClaudeProvider) ReviewResume(ctx context.Context, doc *models.ResumeDocument, jobDescription string) (*models.ReviewAnalysis, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume for review: %w", err)
	}

	prompt := fmt.Sprintf(`You are an experienced recruiter and resume reviewer. Analyze the resume below against the job description and return your analysis as a JSON object with exactly these fields:

{
  "overall_score": number - Overall resume quality from 0 to 100,
  "job_fit_percent": number - Match against the job description from 0 to 100,
  "strengths": ["array of strings - What the resume does well"],
  "weaknesses": ["array of strings - What holds the resume back"],
  "dimensions": [{"name": "string", "score": number 0-100, "feedback": "string"}],
  "recommendations": [{"priority": "high|medium|low", "section": "string", "current": "string", "suggested": "string", "reasoning": "string"}],
  "next_steps": ["array of strings - Concrete ordered actions"]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. Score the dimensions: content quality, relevance to the role, clarity, impact evidence
3. Recommendations must quote the current content they apply to
4. If the job description is empty, score general resume quality and set job_fit_percent to 0

JOB DESCRIPTION:
%s

RESUME (JSON):
%s`, jobDescription, string(docJSON))

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	raw, err := responseText(response)
	if err != nil {
		return nil, err
	}

	var analysis models.ReviewAnalysis
	if err := json.Unmarshal([]byte(StripMarkdownFences(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w", err)
	}
	return &analysis, nil
}

// buildStructurePrompt describes the document JSON shape shared by the text
// and image structuring paths
func (cp *ClaudeProvider) buildStructurePrompt() string {
	return `You are a resume parser. Convert the provided resume content into a JSON object with exactly this structure:

{
  "basics": {
    "name": "string", "title": "string",
    "email": {"value": "string"}, "phone": {"value": "string"}, "location": {"value": "string"},
    "links": [{"label": "string", "url": "string - absolute URL"}],
    "alignment": ""
  },
  "summary": "string - professional summary as plain text or simple HTML",
  "experience": [{"company_name": "string", "title": "string", "location": "string", "start_date": "string", "end_date": "string", "currently_working": boolean, "summary": "string"}],
  "education": [{"institution_name": "string", "degree": "string", "field_of_study": "string", "start_date": "string", "end_date": "string", "currently_studying": boolean, "summary": "string"}],
  "projects": [{"name": "string", "description": "string", "url": "string", "keywords": ["string"], "summary": "string"}],
  "skills": [{"name": "string - skill group name", "level": "string", "keywords": ["string"]}],
  "languages": [{"name": "string", "proficiency": "string"}],
  "certifications": [{"name": "string", "issuer": "string", "date": "string", "url": "string"}],
  "awards": [{"name": "string", "issuer": "string", "date": "string", "summary": "string"}],
  "volunteering": [{"organization": "string", "role": "string", "start_date": "string", "end_date": "string", "summary": "string"}]
}

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. If information is not found, use empty string "" for strings, empty array [] for arrays, and false for booleans
3. Dates stay in the format they appear in ("2021", "Mar 2021", "2021-03" are all fine)
4. Set currently_working/currently_studying to true only when the entry says so (e.g. "Present")
5. Do not invent content that is not in the resume
6. Omit the "id" field everywhere; ids are assigned later`
}

func (cp *ClaudeProvider) completeText(ctx context.Context, prompt string) (string, error) {
	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	text, err := responseText(response)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseDocumentResponse parses the Claude API response into a resume document
// and assigns fresh ids to every list item
func (cp *ClaudeProvider) parseDocumentResponse(response *anthropic.Message) (*models.ResumeDocument, error) {
	text, err := responseText(response)
	if err != nil {
		return nil, err
	}
	text = StripMarkdownFences(text)

	var doc models.ResumeDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w, response: %s", err, text)
	}

	AssignItemIDs(&doc)
	return &doc, nil
}

// AssignItemIDs gives every list item a fresh unique id. Structured output
// from the model never carries ids.
func AssignItemIDs(doc *models.ResumeDocument) {
	for i := range doc.Basics.Links {
		doc.Basics.Links[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Experience {
		doc.Experience[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Education {
		doc.Education[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Projects {
		doc.Projects[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Skills {
		doc.Skills[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Languages {
		doc.Languages[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Certifications {
		doc.Certifications[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Awards {
		doc.Awards[i].ID = utils.GenerateItemID()
	}
	for i := range doc.Volunteering {
		doc.Volunteering[i].ID = utils.GenerateItemID()
	}
}

// StripMarkdownFences removes a wrapping ```json / ``` code fence when the
// model ignores the plain-JSON instruction
func StripMarkdownFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

func responseText(response *anthropic.Message) (string, error) {
	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var text string
	for _, content := range response.Content {
		textContent := content.AsText()
		text = textContent.Text
		break
	}

	if text == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}
	return text, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
