package models

import "encoding/json"

// ReorderSectionsRequest asks to move one section to the slot currently
// occupied by another (array-move semantics, not a swap)
type ReorderSectionsRequest struct {
	From SectionID `json:"from" validate:"required"`
	To   SectionID `json:"to" validate:"required"`
}

// UpdateSettingsRequest carries per-field settings mutations. Unknown fields
// are rejected; numeric values are clamped into range before storing.
type UpdateSettingsRequest struct {
	FontFamily     *string  `json:"font_family,omitempty"`
	FontCategory   *string  `json:"font_category,omitempty"`
	FontSize       *float64 `json:"font_size,omitempty"`
	LineHeight     *float64 `json:"line_height,omitempty"`
	SectionSpacing *float64 `json:"section_spacing,omitempty"`
	PageMarginMM   *float64 `json:"page_margin_mm,omitempty"`
	Zoom           *float64 `json:"zoom,omitempty"`
	ShowPageBreaks *bool    `json:"show_page_breaks,omitempty"`
}

// UpdateSummaryRequest replaces the rich-text summary
type UpdateSummaryRequest struct {
	Summary string `json:"summary"`
}

// ResetZoomRequest carries the window width driving the reset target scale
type ResetZoomRequest struct {
	WindowWidth int `json:"window_width" validate:"required,gt=0"`
}

// UpdateSectionTitleRequest overrides one section's display name
type UpdateSectionTitleRequest struct {
	Title string `json:"title"`
}

// SectionItemRequest carries one raw section item payload. The concrete shape
// depends on the :section route parameter, so decoding is deferred.
type SectionItemRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

// ImportTextRequest carries free-form resume text for AI structuring
type ImportTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// ImportImageRequest carries image bytes (base64) for AI structuring
type ImportImageRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required,min=1"`
	MediaType   string `json:"media_type" validate:"required,oneof=image/jpeg image/png image/webp image/gif"`
}

// RewriteTextRequest asks the AI collaborator to rewrite a piece of content
type RewriteTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
	Tone string `json:"tone"`
}

// FixTyposRequest asks the AI collaborator to fix typos only
type FixTyposRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// CustomizeTextRequest asks the AI collaborator to transform content
// following a free-form user directive
type CustomizeTextRequest struct {
	Text      string `json:"text" validate:"required,min=1"`
	Directive string `json:"directive" validate:"required,min=1"`
}

// ReviewResumeRequest asks for a full CV review, optionally against a target
// job description
type ReviewResumeRequest struct {
	JobDescription string `json:"job_description"`
}

// ExportPDFRequest selects export options for the PDF pipeline
type ExportPDFRequest struct {
	FileName string `json:"file_name"`
}
