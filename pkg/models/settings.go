package models

// FontCategory groups font families the way the font picker exposes them
type FontCategory string

const (
	FontCategorySans        FontCategory = "sans-serif"
	FontCategorySerif       FontCategory = "serif"
	FontCategoryMono        FontCategory = "monospace"
	FontCategoryDisplay     FontCategory = "display"
	FontCategoryHandwriting FontCategory = "handwriting"
	FontCategoryATS         FontCategory = "ats-friendly"
)

// PresentationSettings holds user-adjustable rendering parameters. They affect
// preview/export layout only, never resume content.
type PresentationSettings struct {
	FontFamily     string       `json:"font_family"`
	FontCategory   FontCategory `json:"font_category" validate:"omitempty,oneof=sans-serif serif monospace display handwriting ats-friendly"`
	FontSize       float64      `json:"font_size"`
	LineHeight     float64      `json:"line_height"`
	SectionSpacing float64      `json:"section_spacing"`
	PageMarginMM   float64      `json:"page_margin_mm"`
	Zoom           float64      `json:"zoom"`
	ShowPageBreaks bool         `json:"show_page_breaks"`
}

// SettingsRange is the enforced [min,max] interval and step increment of one
// numeric presentation field
type SettingsRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Numeric presentation fields, used as keys into the range table and in the
// settings mutation API
const (
	SettingFontSize       = "font_size"
	SettingLineHeight     = "line_height"
	SettingSectionSpacing = "section_spacing"
	SettingPageMarginMM   = "page_margin_mm"
	SettingZoom           = "zoom"
)

// SettingsRanges is the range table for all numeric presentation fields.
// Invariant: after any mutation every field lies inside its range.
var SettingsRanges = map[string]SettingsRange{
	SettingFontSize:       {Min: 10, Max: 20, Step: 0.5},
	SettingLineHeight:     {Min: 1.0, Max: 2.0, Step: 0.05},
	SettingSectionSpacing: {Min: 4, Max: 32, Step: 2},
	SettingPageMarginMM:   {Min: 8, Max: 30, Step: 1},
	SettingZoom:           {Min: 0.25, Max: 2.0, Step: 0.05},
}

// DefaultPresentationSettings returns the hard defaults used for a fresh
// resume or when an imported document carries no settings
func DefaultPresentationSettings() PresentationSettings {
	return PresentationSettings{
		FontFamily:     "Inter",
		FontCategory:   FontCategorySans,
		FontSize:       14,
		LineHeight:     1.4,
		SectionSpacing: 16,
		PageMarginMM:   16,
		Zoom:           1.0,
		ShowPageBreaks: true,
	}
}
