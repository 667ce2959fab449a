package store

import "resumeforge/pkg/models"

// Clamp forces a requested value into the [min,max] range of one numeric
// presentation field: value = max(min, min(max, requested))
func Clamp(field string, requested float64) float64 {
	r, ok := models.SettingsRanges[field]
	if !ok {
		return requested
	}
	if requested < r.Min {
		return r.Min
	}
	if requested > r.Max {
		return r.Max
	}
	return requested
}

// ClampSettings forces every numeric field of the settings into range.
// Applied after imports so foreign documents cannot smuggle out-of-range
// values into the store.
func ClampSettings(s *models.PresentationSettings) {
	s.FontSize = Clamp(models.SettingFontSize, s.FontSize)
	s.LineHeight = Clamp(models.SettingLineHeight, s.LineHeight)
	s.SectionSpacing = Clamp(models.SettingSectionSpacing, s.SectionSpacing)
	s.PageMarginMM = Clamp(models.SettingPageMarginMM, s.PageMarginMM)
	s.Zoom = Clamp(models.SettingZoom, s.Zoom)
}

// ApplySettingsUpdate merges a per-field update into the settings, clamping
// every numeric value into range before storing
func ApplySettingsUpdate(s *models.PresentationSettings, req models.UpdateSettingsRequest) {
	if req.FontFamily != nil {
		s.FontFamily = *req.FontFamily
	}
	if req.FontCategory != nil {
		s.FontCategory = models.FontCategory(*req.FontCategory)
	}
	if req.FontSize != nil {
		s.FontSize = Clamp(models.SettingFontSize, *req.FontSize)
	}
	if req.LineHeight != nil {
		s.LineHeight = Clamp(models.SettingLineHeight, *req.LineHeight)
	}
	if req.SectionSpacing != nil {
		s.SectionSpacing = Clamp(models.SettingSectionSpacing, *req.SectionSpacing)
	}
	if req.PageMarginMM != nil {
		s.PageMarginMM = Clamp(models.SettingPageMarginMM, *req.PageMarginMM)
	}
	if req.Zoom != nil {
		s.Zoom = Clamp(models.SettingZoom, *req.Zoom)
	}
	if req.ShowPageBreaks != nil {
		s.ShowPageBreaks = *req.ShowPageBreaks
	}
}

// ResetZoomTarget computes the window-width-driven zoom a reset should land
// on. Four breakpoints, matching the preview pane widths the editor renders
// at.
func ResetZoomTarget(windowWidth int) float64 {
	switch {
	case windowWidth < 640:
		return 0.4
	case windowWidth < 1024:
		return 0.55
	case windowWidth < 1440:
		return 0.7
	default:
		return 0.85
	}
}
