package renderer

import "math"

// A4 page geometry. The preview is laid out in CSS pixels at 96 DPI, so
// millimetres convert at 96/25.4 px per mm.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	PxPerMM      = 96.0 / 25.4
)

// PageWidthPx is the A4 width in CSS pixels (794 at 96 DPI)
func PageWidthPx() int {
	return int(math.Round(PageWidthMM * PxPerMM))
}

// PageHeightPx is the A4 height in CSS pixels (1123 at 96 DPI)
func PageHeightPx() int {
	return int(math.Round(PageHeightMM * PxPerMM))
}

// MMToPx converts a millimetre length to rounded CSS pixels
func MMToPx(mm float64) int {
	return int(math.Round(mm * PxPerMM))
}
