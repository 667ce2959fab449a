package renderer

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

func renderDoc(t *testing.T, doc models.ResumeDocument, settings models.PresentationSettings, order []models.SectionID, mode RenderMode) *goquery.Document {
	t.Helper()

	html, err := NewEngine().Render(&doc, settings, order, mode)
	require.NoError(t, err)

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return parsed
}

func sampleDoc() models.ResumeDocument {
	return models.ResumeDocument{
		Basics: models.Basics{
			Name:  "Ada Lovelace",
			Title: "Software Engineer",
			Email: models.ContactField{Value: "ada@example.com"},
		},
		Summary: "<p>Engineer focused on <strong>reliability</strong>.</p>",
		Experience: []models.Experience{
			{
				ID:               "exp-1",
				CompanyName:      "Acme",
				Title:            "Staff Engineer",
				StartDate:        "2019-05",
				CurrentlyWorking: true,
			},
		},
		Skills: []models.Skill{
			{ID: "sk-1", Name: "Backend", Keywords: []string{"Go", "Redis"}},
		},
	}
}

func TestRenderBasicsAlwaysFirst(t *testing.T) {
	doc := renderDoc(t, sampleDoc(), models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)

	assert.Equal(t, "Ada Lovelace", doc.Find(".basics h1").Text())
	assert.Equal(t, 1, doc.Find(".basics").Length())

	// basics precede every section in document order
	page := doc.Find(".page").Children()
	require.Greater(t, page.Length(), 1)
	assert.True(t, page.First().HasClass("basics"))
}

func TestRenderOmitsEmptySections(t *testing.T) {
	doc := renderDoc(t, sampleDoc(), models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)

	headings := doc.Find(".resume-section h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Contains(t, headings, "Summary")
	assert.Contains(t, headings, "Experience")
	assert.Contains(t, headings, "Skills")
	assert.NotContains(t, headings, "Awards")
	assert.NotContains(t, headings, "Education")
}

func TestRenderFollowsSectionOrder(t *testing.T) {
	order := store.Reorder(store.DefaultSectionOrder(), models.SectionSkills, models.SectionSummary)
	doc := renderDoc(t, sampleDoc(), models.DefaultPresentationSettings(), order, ModePreview)

	headings := doc.Find(".resume-section h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	require.Len(t, headings, 3)
	assert.Equal(t, []string{"Skills", "Summary", "Experience"}, headings)
}

func TestRenderPresentForCurrentExperience(t *testing.T) {
	doc := renderDoc(t, sampleDoc(), models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)

	period := doc.Find(".section-experience .entry-period").First().Text()
	assert.Equal(t, "2019-05 – Present", period)
}

func TestRenderSectionTitleOverride(t *testing.T) {
	sample := sampleDoc()
	sample.SectionTitles = map[models.SectionID]string{models.SectionExperience: "Berufserfahrung"}

	doc := renderDoc(t, sample, models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)
	assert.Equal(t, "Berufserfahrung", doc.Find(".section-experience h2").Text())
}

func TestRenderSanitizesRichText(t *testing.T) {
	sample := sampleDoc()
	sample.Summary = `<p>Safe <strong>bold</strong></p><script>alert(1)</script><img src=x onerror=alert(1)>`

	doc := renderDoc(t, sample, models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)

	section := doc.Find(".section-summary .rich")
	assert.Equal(t, 1, section.Find("strong").Length())
	assert.Equal(t, 0, section.Find("script").Length())
	assert.Equal(t, 0, section.Find("img").Length())
}

func TestRenderKeywordChips(t *testing.T) {
	doc := renderDoc(t, sampleDoc(), models.DefaultPresentationSettings(), store.DefaultSectionOrder(), ModePreview)

	chips := doc.Find(".section-skills .keyword").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Go", "Redis"}, chips)
}

func TestRenderPageBreakOverlayPreviewOnly(t *testing.T) {
	settings := models.DefaultPresentationSettings()

	preview := renderDoc(t, sampleDoc(), settings, store.DefaultSectionOrder(), ModePreview)
	assert.Equal(t, 1, preview.Find(".page-break-overlay").Length())

	settings.ShowPageBreaks = false
	hidden := renderDoc(t, sampleDoc(), settings, store.DefaultSectionOrder(), ModePreview)
	assert.Equal(t, 0, hidden.Find(".page-break-overlay").Length())

	settings.ShowPageBreaks = true
	export := renderDoc(t, sampleDoc(), settings, store.DefaultSectionOrder(), ModeExport)
	assert.Equal(t, 0, export.Find(".page-break-overlay").Length())
}

func TestRenderDeterministic(t *testing.T) {
	sample := sampleDoc()
	settings := models.DefaultPresentationSettings()
	order := store.DefaultSectionOrder()

	e := NewEngine()
	first, err := e.Render(&sample, settings, order, ModePreview)
	require.NoError(t, err)
	second, err := e.Render(&sample, settings, order, ModePreview)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPageGeometry(t *testing.T) {
	assert.Equal(t, 794, PageWidthPx())
	assert.Equal(t, 1123, PageHeightPx())
	assert.Equal(t, 60, MMToPx(16))
}
