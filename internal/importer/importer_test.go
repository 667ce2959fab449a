package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/store"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

const sampleResumeText = `Ada Lovelace
Software Engineer
ada@example.com | +44 20 7946 0958 | London

Summary
Engineer with ten years of experience building distributed systems.

Experience
Acme Corp - Staff Engineer (2019 - Present)
Led a team of five engineers. Developed and implemented the billing platform.

Education
University of Cambridge - Bachelor of Science, graduated 2012.

Skills
Go, Redis, PostgreSQL, Kubernetes. Managed production infrastructure and designed APIs.`

func populatedSession(t *testing.T) *store.Session {
	t.Helper()
	sess := store.NewSession("resume-rt")

	_, err := sess.Apply(store.SetBasics{Basics: models.Basics{
		Name:  "Ada Lovelace",
		Email: models.ContactField{Value: "ada@example.com"},
	}})
	require.NoError(t, err)

	_, err = sess.Apply(store.AppendListItem{
		Section: models.SectionExperience,
		Item: models.Experience{
			CompanyName:      "Acme",
			Title:            "Engineer",
			StartDate:        "2019-05",
			CurrentlyWorking: true,
		},
	})
	require.NoError(t, err)

	require.NoError(t, sess.Reorder(models.SectionSkills, models.SectionSummary))
	return sess
}

func TestStructuredRoundTrip(t *testing.T) {
	im := NewImporter(nil)
	source := populatedSession(t)

	exported, err := im.ExportJSON(source)
	require.NoError(t, err)

	target := store.NewSession("resume-copy")
	_, err = im.ImportStructured(target, exported)
	require.NoError(t, err)

	assert.Equal(t, source.Snapshot(), target.Snapshot())
}

func TestStructuredImportRejectsInvalidDocument(t *testing.T) {
	im := NewImporter(nil)
	sess := populatedSession(t)
	before := sess.Snapshot()

	payload := `{"document": {"basics": {"name": ""}}}`
	_, err := im.ImportStructured(sess, []byte(payload))
	require.Error(t, err)

	var cerr *utils.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 422, cerr.Code)
	assert.Contains(t, cerr.Detail, "basics.name")

	// rejected import leaves the session untouched
	assert.Equal(t, before, sess.Snapshot())
}

func TestStructuredImportRejectsMalformedJSON(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	_, err := im.ImportStructured(sess, []byte(`{not json`))
	require.Error(t, err)

	var cerr *utils.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 422, cerr.Code)
}

func TestStructuredImportBareDocumentGetsDefaults(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	payload := `{"basics": {"name": "Ada Lovelace"}}`
	env, err := im.ImportStructured(sess, []byte(payload))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultPresentationSettings(), env.Settings)
	assert.Equal(t, store.DefaultSectionOrder(), env.SectionOrder)
}

func TestStructuredImportBackfillsMissingItemIDs(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	payload := `{"document": {
		"basics": {"name": "Jane Doe"},
		"experience": [
			{"company_name": "Acme", "title": "Engineer", "start_date": "2020-01", "currently_working": true},
			{"company_name": "Globex", "title": "Analyst", "start_date": "2018-01", "end_date": "2019-12"}
		]
	}}`
	env, err := im.ImportStructured(sess, []byte(payload))
	require.NoError(t, err)

	require.Len(t, env.Document.Experience, 2)
	require.NotEmpty(t, env.Document.Experience[0].ID)
	require.NotEmpty(t, env.Document.Experience[1].ID)
	assert.NotEqual(t, env.Document.Experience[0].ID, env.Document.Experience[1].ID)
}

func TestStructuredImportRegeneratesDuplicateItemIDs(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	payload := `{"document": {
		"basics": {"name": "Jane Doe"},
		"skills": [
			{"id": "dup", "name": "Go"},
			{"id": "dup", "name": "Redis"},
			{"id": "kept", "name": "PostgreSQL"}
		]
	}}`
	env, err := im.ImportStructured(sess, []byte(payload))
	require.NoError(t, err)

	require.Len(t, env.Document.Skills, 3)
	assert.Equal(t, "dup", env.Document.Skills[0].ID)
	assert.NotEqual(t, "dup", env.Document.Skills[1].ID)
	assert.NotEmpty(t, env.Document.Skills[1].ID)
	assert.Equal(t, "kept", env.Document.Skills[2].ID)
}

func TestImportTextRejectsImplausibleContent(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	_, err := im.ImportText(context.Background(), sess, "2 cups of flour, 3 eggs, a recipe for pancakes. Mix the ingredients.")
	require.Error(t, err)

	var cerr *utils.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 422, cerr.Code)
	assert.Equal(t, "Content does not look like a resume", cerr.Message)
}

func TestApplyExtractedRejectsStructurallyEmptyDocument(t *testing.T) {
	im := NewImporter(nil)
	sess := populatedSession(t)
	before := sess.Snapshot()

	// A vendor name alone, as a vision call on an invoice photo would return
	doc := &models.ResumeDocument{
		Basics: models.Basics{Name: "Acme Supplies Ltd"},
	}
	_, err := im.applyExtracted(sess, doc)
	require.Error(t, err)

	var cerr *utils.CustomError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 422, cerr.Code)

	// rejected extraction leaves the session untouched
	assert.Equal(t, before, sess.Snapshot())
}

func TestApplyExtractedAcceptsStructuredResume(t *testing.T) {
	im := NewImporter(nil)
	sess := store.NewSession("resume-1")

	doc := &models.ResumeDocument{
		Basics: models.Basics{
			Name:  "Ada Lovelace",
			Email: models.ContactField{Value: "ada@example.com"},
		},
		Experience: []models.Experience{
			{CompanyName: "Acme", Title: "Engineer", StartDate: "2019-05", CurrentlyWorking: true},
		},
	}
	applied, err := im.applyExtracted(sess, doc)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", applied.Basics.Name)
}

func TestCheckDocumentPlausibility(t *testing.T) {
	tests := []struct {
		name string
		doc  models.ResumeDocument
		want bool
	}{
		{
			name: "name only",
			doc:  models.ResumeDocument{Basics: models.Basics{Name: "Acme Supplies Ltd"}},
			want: false,
		},
		{
			name: "contact and experience",
			doc: models.ResumeDocument{
				Basics:     models.Basics{Name: "Ada", Phone: models.ContactField{Value: "+44 20 7946 0958"}},
				Experience: []models.Experience{{CompanyName: "Acme"}},
			},
			want: true,
		},
		{
			name: "education and skills",
			doc: models.ResumeDocument{
				Basics:    models.Basics{Name: "Ada"},
				Education: []models.Education{{InstitutionName: "Cambridge"}},
				Skills:    []models.Skill{{Name: "Go"}},
			},
			want: true,
		},
		{
			name: "short summary alone",
			doc: models.ResumeDocument{
				Basics:  models.Basics{Name: "Ada"},
				Summary: "Hello there",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckDocumentPlausibility(&tt.doc)
			assert.Equal(t, tt.want, result.Plausible)
		})
	}
}

func TestCheckPlausibilityAcceptsResumeText(t *testing.T) {
	result := CheckPlausibility(sampleResumeText)
	assert.True(t, result.Plausible)
	assert.GreaterOrEqual(t, result.Score, 2)
	assert.Contains(t, result.Signals, "email")
	assert.Contains(t, result.Signals, "section_headings")
}

func TestCheckPlausibilityRejectsShortNoise(t *testing.T) {
	result := CheckPlausibility("hello world")
	assert.False(t, result.Plausible)
	assert.NotEmpty(t, result.Reason)
}

func TestCheckPlausibilityRejectsOffDomainDocument(t *testing.T) {
	text := `Invoice #42 from 2023. Order total: $120.00.
Shipping address: 1 Main St. Unsubscribe from these receipt emails anytime.
` + strings.Repeat("line item description quantity price subtotal tax total due payment ", 10)

	result := CheckPlausibility(text)
	assert.False(t, result.Plausible)
}

func TestCheckPlausibilityStripsHTML(t *testing.T) {
	html := `<html><head><script>var tracking = true;</script></head><body>` +
		strings.ReplaceAll(sampleResumeText, "\n", "<br>") + `</body></html>`

	result := CheckPlausibility(html)
	assert.True(t, result.Plausible)
}

func TestExtractPDFTextRejectsEmptyAndOversized(t *testing.T) {
	_, err := ExtractPDFText(nil)
	assert.Error(t, err)

	_, err = ExtractPDFText(make([]byte, maxPDFSizeBytes+1))
	assert.Error(t, err)
}

func TestExtractPDFTextRejectsGarbage(t *testing.T) {
	_, err := ExtractPDFText([]byte("not a pdf at all"))
	assert.Error(t, err)
}
