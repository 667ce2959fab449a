package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func validDocument() models.ResumeDocument {
	return models.ResumeDocument{
		Basics: models.Basics{
			Name:  "Ada Lovelace",
			Title: "Software Engineer",
			Email: models.ContactField{Value: "ada@example.com"},
		},
		Summary: "Engineer with a decade of experience.",
		Experience: []models.Experience{
			{
				ID:               "exp-1",
				CompanyName:      "Analytical Engines Ltd",
				Title:            "Principal Engineer",
				StartDate:        "2015-03",
				CurrentlyWorking: true,
			},
		},
	}
}

func TestValidateDocumentAcceptsValidDocument(t *testing.T) {
	doc := validDocument()
	result := ValidateDocument(&doc)
	assert.True(t, result.Valid(), "unexpected errors: %v", result.Strings())
}

func TestValidateDocumentRequiresName(t *testing.T) {
	doc := validDocument()
	doc.Basics.Name = ""

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "basics.name: Required")
}

func TestValidateDocumentRejectsMalformedEmail(t *testing.T) {
	doc := validDocument()
	doc.Basics.Email.Value = "not-an-email"

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "basics.email: Invalid email")
}

func TestValidateDocumentAllowsEmptyEmail(t *testing.T) {
	doc := validDocument()
	doc.Basics.Email.Value = ""

	result := ValidateDocument(&doc)
	assert.True(t, result.Valid(), "unexpected errors: %v", result.Strings())
}

func TestValidateDocumentRequiresEndDateWhenNotCurrent(t *testing.T) {
	doc := validDocument()
	doc.Experience[0].CurrentlyWorking = false
	doc.Experience[0].EndDate = ""

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(),
		"experience[0].end_date: End date is required unless currently working")
}

func TestValidateDocumentAcceptsEndDateWhenNotCurrent(t *testing.T) {
	doc := validDocument()
	doc.Experience[0].CurrentlyWorking = false
	doc.Experience[0].EndDate = "2020-06"

	result := ValidateDocument(&doc)
	assert.True(t, result.Valid(), "unexpected errors: %v", result.Strings())
}

func TestValidateDocumentRejectsRelativeProjectURL(t *testing.T) {
	doc := validDocument()
	doc.Projects = []models.Project{
		{ID: "proj-1", Name: "ResumeForge", URL: "/not/absolute"},
	}

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "projects[0].url: Invalid URL")
}

func TestValidateDocumentAcceptsAbsoluteProjectURL(t *testing.T) {
	doc := validDocument()
	doc.Projects = []models.Project{
		{ID: "proj-1", Name: "ResumeForge", URL: "https://example.com/repo"},
	}

	result := ValidateDocument(&doc)
	assert.True(t, result.Valid(), "unexpected errors: %v", result.Strings())
}

func TestValidateDocumentRejectsInvalidAlignment(t *testing.T) {
	doc := validDocument()
	doc.Basics.Alignment = "justify"

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "basics.alignment: Invalid value")
}

func TestValidateDocumentCollectsMultipleErrors(t *testing.T) {
	doc := validDocument()
	doc.Basics.Name = ""
	doc.Experience = append(doc.Experience, models.Experience{ID: "exp-2"})

	result := ValidateDocument(&doc)
	require.False(t, result.Valid())

	paths := make(map[string]bool)
	for _, fe := range result.Errors {
		paths[fe.Path] = true
	}
	assert.True(t, paths["basics.name"])
	assert.True(t, paths["experience[1].company_name"])
	assert.True(t, paths["experience[1].title"])
	assert.True(t, paths["experience[1].start_date"])
}

func TestValidateSectionAdvisory(t *testing.T) {
	result := ValidateSection(&models.Skill{Name: ""})
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "name: Required")
}

func TestValidateEnvelopeChecksSettings(t *testing.T) {
	env := models.ResumeEnvelope{
		Document: validDocument(),
		Settings: models.DefaultPresentationSettings(),
	}
	env.Settings.FontCategory = "cursive"

	result := ValidateEnvelope(&env)
	require.False(t, result.Valid())
	assert.Contains(t, result.Strings(), "font_category: Invalid value")
}
