package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkdownFences(tt.input))
		})
	}
}

func TestAssignItemIDs(t *testing.T) {
	raw := `{
		"basics": {"name": "Ada Lovelace", "links": [{"label": "Site", "url": "https://example.com"}]},
		"experience": [{"company_name": "Acme", "title": "Engineer", "start_date": "2020", "currently_working": true}],
		"skills": [{"name": "Backend", "keywords": ["Go"]}, {"name": "Frontend"}]
	}`

	var doc models.ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	AssignItemIDs(&doc)

	assert.NotEmpty(t, doc.Basics.Links[0].ID)
	assert.NotEmpty(t, doc.Experience[0].ID)
	require.Len(t, doc.Skills, 2)
	assert.NotEmpty(t, doc.Skills[0].ID)
	assert.NotEmpty(t, doc.Skills[1].ID)
	assert.NotEqual(t, doc.Skills[0].ID, doc.Skills[1].ID)
}
