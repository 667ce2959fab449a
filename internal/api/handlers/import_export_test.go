package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/importer"
	"resumeforge/pkg/models"
)

func TestImportJSONRejectsMalformedBody(t *testing.T) {
	stores := newTestManager()
	im := importer.NewImporter(nil)

	rec := doJSON(t, ImportJSONHandler(stores, im), http.MethodPost, "/",
		`{"document": `, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestImportJSONRejectsEmptyBody(t *testing.T) {
	stores := newTestManager()
	im := importer.NewImporter(nil)

	rec := doJSON(t, ImportJSONHandler(stores, im), http.MethodPost, "/", "",
		map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportThenExportRoundTrip(t *testing.T) {
	stores := newTestManager()
	im := importer.NewImporter(nil)

	envelope := models.ResumeEnvelope{
		Document: models.ResumeDocument{
			Basics: models.Basics{
				Name:  "Jane Doe",
				Email: models.ContactField{Value: "jane@example.com"},
			},
			Summary: "Engineer with a decade of distributed systems work.",
		},
		Settings:     models.DefaultPresentationSettings(),
		SectionOrder: models.ReorderableSections,
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	rec := doJSON(t, ImportJSONHandler(stores, im), http.MethodPost, "/", string(body),
		map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var imported models.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &imported))
	assert.Equal(t, "json", imported.Source)
	assert.Equal(t, "Jane Doe", imported.Document.Basics.Name)

	rec = doJSON(t, ExportJSONHandler(stores, im), http.MethodGet, "/", "",
		map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume-r1.json")

	var exported models.ResumeEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exported))
	assert.Equal(t, envelope.Document, exported.Document)
	assert.Equal(t, envelope.SectionOrder, exported.SectionOrder)
}

func TestImportTextRequiresText(t *testing.T) {
	stores := newTestManager()
	im := importer.NewImporter(nil)

	rec := doJSON(t, ImportTextHandler(stores, im), http.MethodPost, "/",
		`{"text":""}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportImageRejectsUnknownMediaType(t *testing.T) {
	stores := newTestManager()
	im := importer.NewImporter(nil)

	rec := doJSON(t, ImportImageHandler(stores, im), http.MethodPost, "/",
		`{"image_base64":"aGVsbG8=","media_type":"image/tiff"}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
