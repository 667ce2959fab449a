package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/renderer"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

func newTestManager() *store.Manager {
	return store.NewManager(store.NewMemoryRepository())
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	require.NoError(t, h(c))
	return rec
}

func TestGetResumeCreatesFreshSession(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, GetResumeHandler(stores), http.MethodGet, "/", "", map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r1", resp.ResumeID)
	assert.NotEmpty(t, resp.SectionOrder)
	assert.Equal(t, models.DefaultPresentationSettings(), resp.Settings)
}

func TestUpdateBasicsRejectsMissingName(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, UpdateBasicsHandler(stores), http.MethodPut, "/",
		`{"email":{"value":"jane@example.com"}}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	assert.Contains(t, strings.Join(resp.Fields, "; "), "name: Required")
}

func TestUpdateBasicsPersists(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, UpdateBasicsHandler(stores), http.MethodPut, "/",
		`{"name":"Jane Doe","title":"Engineer","email":{"value":"jane@example.com"}}`,
		map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Doe", resp.Document.Basics.Name)
}

func TestSectionItemLifecycle(t *testing.T) {
	stores := newTestManager()

	body := `{"data":{"company_name":"Acme","title":"Engineer","start_date":"2020-01","currently_working":true}}`
	rec := doJSON(t, AddSectionItemHandler(stores), http.MethodPost, "/", body,
		map[string]string{"id": "r1", "section": "experience"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ItemID string                `json:"item_id"`
		Resume models.ResumeResponse `json:"resume"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ItemID)
	require.Len(t, created.Resume.Document.Experience, 1)

	// Replacing through a stale id is a 404 and leaves the list alone
	rec = doJSON(t, UpdateSectionItemHandler(stores), http.MethodPut, "/", body,
		map[string]string{"id": "r1", "section": "experience", "itemId": "exp_missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, DeleteSectionItemHandler(stores), http.MethodDelete, "/", "",
		map[string]string{"id": "r1", "section": "experience", "itemId": created.ItemID})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Document.Experience)
}

func TestAddSectionItemRejectsInvalidPayload(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, AddSectionItemHandler(stores), http.MethodPost, "/",
		`{"data":{"title":"Engineer"}}`,
		map[string]string{"id": "r1", "section": "experience"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, strings.Join(resp.Fields, "; "), "company_name: Required")
}

func TestAddSectionItemRejectsUnknownField(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, AddSectionItemHandler(stores), http.MethodPost, "/",
		`{"data":{"company_name":"Acme","title":"Engineer","start_date":"2020-01","currently_working":true,"salary":100}}`,
		map[string]string{"id": "r1", "section": "experience"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReorderSections(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, ReorderSectionsHandler(stores), http.MethodPut, "/",
		`{"from":"skills","to":"summary"}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SectionOrder)
	assert.Equal(t, models.SectionSkills, resp.SectionOrder[0])
}

func TestReorderSectionsRejectsUnknownSection(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, ReorderSectionsHandler(stores), http.MethodPut, "/",
		`{"from":"skills","to":"references"}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSettingsClampsIntoRange(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, UpdateSettingsHandler(stores), http.MethodPut, "/",
		`{"font_size":99,"zoom":0.01}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.PresentationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, models.SettingsRanges[models.SettingFontSize].Max, settings.FontSize)
	assert.Equal(t, models.SettingsRanges[models.SettingZoom].Min, settings.Zoom)
}

func TestUpdateSettingsRejectsUnknownFontCategory(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, UpdateSettingsHandler(stores), http.MethodPut, "/",
		`{"font_category":"gothic"}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetZoom(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, ResetZoomHandler(stores), http.MethodPost, "/",
		`{"window_width":1920}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.PresentationSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.GreaterOrEqual(t, settings.Zoom, models.SettingsRanges[models.SettingZoom].Min)
	assert.LessOrEqual(t, settings.Zoom, models.SettingsRanges[models.SettingZoom].Max)
}

func TestUpdateSectionTitleOverrideAndReset(t *testing.T) {
	stores := newTestManager()

	rec := doJSON(t, UpdateSectionTitleHandler(stores), http.MethodPut, "/",
		`{"title":"Work History"}`, map[string]string{"id": "r1", "section": "experience"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Work History", resp.Document.SectionTitles[models.SectionExperience])

	rec = doJSON(t, UpdateSectionTitleHandler(stores), http.MethodPut, "/",
		`{"title":""}`, map[string]string{"id": "r1", "section": "experience"})
	require.Equal(t, http.StatusOK, rec.Code)

	// fresh target: unmarshal leaves pre-populated maps in place when the
	// key is omitted from the response
	resp = models.ResumeResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Document.SectionTitles, models.SectionExperience)
}

func TestPreviewRendersHTML(t *testing.T) {
	stores := newTestManager()
	engineRec := doJSON(t, UpdateBasicsHandler(stores), http.MethodPut, "/",
		`{"name":"Jane Doe","email":{"value":"jane@example.com"}}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, engineRec.Code)

	rec := doJSON(t, PreviewHandler(stores, renderer.NewEngine()), http.MethodGet, "/?mode=preview", "",
		map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), "mode-preview")

	rec = doJSON(t, PreviewHandler(stores, renderer.NewEngine()), http.MethodGet, "/?mode=export", "",
		map[string]string{"id": "r1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mode-export")
}
