package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/pkg/models"
)

func TestRewriteTextRequiresBody(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	rec := doJSON(t, RewriteTextHandler(llm.NewManager(cfg)), http.MethodPost, "/",
		`{"text":""}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIEndpointsFailFastWithoutProvider(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	// Manager never started: assistant calls must fail fast as upstream errors
	manager := llm.NewManager(cfg)

	rec := doJSON(t, FixTyposHandler(manager), http.MethodPost, "/",
		`{"text":"Teh quick brown fox"}`, map[string]string{"id": "r1"})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upstream_failure", resp.Error)
}

func TestReviewResumeFailsFastWithoutProvider(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	stores := newTestManager()
	rec := doJSON(t, ReviewResumeHandler(stores, llm.NewManager(cfg)), http.MethodPost, "/",
		`{"job_description":"Senior Go engineer"}`, map[string]string{"id": "r1"})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
