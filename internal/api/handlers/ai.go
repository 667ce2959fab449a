package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// RewriteTextHandler rewrites a snippet in the requested tone
func RewriteTextHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.RewriteTextRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, "Request validation failed: "+err.Error())
		}

		text, err := llmManager.RewriteText(c.Request().Context(), req.Text, req.Tone)
		if err != nil {
			return respondError(c, utils.NewLLMError(err.Error()))
		}
		return c.JSON(http.StatusOK, models.TextTransformResponse{Text: text})
	}
}

// FixTyposHandler corrects spelling and grammar without rephrasing
func FixTyposHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.FixTyposRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, "Request validation failed: "+err.Error())
		}

		text, err := llmManager.FixTypos(c.Request().Context(), req.Text)
		if err != nil {
			return respondError(c, utils.NewLLMError(err.Error()))
		}
		return c.JSON(http.StatusOK, models.TextTransformResponse{Text: text})
	}
}

// CustomizeTextHandler transforms a snippet following a free-form directive
func CustomizeTextHandler(llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CustomizeTextRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, "Request validation failed: "+err.Error())
		}

		text, err := llmManager.CustomizeText(c.Request().Context(), req.Text, req.Directive)
		if err != nil {
			return respondError(c, utils.NewLLMError(err.Error()))
		}
		return c.JSON(http.StatusOK, models.TextTransformResponse{Text: text})
	}
}

// ReviewResumeHandler scores the stored document, optionally against a target
// job description
func ReviewResumeHandler(stores *store.Manager, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		start := time.Now()

		var req models.ReviewResumeRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		doc := sess.Document()
		analysis, err := llmManager.ReviewResume(c.Request().Context(), &doc, req.JobDescription)
		if err != nil {
			return respondError(c, utils.NewLLMError(err.Error()))
		}

		logger.Info("Resume review completed", map[string]interface{}{
			"request_id": requestID(c),
			"resume_id":  sess.ResumeID(),
			"score":      analysis.OverallScore,
			"duration":   utils.FormatDuration(time.Since(start)),
		})

		return c.JSON(http.StatusOK, analysis)
	}
}
