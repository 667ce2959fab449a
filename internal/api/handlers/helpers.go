package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/exporter"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// requestID returns the id set by the validation middleware, generating one
// for requests that bypassed it (tests, direct handler calls)
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	id := utils.GenerateRequestID()
	c.Set("request_id", id)
	return id
}

func errorLabel(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid_request"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "unprocessable_content"
	case http.StatusBadGateway:
		return "upstream_failure"
	case http.StatusTooManyRequests:
		return "rate_limited"
	default:
		return "internal_error"
	}
}

// respondError maps application errors onto the wire format. CustomError
// carries its own status; exporter sentinels and everything else fall back to
// fixed mappings.
func respondError(c echo.Context, err error) error {
	reqID := requestID(c)

	var cerr *utils.CustomError
	if errors.As(err, &cerr) {
		if cerr.Code == http.StatusUnprocessableEntity && cerr.Detail != "" && strings.Contains(cerr.Detail, ":") {
			// field-qualified validation details get the structured shape
			return c.JSON(cerr.Code, models.ValidationErrorResponse{
				Error:     errorLabel(cerr.Code),
				Message:   cerr.Message,
				Fields:    strings.Split(cerr.Detail, "; "),
				RequestID: reqID,
				Timestamp: time.Now(),
			})
		}
		return c.JSON(cerr.Code, models.ErrorResponse{
			Error:     errorLabel(cerr.Code),
			Message:   cerr.Error(),
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}

	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		return c.JSON(herr.Code, models.ErrorResponse{
			Error:     errorLabel(herr.Code),
			Message:   fmt.Sprintf("%v", herr.Message),
			RequestID: reqID,
			Timestamp: time.Now(),
		})
	}

	switch {
	case errors.Is(err, exporter.ErrRender):
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "render_error", Message: err.Error(), RequestID: reqID, Timestamp: time.Now(),
		})
	case errors.Is(err, exporter.ErrStorageConfig):
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "storage_configuration", Message: err.Error(), RequestID: reqID, Timestamp: time.Now(),
		})
	case errors.Is(err, exporter.ErrUpload):
		return c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: "upload_failed", Message: err.Error(), RequestID: reqID, Timestamp: time.Now(),
		})
	}

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:     "internal_error",
		Message:   err.Error(),
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

// badRequest is the shorthand for malformed input
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:     "invalid_request",
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

func resumeResponse(resumeID string, env models.ResumeEnvelope) models.ResumeResponse {
	return models.ResumeResponse{
		ResumeID:     resumeID,
		Document:     env.Document,
		Settings:     env.Settings,
		SectionOrder: env.SectionOrder,
	}
}
