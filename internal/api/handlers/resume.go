package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/editor"
	"resumeforge/internal/logging"
	"resumeforge/internal/renderer"
	"resumeforge/internal/schema"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

var resumeValidator = validator.New()

func init() {
	// Register shared resume validators
	schema.RegisterResumeValidators(resumeValidator)
}

func sessionFor(c echo.Context, stores *store.Manager) (*store.Session, error) {
	resumeID := c.Param("id")
	if resumeID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "resume id is required")
	}
	return stores.Session(c.Request().Context(), resumeID)
}

// GetResumeHandler returns the full state of one resume
func GetResumeHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// PreviewHandler renders the resume as HTML. mode=export drops the preview
// chrome; anything else renders the interactive preview.
func PreviewHandler(stores *store.Manager, engine *renderer.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		mode := renderer.ModePreview
		if c.QueryParam("mode") == string(renderer.ModeExport) {
			mode = renderer.ModeExport
		}

		doc := sess.Document()
		html, err := engine.Render(&doc, sess.Settings(), sess.SectionOrder(), mode)
		if err != nil {
			return respondError(c, err)
		}
		return c.HTML(http.StatusOK, html)
	}
}

// UpdateBasicsHandler replaces the basics header
func UpdateBasicsHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var basics models.Basics
		if err := c.Bind(&basics); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		if result := schema.ValidateSection(&basics); !result.Valid() {
			return validationFailed(c, result)
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		if _, err := sess.Apply(store.SetBasics{Basics: basics}); err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// UpdateSummaryHandler replaces the rich-text summary
func UpdateSummaryHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.UpdateSummaryRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		if _, err := sess.Apply(store.SetSummary{Summary: req.Summary}); err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// UpdateSectionTitleHandler overrides one section's display name; an empty
// title restores the default
func UpdateSectionTitleHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.UpdateSectionTitleRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		section := models.SectionID(c.Param("section"))
		if _, err := sess.Apply(store.SetSectionTitle{Section: section, Title: req.Title}); err != nil {
			return badRequest(c, err.Error())
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// AddSectionItemHandler appends one validated item to a list section
func AddSectionItemHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.SectionItemRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		section := models.SectionID(c.Param("section"))
		item, err := editor.DecodeItem(section, req.Data)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if result := schema.ValidateSection(item); !result.Valid() {
			return validationFailed(c, result)
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		itemID, err := sess.Apply(store.AppendListItem{Section: section, Item: item})
		if err != nil {
			return badRequest(c, err.Error())
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}

		logger.Info("Section item added", map[string]interface{}{
			"request_id": requestID(c),
			"resume_id":  sess.ResumeID(),
			"section":    string(section),
			"item_id":    itemID,
		})
		return c.JSON(http.StatusCreated, map[string]interface{}{
			"item_id": itemID,
			"resume":  resumeResponse(sess.ResumeID(), sess.Snapshot()),
		})
	}
}

// UpdateSectionItemHandler replaces one item in place, preserving its id
func UpdateSectionItemHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.SectionItemRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		section := models.SectionID(c.Param("section"))
		item, err := editor.DecodeItem(section, req.Data)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if result := schema.ValidateSection(item); !result.Valid() {
			return validationFailed(c, result)
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		itemID := c.Param("itemId")
		if _, err := sess.Apply(store.ReplaceListItem{Section: section, ItemID: itemID, Item: item}); err != nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   err.Error(),
				RequestID: requestID(c),
				Timestamp: time.Now(),
			})
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// DeleteSectionItemHandler removes one item; its id is never reused
func DeleteSectionItemHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		section := models.SectionID(c.Param("section"))
		itemID := c.Param("itemId")
		if _, err := sess.Apply(store.RemoveListItem{Section: section, ItemID: itemID}); err != nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "not_found",
				Message:   err.Error(),
				RequestID: requestID(c),
				Timestamp: time.Now(),
			})
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// ReorderSectionsHandler moves one section to the slot another occupies
func ReorderSectionsHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ReorderSectionsRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, "Request validation failed: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		if err := sess.Reorder(req.From, req.To); err != nil {
			return badRequest(c, err.Error())
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, resumeResponse(sess.ResumeID(), sess.Snapshot()))
	}
}

// UpdateSettingsHandler applies per-field presentation changes, clamped into
// their ranges
func UpdateSettingsHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.UpdateSettingsRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		if req.FontCategory != nil {
			probe := models.PresentationSettings{FontCategory: models.FontCategory(*req.FontCategory)}
			if result := schema.ValidateSection(&probe); !result.Valid() {
				return validationFailed(c, result)
			}
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		settings := sess.UpdateSettings(req)
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, settings)
	}
}

// ResetZoomHandler resets the zoom to the window-width-driven target
func ResetZoomHandler(stores *store.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ResetZoomRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}
		if err := resumeValidator.Struct(&req); err != nil {
			return badRequest(c, "Request validation failed: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		settings := sess.ResetZoom(req.WindowWidth)
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, settings)
	}
}

// validationFailed responds with the path-qualified field error list
func validationFailed(c echo.Context, result schema.ValidationResult) error {
	return c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
		Error:     "validation_failed",
		Message:   "Validation failed",
		Fields:    result.Strings(),
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}
