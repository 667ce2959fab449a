package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/importer"
	"resumeforge/internal/logging"
	"resumeforge/internal/renderer"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// ImportJSONHandler replaces the whole resume from a self-export envelope or
// a bare document. Rejections leave the session untouched.
func ImportJSONHandler(stores *store.Manager, im *importer.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return badRequest(c, "Failed to read request body: "+err.Error())
		}
		if len(raw) == 0 {
			return badRequest(c, "Request body is empty")
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		env, err := im.ImportStructured(sess, raw)
		if err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, models.ImportResponse{
			ResumeID: sess.ResumeID(),
			Source:   "json",
			Document: env.Document,
		})
	}
}

// ImportTextHandler structures pasted free text through the AI pipeline
func ImportTextHandler(stores *store.Manager, im *importer.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ImportTextRequest
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

		doc, err := im.ImportText(c.Request().Context(), sess, req.Text)
		if err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, models.ImportResponse{
			ResumeID: sess.ResumeID(),
			Source:   "text",
			Document: *doc,
		})
	}
}

// ImportPDFHandler accepts a multipart PDF upload, extracts its text layer
// and structures it through the AI pipeline
func ImportPDFHandler(stores *store.Manager, im *importer.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "Missing file upload: "+err.Error())
		}

		src, err := fileHeader.Open()
		if err != nil {
			return badRequest(c, "Failed to open uploaded file: "+err.Error())
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return badRequest(c, "Failed to read uploaded file: "+err.Error())
		}

		logger.Info("PDF import received", map[string]interface{}{
			"request_id": requestID(c),
			"file_name":  fileHeader.Filename,
			"size_bytes": len(data),
		})

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		doc, err := im.ImportPDF(c.Request().Context(), sess, data)
		if err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, models.ImportResponse{
			ResumeID: sess.ResumeID(),
			Source:   "pdf",
			Document: *doc,
		})
	}
}

// ImportImageHandler structures a resume page image through the vision path
func ImportImageHandler(stores *store.Manager, im *importer.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ImportImageRequest
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

		doc, err := im.ImportImage(c.Request().Context(), sess, req.ImageBase64, req.MediaType)
		if err != nil {
			return respondError(c, err)
		}
		if err := stores.Save(c.Request().Context(), sess); err != nil {
			return respondError(c, err)
		}

		return c.JSON(http.StatusOK, models.ImportResponse{
			ResumeID: sess.ResumeID(),
			Source:   "image",
			Document: *doc,
		})
	}
}

// ExportJSONHandler returns the self-export envelope as a download
func ExportJSONHandler(stores *store.Manager, im *importer.Importer) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		data, err := im.ExportJSON(sess)
		if err != nil {
			return respondError(c, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="resume-%s.json"`, sess.ResumeID()))
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
	}
}

// ExportPDFHandler runs the full export pipeline: render, print through the
// browser pool, upload to Spaces, return the public URL
func ExportPDFHandler(cfg *config.Config, stores *store.Manager, engine *renderer.Engine) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()
		start := time.Now()

		// Optional body; an absent one means a generated file name
		var req models.ExportPDFRequest
		if err := c.Bind(&req); err != nil {
			return badRequest(c, "Invalid request body: "+err.Error())
		}

		sess, err := sessionFor(c, stores)
		if err != nil {
			return respondError(c, err)
		}

		result, err := exporter.ExportResumePDF(c.Request().Context(), cfg, engine, sess, req.FileName)
		if err != nil {
			return respondError(c, err)
		}

		logger.Info("PDF export completed", map[string]interface{}{
			"request_id": requestID(c),
			"resume_id":  sess.ResumeID(),
			"public_id":  result.PublicID,
			"duration":   utils.FormatDuration(time.Since(start)),
		})

		return c.JSON(http.StatusOK, models.ExportPDFResponse{
			URL:      result.URL,
			PublicID: result.PublicID,
		})
	}
}
