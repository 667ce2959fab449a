package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/renderer"
	"resumeforge/internal/store"
	"resumeforge/pkg/utils"
)

// Sentinel errors to allow precise mapping in handlers
var (
	ErrRender        = errors.New("render_error")
	ErrStorageConfig = errors.New("storage_configuration")
	ErrUpload        = errors.New("upload_failed")
)

// A4 paper size in inches for the PDF printer. The rendered page carries its
// own margins as padding, so the printer margins stay zero.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// ExportResult is the outcome of one PDF export
type ExportResult struct {
	URL      string
	PublicID string
}

// ExportResumePDF renders a session's resume to HTML, prints it to PDF
// through the browser pool and uploads the file to Spaces. Returns the public
// URL of the uploaded file. fileName, when given, becomes the object's base
// name; empty means a generated one.
func ExportResumePDF(ctx context.Context, cfg *config.Config, engine *renderer.Engine, sess *store.Session, fileName string) (*ExportResult, error) {
	logger := logging.GetGlobalLogger()
	resumeID := sess.ResumeID()

	doc := sess.Document()
	html, err := engine.Render(&doc, sess.Settings(), sess.SectionOrder(), renderer.ModeExport)
	if err != nil {
		logger.Error("Failed to render resume for export", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	pdfData, err := printToPDF(ctx, cfg, html)
	if err != nil {
		logger.Error("Failed to print resume to PDF", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	spaces, err := utils.NewSpacesClient(cfg)
	if err != nil {
		logger.Error("Storage not configured for export", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrStorageConfig, err)
	}

	publicID := utils.GenerateExportID(resumeID, fileName)
	url, err := spaces.UploadPDFExport(publicID, pdfData)
	if err != nil {
		logger.Error("Failed to upload PDF export", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	logger.Info("Resume exported", map[string]interface{}{
		"resume_id":  resumeID,
		"public_id":  publicID,
		"size_bytes": len(pdfData),
	})

	return &ExportResult{URL: url, PublicID: publicID}, nil
}

// printToPDF loads the rendered HTML into a pooled browser page and prints it
// to an A4 PDF
func printToPDF(ctx context.Context, cfg *config.Config, html string) ([]byte, error) {
	pool, err := GetBrowserPool()
	if err != nil {
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, cfg.BrowserPool.RenderTimeout)
	defer cancel()

	instance, err := pool.Acquire(renderCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire browser instance: %w", err)
	}
	defer instance.Release()

	page := instance.Page

	if err := page.Context(renderCtx).SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to load resume HTML: %w", err)
	}

	if err := page.Context(renderCtx).WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for page load: %w", err)
	}

	// Brief settle for web fonts
	_ = page.Context(renderCtx).WaitIdle(2 * time.Second)

	stream, err := page.Context(renderCtx).PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      ptrFloat(paperWidthInches),
		PaperHeight:     ptrFloat(paperHeightInches),
		MarginTop:       ptrFloat(0),
		MarginBottom:    ptrFloat(0),
		MarginLeft:      ptrFloat(0),
		MarginRight:     ptrFloat(0),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print to PDF: %w", err)
	}

	pdfData, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("PDF printer returned no data")
	}
	return pdfData, nil
}

func ptrFloat(f float64) *float64 {
	return &f
}
