package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/schema"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// Importer runs the import pipelines: structured JSON round-trips and
// AI-assisted extraction from text, PDF and image uploads. Every path is
// all-or-nothing: the session is replaced only after the incoming document
// has passed its gate.
type Importer struct {
	llm    *llm.Manager
	logger logging.Logger
}

// NewImporter creates a new importer
func NewImporter(llmManager *llm.Manager) *Importer {
	return &Importer{
		llm:    llmManager,
		logger: logging.GetGlobalLogger(),
	}
}

// ImportStructured imports a self-export envelope (or a bare document, which
// gets default settings and order). The document must pass strict validation
// wholesale; on any error the session is untouched.
func (im *Importer) ImportStructured(sess *store.Session, raw []byte) (*models.ResumeEnvelope, error) {
	env, err := decodeEnvelope(raw)
	if err != nil {
		return nil, utils.NewImportRejectedError(err.Error())
	}

	if result := schema.ValidateEnvelope(env); !result.Valid() {
		return nil, utils.NewImportRejectedError(strings.Join(result.Strings(), "; "))
	}

	sess.ReplaceAll(*env)
	im.logger.Info("Structured import applied", map[string]interface{}{
		"resume_id": sess.ResumeID(),
	})

	snapshot := sess.Snapshot()
	return &snapshot, nil
}

// ImportText structures free text through the LLM after the plausibility gate
func (im *Importer) ImportText(ctx context.Context, sess *store.Session, text string) (*models.ResumeDocument, error) {
	gate := CheckPlausibility(text)
	if !gate.Plausible {
		im.logger.Warn("Text import failed plausibility gate", map[string]interface{}{
			"resume_id": sess.ResumeID(),
			"score":     gate.Score,
		})
		return nil, utils.NewNotAResumeError(gate.Reason)
	}

	doc, err := im.llm.StructureResume(ctx, text)
	if err != nil {
		return nil, utils.NewLLMError(err.Error())
	}
	return im.applyExtracted(sess, doc)
}

// ImportPDF extracts the PDF text layer and structures it. PDFs without a
// text layer are rejected with a hint to upload a page image instead.
func (im *Importer) ImportPDF(ctx context.Context, sess *store.Session, data []byte) (*models.ResumeDocument, error) {
	text, err := ExtractPDFText(data)
	if err != nil {
		return nil, utils.NewImportRejectedError(err.Error())
	}
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewImportRejectedError("PDF has no extractable text; upload a page image instead")
	}
	return im.ImportText(ctx, sess, text)
}

// ImportImage structures a resume page image through the vision path. The
// text gate cannot run here; the post-extraction check stands alone.
func (im *Importer) ImportImage(ctx context.Context, sess *store.Session, imageBase64, mediaType string) (*models.ResumeDocument, error) {
	doc, err := im.llm.StructureResumeFromImage(ctx, imageBase64, mediaType)
	if err != nil {
		return nil, utils.NewLLMError(err.Error())
	}
	return im.applyExtracted(sess, doc)
}

// ExportJSON serializes the session into the self-export envelope
func (im *Importer) ExportJSON(sess *store.Session) ([]byte, error) {
	data, err := json.MarshalIndent(sess.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	return data, nil
}

// applyExtracted installs an AI-extracted document after gating its structure.
// The extracted output must carry a name and at least two structural resume
// signals, so a photographed invoice with a vendor name does not replace the
// stored resume. This is the only gate on the image path.
func (im *Importer) applyExtracted(sess *store.Session, doc *models.ResumeDocument) (*models.ResumeDocument, error) {
	if strings.TrimSpace(doc.Basics.Name) == "" {
		return nil, utils.NewNotAResumeError("no name could be extracted from the content")
	}

	if gate := CheckDocumentPlausibility(doc); !gate.Plausible {
		im.logger.Warn("Extracted document failed plausibility gate", map[string]interface{}{
			"resume_id": sess.ResumeID(),
			"score":     gate.Score,
		})
		return nil, utils.NewNotAResumeError(gate.Reason)
	}

	sess.ReplaceAll(models.ResumeEnvelope{
		Document:     *doc,
		Settings:     sess.Settings(),
		SectionOrder: sess.SectionOrder(),
	})

	im.logger.Info("AI-assisted import applied", map[string]interface{}{
		"resume_id": sess.ResumeID(),
		"name":      doc.Basics.Name,
	})

	updated := sess.Document()
	return &updated, nil
}

// decodeEnvelope accepts either the full envelope or a bare document
func decodeEnvelope(raw []byte) (*models.ResumeEnvelope, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if _, ok := probe["document"]; ok {
		var env models.ResumeEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("invalid resume envelope: %w", err)
		}
		if env.Settings == (models.PresentationSettings{}) {
			env.Settings = models.DefaultPresentationSettings()
		}
		ensureItemIDs(&env.Document)
		return &env, nil
	}

	var doc models.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}
	ensureItemIDs(&doc)
	return &models.ResumeEnvelope{
		Document:     doc,
		Settings:     models.DefaultPresentationSettings(),
		SectionOrder: store.DefaultSectionOrder(),
	}, nil
}

// ensureItemIDs repairs ids on documents produced outside this service:
// missing ids are backfilled and duplicates regenerated, while existing unique
// ids survive so envelope round-trips keep their item references stable.
func ensureItemIDs(doc *models.ResumeDocument) {
	seen := make(map[string]bool)
	fix := func(id *string) {
		if *id == "" || seen[*id] {
			*id = utils.GenerateItemID()
		}
		seen[*id] = true
	}

	for i := range doc.Basics.Links {
		fix(&doc.Basics.Links[i].ID)
	}
	for i := range doc.Experience {
		fix(&doc.Experience[i].ID)
	}
	for i := range doc.Education {
		fix(&doc.Education[i].ID)
	}
	for i := range doc.Projects {
		fix(&doc.Projects[i].ID)
	}
	for i := range doc.Skills {
		fix(&doc.Skills[i].ID)
	}
	for i := range doc.Languages {
		fix(&doc.Languages[i].ID)
	}
	for i := range doc.Certifications {
		fix(&doc.Certifications[i].ID)
	}
	for i := range doc.Awards {
		fix(&doc.Awards[i].ID)
	}
	for i := range doc.Volunteering {
		fix(&doc.Volunteering[i].ID)
	}
}
