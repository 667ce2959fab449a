package editor

import (
	"fmt"
	"reflect"

	"resumeforge/internal/schema"
	"resumeforge/internal/store"
	"resumeforge/pkg/models"
)

// Dialog is one open item-editing interaction against a session. The draft is
// detached from the document: nothing is written until Submit, and Cancel
// discards the draft without a trace.
type Dialog struct {
	session *store.Session
	section models.SectionID
	itemID  string // empty for a new entry
	draft   interface{}
	open    bool
}

// Open starts an editing dialog for one list section. A non-empty itemID
// prefills the draft from the existing item; an empty one starts from the
// section's zero template.
func Open(sess *store.Session, section models.SectionID, itemID string) (*Dialog, error) {
	if !IsListSection(section) {
		return nil, fmt.Errorf("section %q is not a list section", section)
	}

	var draft interface{}
	var err error
	if itemID == "" {
		draft, err = EmptyItem(section)
	} else {
		doc := sess.Document()
		draft, err = FindItem(&doc, section, itemID)
	}
	if err != nil {
		return nil, err
	}

	return &Dialog{
		session: sess,
		section: section,
		itemID:  itemID,
		draft:   draft,
		open:    true,
	}, nil
}

// Section returns the section this dialog edits
func (d *Dialog) Section() models.SectionID {
	return d.section
}

// Draft returns the current draft item
func (d *Dialog) Draft() interface{} {
	return d.draft
}

// SetDraft replaces the draft with an updated item of the same concrete type
func (d *Dialog) SetDraft(draft interface{}) error {
	if !d.open {
		return fmt.Errorf("dialog is closed")
	}
	if reflect.TypeOf(draft) != reflect.TypeOf(d.draft) {
		return fmt.Errorf("draft payload %T does not match section %q", draft, d.section)
	}
	d.draft = draft
	return nil
}

// Validate runs the advisory per-field validation on the current draft
func (d *Dialog) Validate() schema.ValidationResult {
	return schema.ValidateSection(d.draft)
}

// Submit validates the draft and commits it: an existing item is replaced in
// place keeping its id, a new one is appended with a fresh id. The dialog
// closes on success and stays open when validation fails.
func (d *Dialog) Submit() (string, error) {
	if !d.open {
		return "", fmt.Errorf("dialog is closed")
	}

	if result := d.Validate(); !result.Valid() {
		return "", result
	}

	var cmd store.Command
	if d.itemID == "" {
		cmd = store.AppendListItem{Section: d.section, Item: d.draft}
	} else {
		cmd = store.ReplaceListItem{Section: d.section, ItemID: d.itemID, Item: d.draft}
	}

	itemID, err := d.session.Apply(cmd)
	if err != nil {
		return "", err
	}

	d.open = false
	return itemID, nil
}

// Cancel discards the draft and closes the dialog. The document is untouched.
func (d *Dialog) Cancel() {
	d.draft = nil
	d.open = false
}

// Open reports whether the dialog still accepts edits
func (d *Dialog) Open() bool {
	return d.open
}
