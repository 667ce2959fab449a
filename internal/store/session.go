package store

import (
	"fmt"
	"sync"

	"resumeforge/pkg/models"
)

// Subscriber is notified after every applied mutation of a session
type Subscriber func(resumeID string)

// Session is the single owner of one resume's state: document, presentation
// settings and section order. All mutation is synchronous and serialized by
// the session mutex (single-writer, last-write-wins).
type Session struct {
	resumeID string

	mu          sync.RWMutex
	document    models.ResumeDocument
	settings    models.PresentationSettings
	order       []models.SectionID
	subscribers []Subscriber
}

// NewSession creates a session with an empty document and default settings
func NewSession(resumeID string) *Session {
	return &Session{
		resumeID: resumeID,
		settings: models.DefaultPresentationSettings(),
		order:    DefaultSectionOrder(),
	}
}

// NewSessionFromEnvelope restores a session from a persisted envelope
func NewSessionFromEnvelope(resumeID string, env models.ResumeEnvelope) *Session {
	s := &Session{
		resumeID: resumeID,
		document: env.Document,
		settings: env.Settings,
		order:    NormalizeOrder(env.SectionOrder),
	}
	ClampSettings(&s.settings)
	return s
}

// ResumeID returns the id this session owns
func (s *Session) ResumeID() string {
	return s.resumeID
}

// Document returns a copy of the current document
func (s *Session) Document() models.ResumeDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// Settings returns the current presentation settings
func (s *Session) Settings() models.PresentationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SectionOrder returns a copy of the current section order
func (s *Session) SectionOrder() []models.SectionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := make([]models.SectionID, len(s.order))
	copy(order, s.order)
	return order
}

// Snapshot returns the full persistable state as one envelope
func (s *Session) Snapshot() models.ResumeEnvelope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := make([]models.SectionID, len(s.order))
	copy(order, s.order)
	return models.ResumeEnvelope{
		Document:     s.document,
		Settings:     s.settings,
		SectionOrder: order,
	}
}

// Apply executes one typed mutation command against the document and
// notifies subscribers. Returns the id of the affected list item, if any.
func (s *Session) Apply(cmd Command) (string, error) {
	s.mu.Lock()
	itemID, err := cmd.apply(&s.document)
	s.mu.Unlock()

	if err != nil {
		return "", err
	}

	s.notify()
	return itemID, nil
}

// Reorder moves one section to the slot another occupies. The sequence stays
// a permutation of the reorderable set.
func (s *Session) Reorder(from, to models.SectionID) error {
	if from == models.SectionBasics || to == models.SectionBasics {
		return fmt.Errorf("basics is pinned first and cannot be reordered")
	}
	if !models.IsReorderable(from) || !models.IsReorderable(to) {
		return fmt.Errorf("unknown section id in reorder: %q -> %q", from, to)
	}

	s.mu.Lock()
	s.order = Reorder(s.order, from, to)
	s.mu.Unlock()

	s.notify()
	return nil
}

// UpdateSettings applies a clamped per-field settings update
func (s *Session) UpdateSettings(req models.UpdateSettingsRequest) models.PresentationSettings {
	s.mu.Lock()
	ApplySettingsUpdate(&s.settings, req)
	updated := s.settings
	s.mu.Unlock()

	s.notify()
	return updated
}

// ResetZoom resets the zoom to the window-width-driven target
func (s *Session) ResetZoom(windowWidth int) models.PresentationSettings {
	s.mu.Lock()
	s.settings.Zoom = Clamp(models.SettingZoom, ResetZoomTarget(windowWidth))
	updated := s.settings
	s.mu.Unlock()

	s.notify()
	return updated
}

// ReplaceAll swaps document, settings and order wholesale. Used by the import
// pipeline after validation; it is all-or-nothing by construction.
func (s *Session) ReplaceAll(env models.ResumeEnvelope) {
	s.mu.Lock()
	s.document = env.Document
	s.settings = env.Settings
	ClampSettings(&s.settings)
	s.order = NormalizeOrder(env.SectionOrder)
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers a subscriber notified after every mutation
func (s *Session) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) notify() {
	s.mu.RLock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(s.resumeID)
	}
}
