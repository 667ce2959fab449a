package store

import (
	"context"
	"errors"
	"sync"

	"resumeforge/pkg/models"
)

// ErrNotFound is returned when no persisted state exists for a resume id
var ErrNotFound = errors.New("resume not found")

// Repository persists resume envelopes by resume id
type Repository interface {
	// Load retrieves the persisted envelope, or ErrNotFound
	Load(ctx context.Context, resumeID string) (*models.ResumeEnvelope, error)

	// Save stores the envelope wholesale (last-write-wins)
	Save(ctx context.Context, resumeID string, env models.ResumeEnvelope) error

	// Delete removes the persisted envelope
	Delete(ctx context.Context, resumeID string) error
}

// MemoryRepository implements Repository with an in-process map. Used in
// tests and when no Redis is configured.
type MemoryRepository struct {
	mu        sync.RWMutex
	envelopes map[string]models.ResumeEnvelope
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		envelopes: make(map[string]models.ResumeEnvelope),
	}
}

// Load retrieves the persisted envelope, or ErrNotFound
func (r *MemoryRepository) Load(_ context.Context, resumeID string) (*models.ResumeEnvelope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	env, ok := r.envelopes[resumeID]
	if !ok {
		return nil, ErrNotFound
	}
	return &env, nil
}

// Save stores the envelope wholesale
func (r *MemoryRepository) Save(_ context.Context, resumeID string, env models.ResumeEnvelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.envelopes[resumeID] = env
	return nil
}

// Delete removes the persisted envelope
func (r *MemoryRepository) Delete(_ context.Context, resumeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.envelopes, resumeID)
	return nil
}
