package store

import (
	"context"
	"errors"
	"sync"

	"resumeforge/internal/logging"
)

// Manager hands out resume sessions and persists them through the configured
// repository. One session per resume id; sessions are created on first use.
type Manager struct {
	repo     Repository
	mu       sync.Mutex
	sessions map[string]*Session
	logger   logging.Logger
}

// NewManager creates a new session manager
func NewManager(repo Repository) *Manager {
	return &Manager{
		repo:     repo,
		sessions: make(map[string]*Session),
		logger:   logging.GetGlobalLogger(),
	}
}

// Session returns the live session for a resume id, restoring it from the
// repository or creating a fresh one when nothing is persisted
func (m *Manager) Session(ctx context.Context, resumeID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[resumeID]; ok {
		return sess, nil
	}

	env, err := m.repo.Load(ctx, resumeID)
	switch {
	case err == nil:
		sess := NewSessionFromEnvelope(resumeID, *env)
		m.sessions[resumeID] = sess
		return sess, nil
	case errors.Is(err, ErrNotFound):
		sess := NewSession(resumeID)
		m.sessions[resumeID] = sess
		return sess, nil
	default:
		return nil, err
	}
}

// Save persists a session's current snapshot
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	if err := m.repo.Save(ctx, sess.ResumeID(), sess.Snapshot()); err != nil {
		m.logger.Error("Failed to save resume session", map[string]interface{}{
			"resume_id": sess.ResumeID(),
			"error":     err.Error(),
		})
		return err
	}
	return nil
}
