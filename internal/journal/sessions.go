package journal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// ListSessions returns therapy sessions newest first, paginated and cached.
func (r *Repository) ListSessions(limit, offset int) ([]types.TherapySession, error) {
	key := listKey(types.CollectionSessions, limit, offset)
	if cached, ok := r.cache.Get(key); ok {
		return cached.([]types.TherapySession), nil
	}

	sessions, err := r.store.ListSessions(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapy sessions: %w", err)
	}
	r.cache.Set(key, sessions)
	return sessions, nil
}

// GetSession retrieves a single therapy session by ID.
func (r *Repository) GetSession(id string) (*types.TherapySession, error) {
	session, err := r.store.GetSession(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapy session: %w", err)
	}
	return session, nil
}

// AddSession persists a new therapy session.
func (r *Repository) AddSession(session *types.TherapySession) (*types.TherapySession, error) {
	if err := r.store.InsertSession(session); err != nil {
		return nil, fmt.Errorf("failed to save therapy session: %w", err)
	}
	r.invalidate()
	return session, nil
}

// DeleteSession removes a session together with all of its messages.
// The two deletes run in one transaction so a session is never left
// with orphaned messages.
func (r *Repository) DeleteSession(id string) error {
	if err := r.store.DeleteSession(id); err != nil {
		return fmt.Errorf("failed to delete therapy session: %w", err)
	}
	r.invalidate()
	r.logger.Debug("therapy session deleted", zap.String("id", id))
	return nil
}

// AddMessage appends a message to an existing session.
func (r *Repository) AddMessage(message *types.TherapyMessage) (*types.TherapyMessage, error) {
	if _, err := r.store.GetSession(message.SessionID); err != nil {
		return nil, fmt.Errorf("failed to save therapy message: %w", err)
	}
	if err := r.store.InsertMessage(message); err != nil {
		return nil, fmt.Errorf("failed to save therapy message: %w", err)
	}
	r.invalidate()
	return message, nil
}

// Messages returns a session's messages in chronological order.
func (r *Repository) Messages(sessionID string) ([]types.TherapyMessage, error) {
	messages, err := r.store.MessagesBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load therapy messages: %w", err)
	}
	return messages, nil
}
