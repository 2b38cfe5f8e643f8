package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// DraftStore is an in-process draft session store with the same idle-TTL
// semantics as the Redis adapter. It backs local development when no Redis
// is configured, and the service tests. Expiry is lazy: stale entries are
// dropped on access.
type DraftStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]entry
}

type entry struct {
	session   domain.DraftSession
	expiresAt time.Time
}

// NewDraftStore creates a new in-memory DraftStore.
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:      ttl,
		sessions: make(map[string]entry),
	}
}

// Put saves the session under its actor ID, replacing any previous one and
// resetting the idle TTL.
func (s *DraftStore) Put(_ context.Context, session domain.DraftSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ActorID] = entry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get retrieves the actor's live session.
func (s *DraftStore) Get(_ context.Context, actorID string) (*domain.DraftSession, error) {
	s.mu.RLock()
	e, ok := s.sessions[actorID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, actorID)
		s.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}
	session := e.session
	return &session, nil
}

// Delete discards the actor's session. Deleting a missing session is not an
// error.
func (s *DraftStore) Delete(_ context.Context, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, actorID)
	return nil
}
