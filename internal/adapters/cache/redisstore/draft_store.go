package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "draft_session:"

// DraftStore keeps draft sessions in Redis, one key per actor, with an idle
// TTL. Every Put resets the TTL, so an abandoned dialog simply expires and
// the next Get reports apperrors.ErrNotFound.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a new Redis-backed DraftStore.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Put saves the session under its actor ID, replacing any previous one and
// resetting the idle TTL.
func (s *DraftStore) Put(ctx context.Context, session domain.DraftSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal draft session: %w", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+session.ActorID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft session: %w", err)
	}
	return nil
}

// Get retrieves the actor's live session.
func (s *DraftStore) Get(ctx context.Context, actorID string) (*domain.DraftSession, error) {
	payload, err := s.client.Get(ctx, draftKeyPrefix+actorID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load draft session: %w", err)
	}
	session := &domain.DraftSession{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft session: %w", err)
	}
	return session, nil
}

// Delete discards the actor's session. Deleting a missing session is not an
// error.
func (s *DraftStore) Delete(ctx context.Context, actorID string) error {
	if err := s.client.Del(ctx, draftKeyPrefix+actorID).Err(); err != nil {
		return fmt.Errorf("failed to delete draft session: %w", err)
	}
	return nil
}
