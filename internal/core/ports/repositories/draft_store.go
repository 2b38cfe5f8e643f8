package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// DraftSessionStore is a keyed store for in-progress draft dialogs, one
// session per actor. Implementations apply an idle TTL: an expired session
// simply disappears (apperrors.ErrNotFound on Get), which the dialog treats
// as cancellation. Drafts are the one piece of state allowed to be
// non-durable.
type DraftSessionStore interface {
	// Put saves the session under its actor ID, replacing any previous one
	// and resetting the idle TTL.
	Put(ctx context.Context, session domain.DraftSession) error

	// Get retrieves the actor's live session, apperrors.ErrNotFound if none.
	Get(ctx context.Context, actorID string) (*domain.DraftSession, error)

	// Delete discards the actor's session. Deleting a missing session is not
	// an error.
	Delete(ctx context.Context, actorID string) error
}
