package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// DraftSvcFacade drives the guided request-creation dialog. Each method
// accepts exactly one typed input for the actor's current step; invalid
// input returns apperrors.ErrValidation and leaves the session (and all
// previously entered fields) untouched.
type DraftSvcFacade interface {
	// StartDraft opens a fresh session at SelectFrom, discarding any prior
	// incomplete session for the actor.
	StartDraft(ctx context.Context, actorID string) (*domain.DraftSession, error)

	// GetDraft returns the actor's live session, apperrors.ErrNotFound if none.
	GetDraft(ctx context.Context, actorID string) (*domain.DraftSession, error)

	// SelectCurrency handles both the SelectFrom and SelectTo steps,
	// whichever the cursor is on.
	SelectCurrency(ctx context.Context, actorID, currencyCode string) (*domain.DraftSession, error)

	// EnterAmount parses the amount text; on success the rate and amountTo
	// are frozen into the session.
	EnterAmount(ctx context.Context, actorID, amountText string) (*domain.DraftSession, error)

	// SelectBank handles the SelectBank step (fiat targets with enabled banks).
	SelectBank(ctx context.Context, actorID, bankID string) (*domain.DraftSession, error)

	// EnterPaymentDetails records the requester's receiving details.
	EnterPaymentDetails(ctx context.Context, actorID, details string) (*domain.DraftSession, error)

	// Back steps from SelectTo back to SelectFrom; on any other step it
	// cancels the session and returns nil.
	Back(ctx context.Context, actorID string) (*domain.DraftSession, error)

	// Cancel discards the session without persisting anything.
	Cancel(ctx context.Context, actorID string) error

	// Confirm materializes the draft into a CREATED order and discards the
	// session.
	Confirm(ctx context.Context, actorID string) (*domain.Order, error)
}
