package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// OrderCreatorSvc materializes a confirmed draft into a persisted order.
type OrderCreatorSvc interface {
	// CreateOrderFromDraft creates a CREATED order with all frozen draft
	// fields copied in.
	CreateOrderFromDraft(ctx context.Context, draft domain.DraftSession) (*domain.Order, error)
}

// OrderLifecycleSvc applies status transitions. Every method re-reads the
// persisted status and applies a conditional write; a lost race returns
// apperrors.ErrStaleState with no side effect. Role preconditions are
// enforced per transition (apperrors.ErrForbidden).
type OrderLifecycleSvc interface {
	// Accept moves a CREATED order to AWAITING_PAYMENT and binds the operator.
	Accept(ctx context.Context, orderID, actorID string) (*domain.Order, error)

	// Release undoes an accept that has not progressed: the order returns to
	// CREATED, the operator is unbound and operator payment details cleared.
	// Only the bound operator may release.
	Release(ctx context.Context, orderID, actorID string) (*domain.Order, error)

	// ProvidePaymentDetails records where the requester must send funds.
	// Only the bound operator may supply them, while AWAITING_PAYMENT.
	ProvidePaymentDetails(ctx context.Context, orderID, actorID, details string) (*domain.Order, error)

	// ConfirmPayment moves AWAITING_PAYMENT to PAYMENT_CONFIRMED (operator).
	ConfirmPayment(ctx context.Context, orderID, actorID string) (*domain.Order, error)

	// MarkPaid is the requester-side path to PAYMENT_CONFIRMED ("I paid").
	MarkPaid(ctx context.Context, orderID, actorID string) (*domain.Order, error)

	// Complete moves PAYMENT_CONFIRMED to COMPLETED and sets completedAt.
	Complete(ctx context.Context, orderID, actorID string) (*domain.Order, error)

	// Reject cancels any non-terminal order; a non-empty reason is required.
	Reject(ctx context.Context, orderID, actorID, reason string) (*domain.Order, error)

	// Cancel is the requester's self-cancel, allowed from CREATED or
	// AWAITING_PAYMENT.
	Cancel(ctx context.Context, orderID, actorID string) (*domain.Order, error)
}

// OrderReaderSvc defines order queries. Requesters see their own orders;
// operators see everything.
type OrderReaderSvc interface {
	GetOrder(ctx context.Context, orderID, actorID string) (*domain.Order, error)
	ListMyOrders(ctx context.Context, actorID string, limit int) ([]domain.Order, error)
	ListQueue(ctx context.Context, actorID string) ([]domain.Order, error)
	ListCompleted(ctx context.Context, actorID string, limit int) ([]domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderCreatorSvc
	OrderLifecycleSvc
	OrderReaderSvc
}
