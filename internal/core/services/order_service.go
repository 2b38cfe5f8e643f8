package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// OrderService owns the order lifecycle. Every transition follows the same
// discipline: re-read the persisted order, check the actor's permission,
// apply a pure mutation against the status read moments ago, and persist it
// with a conditional write keyed on that status. A lost race surfaces as
// ErrStaleState with no side effect. Notification dispatch happens strictly
// after the durable state change and never rolls it back.
type OrderService struct {
	orderRepo  portsrepo.OrderRepositoryFacade
	roles      portssvc.RoleResolverSvc
	dispatcher portssvc.OrderEventDispatcher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, roles portssvc.RoleResolverSvc, dispatcher portssvc.OrderEventDispatcher) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		roles:      roles,
		dispatcher: dispatcher,
	}
}

// CreateOrderFromDraft materializes a confirmed draft into a CREATED order.
// All frozen draft fields are copied verbatim.
func (s *OrderService) CreateOrderFromDraft(ctx context.Context, draft domain.DraftSession) (*domain.Order, error) {
	now := time.Now()
	order := domain.Order{
		OrderID:                 uuid.NewString(),
		RequesterID:             draft.ActorID,
		FromCurrencyCode:        draft.FromCurrencyCode,
		ToCurrencyCode:          draft.ToCurrencyCode,
		AmountFrom:              draft.AmountFrom,
		AmountTo:                draft.AmountTo,
		Rate:                    draft.Rate,
		BankID:                  draft.BankID,
		RequesterPaymentDetails: draft.PaymentDetails,
		Status:                  domain.OrderStatusCreated,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	change := domain.OrderStatusChange{
		ChangeID:   uuid.NewString(),
		OrderID:    order.OrderID,
		FromStatus: domain.OrderStatusCreated,
		ToStatus:   domain.OrderStatusCreated,
		ActorID:    draft.ActorID,
		ChangedAt:  now,
	}

	if err := s.orderRepo.CreateOrder(ctx, order, change); err != nil {
		return nil, fmt.Errorf("failed to create order in service: %w", err)
	}

	s.dispatcher.DispatchOrderEvent(ctx, domain.OrderEvent{
		Kind:    domain.OrderEventCreated,
		Order:   order,
		ActorID: draft.ActorID,
	})
	return &order, nil
}

// Accept moves a CREATED order to AWAITING_PAYMENT and binds the operator.
func (s *OrderService) Accept(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventAccepted, nil, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusCreated {
			return fmt.Errorf("%w: order is no longer awaiting acceptance", apperrors.ErrStaleState)
		}
		o.Status = domain.OrderStatusAwaitingPayment
		o.OperatorID = &actorID
		return nil
	})
}

// Release undoes an accept: the order returns to CREATED with the operator
// unbound and operator payment details cleared. Only the bound operator may
// release.
func (s *OrderService) Release(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventReleased, nil, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusAwaitingPayment {
			return fmt.Errorf("%w: order is not in an accepted state", apperrors.ErrStaleState)
		}
		if o.OperatorID == nil || *o.OperatorID != actorID {
			return fmt.Errorf("%w: only the bound operator may release the order", apperrors.ErrForbidden)
		}
		o.Status = domain.OrderStatusCreated
		o.OperatorID = nil
		o.OperatorPaymentDetails = nil
		return nil
	})
}

// ProvidePaymentDetails records where the requester must send funds. Only
// the bound operator may supply them, while the order awaits payment.
func (s *OrderService) ProvidePaymentDetails(ctx context.Context, orderID, actorID, details string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	details = strings.TrimSpace(details)
	if details == "" {
		return nil, fmt.Errorf("%w: payment details must not be empty", apperrors.ErrValidation)
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventPaymentDetails, nil, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusAwaitingPayment {
			return fmt.Errorf("%w: order is not awaiting payment", apperrors.ErrStaleState)
		}
		if o.OperatorID == nil || *o.OperatorID != actorID {
			return fmt.Errorf("%w: only the bound operator may provide payment details", apperrors.ErrForbidden)
		}
		o.OperatorPaymentDetails = &details
		return nil
	})
}

// ConfirmPayment moves AWAITING_PAYMENT to PAYMENT_CONFIRMED (operator path).
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventPaymentConfirmed, nil, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusAwaitingPayment {
			return fmt.Errorf("%w: order is not awaiting payment", apperrors.ErrStaleState)
		}
		o.Status = domain.OrderStatusPaymentConfirmed
		return nil
	})
}

// MarkPaid is the requester-side path to PAYMENT_CONFIRMED ("I paid").
func (s *OrderService) MarkPaid(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, actorID, domain.OrderEventPaymentConfirmed, nil, func(o *domain.Order) error {
		if o.RequesterID != actorID {
			return fmt.Errorf("%w: only the requester may mark the order as paid", apperrors.ErrForbidden)
		}
		if o.Status != domain.OrderStatusAwaitingPayment {
			return fmt.Errorf("%w: order is not awaiting payment", apperrors.ErrStaleState)
		}
		o.Status = domain.OrderStatusPaymentConfirmed
		return nil
	})
}

// Complete moves PAYMENT_CONFIRMED to COMPLETED and stamps completedAt.
func (s *OrderService) Complete(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventCompleted, nil, func(o *domain.Order) error {
		if o.Status != domain.OrderStatusPaymentConfirmed {
			return fmt.Errorf("%w: order payment is not confirmed", apperrors.ErrStaleState)
		}
		now := time.Now()
		o.Status = domain.OrderStatusCompleted
		o.CompletedAt = &now
		return nil
	})
}

// Reject cancels any non-terminal order with a mandatory reason (operator).
func (s *OrderService) Reject(ctx context.Context, orderID, actorID, reason string) (*domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}
	return s.transition(ctx, orderID, actorID, domain.OrderEventRejected, &reason, func(o *domain.Order) error {
		if o.Status.IsTerminal() {
			return fmt.Errorf("%w: order is already in a terminal state", apperrors.ErrStaleState)
		}
		o.Status = domain.OrderStatusCancelled
		o.RejectionReason = &reason
		return nil
	})
}

// Cancel is the requester's self-cancel, allowed from CREATED or
// AWAITING_PAYMENT.
func (s *OrderService) Cancel(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, actorID, domain.OrderEventCancelled, nil, func(o *domain.Order) error {
		if o.RequesterID != actorID {
			return fmt.Errorf("%w: only the requester may cancel the order", apperrors.ErrForbidden)
		}
		if o.Status != domain.OrderStatusCreated && o.Status != domain.OrderStatusAwaitingPayment {
			return fmt.Errorf("%w: order can no longer be cancelled", apperrors.ErrStaleState)
		}
		o.Status = domain.OrderStatusCancelled
		return nil
	})
}

// GetOrder returns an order. Requesters see their own orders; operators see
// everything.
func (s *OrderService) GetOrder(ctx context.Context, orderID, actorID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order in service: %w", err)
	}
	if order.RequesterID != actorID {
		role, err := s.roles.ResolveRole(ctx, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve role for '%s': %w", actorID, err)
		}
		if !role.IsOperator() {
			return nil, fmt.Errorf("%w: order belongs to another requester", apperrors.ErrForbidden)
		}
	}
	return order, nil
}

// ListMyOrders returns the actor's own orders, newest first.
func (s *OrderService) ListMyOrders(ctx context.Context, actorID string, limit int) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByRequester(ctx, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders in service: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ListQueue returns the operator work queue (non-terminal orders, oldest first).
func (s *OrderService) ListQueue(ctx context.Context, actorID string) ([]domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders in service: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// ListCompleted returns recently completed orders (operator view).
func (s *OrderService) ListCompleted(ctx context.Context, actorID string, limit int) ([]domain.Order, error) {
	if err := s.requireOperator(ctx, actorID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.ListCompletedOrders(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed orders in service: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// transition runs one unit of work: read current state, apply the pure
// mutation against it, persist conditionally on the status that was read,
// then dispatch the event. mutate sees a copy; nothing is persisted when it
// returns an error.
func (s *OrderService) transition(ctx context.Context, orderID, actorID string, kind domain.OrderEventKind, reason *string, mutate func(o *domain.Order) error) (*domain.Order, error) {
	current, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to read order for transition: %w", err)
	}

	updated := *current
	if err := mutate(&updated); err != nil {
		return nil, err
	}

	now := time.Now()
	updated.UpdatedAt = now
	change := domain.OrderStatusChange{
		ChangeID:   uuid.NewString(),
		OrderID:    orderID,
		FromStatus: current.Status,
		ToStatus:   updated.Status,
		ActorID:    actorID,
		Reason:     reason,
		ChangedAt:  now,
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, updated, current.Status, change); err != nil {
		return nil, fmt.Errorf("failed to apply order transition: %w", err)
	}

	s.dispatcher.DispatchOrderEvent(ctx, domain.OrderEvent{
		Kind:    kind,
		Order:   updated,
		ActorID: actorID,
	})
	return &updated, nil
}

func (s *OrderService) requireOperator(ctx context.Context, actorID string) error {
	role, err := s.roles.ResolveRole(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to resolve role for '%s': %w", actorID, err)
	}
	if !role.IsOperator() {
		return fmt.Errorf("%w: this action requires an operator role", apperrors.ErrForbidden)
	}
	return nil
}
