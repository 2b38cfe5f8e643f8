package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
)

// NotificationService fans order events out to the people who care about
// them. Delivery is strictly best-effort: a failure for one recipient is
// logged and never blocks delivery to the others, and nothing here can fail
// the transition that produced the event.
type NotificationService struct {
	notifier portssvc.Notifier
	users    portssvc.UserReaderSvc
	logger   *slog.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifier portssvc.Notifier, users portssvc.UserReaderSvc, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		users:    users,
		logger:   logger,
	}
}

// DispatchOrderEvent delivers the event to its recipients. The requester is
// always informed. Operators are additionally informed when the work queue
// changes shape: a new order arriving, or one leaving it through reject or
// requester cancel.
func (s *NotificationService) DispatchOrderEvent(ctx context.Context, event domain.OrderEvent) {
	text := renderOrderEvent(event)
	if text == "" {
		s.logger.WarnContext(ctx, "no notification text for order event", "kind", event.Kind, "order_id", event.Order.OrderID)
		return
	}

	s.deliver(ctx, event, event.Order.RequesterID, text)

	if operatorsCare(event.Kind) {
		operators, err := s.users.ListOperators(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to list operators for notification", "order_id", event.Order.OrderID, "error", err)
			return
		}
		for _, op := range operators {
			if op.UserID == event.ActorID {
				continue
			}
			s.deliver(ctx, event, op.UserID, text)
		}
	}
}

func operatorsCare(kind domain.OrderEventKind) bool {
	switch kind {
	case domain.OrderEventCreated, domain.OrderEventRejected, domain.OrderEventCancelled:
		return true
	default:
		return false
	}
}

func (s *NotificationService) deliver(ctx context.Context, event domain.OrderEvent, recipientID, text string) {
	if err := s.notifier.Notify(ctx, recipientID, text); err != nil {
		s.logger.ErrorContext(ctx, "failed to deliver order notification",
			"order_id", event.Order.OrderID,
			"kind", event.Kind,
			"recipient_id", recipientID,
			"error", err)
	}
}

func renderOrderEvent(event domain.OrderEvent) string {
	o := event.Order
	pair := fmt.Sprintf("%s %s -> %s %s", o.AmountFrom.String(), o.FromCurrencyCode, o.AmountTo.String(), o.ToCurrencyCode)
	switch event.Kind {
	case domain.OrderEventCreated:
		return fmt.Sprintf("Order %s created: %s at rate %s.", o.OrderID, pair, o.Rate.String())
	case domain.OrderEventAccepted:
		return fmt.Sprintf("Order %s has been accepted by an operator. %s", o.OrderID, pair)
	case domain.OrderEventReleased:
		return fmt.Sprintf("Order %s was returned to the queue and will be picked up by another operator.", o.OrderID)
	case domain.OrderEventPaymentDetails:
		details := ""
		if o.OperatorPaymentDetails != nil {
			details = *o.OperatorPaymentDetails
		}
		return fmt.Sprintf("Payment details for order %s: %s", o.OrderID, details)
	case domain.OrderEventPaymentConfirmed:
		return fmt.Sprintf("Payment for order %s has been confirmed. The operator will finish the exchange shortly.", o.OrderID)
	case domain.OrderEventCompleted:
		return fmt.Sprintf("Order %s is complete: %s. Thank you!", o.OrderID, pair)
	case domain.OrderEventRejected:
		reason := ""
		if o.RejectionReason != nil {
			reason = *o.RejectionReason
		}
		return fmt.Sprintf("Order %s was rejected: %s", o.OrderID, reason)
	case domain.OrderEventCancelled:
		return fmt.Sprintf("Order %s was cancelled.", o.OrderID)
	default:
		return ""
	}
}
