package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// Notifier delivers one rendered message to one recipient over the chat
// transport. Delivery is best-effort: an error is logged by the dispatcher
// and never propagated to the actor that triggered the event.
type Notifier interface {
	Notify(ctx context.Context, recipientID, text string) error
}

// OrderEventDispatcher consumes events emitted by committed order
// transitions and fans out notifications. It must never fail the
// transition: dispatch happens after the durable state change.
type OrderEventDispatcher interface {
	DispatchOrderEvent(ctx context.Context, event domain.OrderEvent)
}
