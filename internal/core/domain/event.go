package domain

// OrderEventKind identifies what happened to an order.
type OrderEventKind string

const (
	OrderEventCreated          OrderEventKind = "ORDER_CREATED"
	OrderEventAccepted         OrderEventKind = "ORDER_ACCEPTED"
	OrderEventReleased         OrderEventKind = "ORDER_RELEASED"
	OrderEventPaymentDetails   OrderEventKind = "ORDER_PAYMENT_DETAILS"
	OrderEventPaymentConfirmed OrderEventKind = "ORDER_PAYMENT_CONFIRMED"
	OrderEventCompleted        OrderEventKind = "ORDER_COMPLETED"
	OrderEventRejected         OrderEventKind = "ORDER_REJECTED"
	OrderEventCancelled        OrderEventKind = "ORDER_CANCELLED"
)

// OrderEvent is emitted after a transition has been durably applied. The
// notification dispatcher consumes it; it never feeds back into state.
type OrderEvent struct {
	Kind    OrderEventKind `json:"kind"`
	Order   Order          `json:"order"`
	ActorID string         `json:"actorID"` // who triggered the transition
}
