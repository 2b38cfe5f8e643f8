package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an exchange order.
type OrderStatus string

const (
	OrderStatusCreated          OrderStatus = "CREATED"
	OrderStatusAwaitingPayment  OrderStatus = "AWAITING_PAYMENT"
	OrderStatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
	OrderStatusCancelled        OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions are permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ActiveOrderStatuses are the states an operator's work queue cares about.
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusAwaitingPayment,
	OrderStatusPaymentConfirmed,
}

// Order is a persisted exchange request. Amounts and the rate are frozen at
// creation time; later rate changes never touch an existing order. The
// lifecycle is owned exclusively by the order service.
type Order struct {
	OrderID          string          `json:"orderID"`     // Primary Key (UUID)
	RequesterID      string          `json:"requesterID"` // FK -> User.userID
	OperatorID       *string         `json:"operatorID,omitempty"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	AmountFrom       decimal.Decimal `json:"amountFrom"`
	AmountTo         decimal.Decimal `json:"amountTo"` // amountFrom * rate, frozen
	Rate             decimal.Decimal `json:"rate"`     // frozen at creation
	BankID           *string         `json:"bankID,omitempty"`
	// RequesterPaymentDetails is where the requester wants to receive funds.
	RequesterPaymentDetails string `json:"requesterPaymentDetails"`
	// OperatorPaymentDetails is where the requester must send funds; supplied
	// by the operator after accepting.
	OperatorPaymentDetails *string     `json:"operatorPaymentDetails,omitempty"`
	Status                 OrderStatus `json:"status"`
	RejectionReason        *string     `json:"rejectionReason,omitempty"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
	CompletedAt            *time.Time  `json:"completedAt,omitempty"`
}

// OrderStatusChange is one entry in an order's status history.
type OrderStatusChange struct {
	ChangeID   string      `json:"changeID"` // Primary Key (UUID)
	OrderID    string      `json:"orderID"`  // FK -> Order.orderID
	FromStatus OrderStatus `json:"fromStatus"`
	ToStatus   OrderStatus `json:"toStatus"`
	ActorID    string      `json:"actorID"` // FK -> User.userID
	Reason     *string     `json:"reason,omitempty"`
	ChangedAt  time.Time   `json:"changedAt"`
}
