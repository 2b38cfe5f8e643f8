package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// OrderReader defines read operations for order data
type OrderReader interface {
	// FindOrderByID retrieves a specific order.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByRequester retrieves a requester's orders, newest first.
	ListOrdersByRequester(ctx context.Context, requesterID string, limit int) ([]domain.Order, error)

	// ListActiveOrders retrieves non-terminal orders, oldest first (the
	// operator work queue).
	ListActiveOrders(ctx context.Context) ([]domain.Order, error)

	// ListCompletedOrders retrieves completed orders, most recently completed first.
	ListCompletedOrders(ctx context.Context, limit int) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data
type OrderWriter interface {
	// CreateOrder persists a new order together with its initial status
	// history entry.
	CreateOrder(ctx context.Context, order domain.Order, change domain.OrderStatusChange) error

	// UpdateOrderStatus applies the updated order fields and appends the
	// history entry, but only if the persisted status still equals
	// expectedStatus at apply time. Returns apperrors.ErrStaleState when the
	// order was concurrently moved, apperrors.ErrNotFound when it does not
	// exist.
	UpdateOrderStatus(ctx context.Context, updated domain.Order, expectedStatus domain.OrderStatus, change domain.OrderStatusChange) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
