package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `
	order_id, requester_id, operator_id, from_currency_code, to_currency_code,
	amount_from, amount_to, rate, bank_id, requester_payment_details,
	operator_payment_details, status, rejection_reason, created_at, updated_at, completed_at
`

// PgxOrderRepository implements the order repository ports using pgxpool.
// Status transitions use a conditional UPDATE keyed on the expected status,
// which is what turns concurrent operator actions into ErrStaleState instead
// of double-applies.
type PgxOrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates a new PgxOrderRepository.
func NewOrderRepository(db *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{db: db}
}

// CreateOrder inserts the order and its initial status history entry in one
// DB transaction.
func (r *PgxOrderRepository) CreateOrder(ctx context.Context, order domain.Order, change domain.OrderStatusChange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	orderQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = tx.Exec(ctx, orderQuery,
		order.OrderID, order.RequesterID, order.OperatorID, order.FromCurrencyCode, order.ToCurrencyCode,
		order.AmountFrom, order.AmountTo, order.Rate, order.BankID, order.RequesterPaymentDetails,
		order.OperatorPaymentDetails, order.Status, order.RejectionReason, order.CreatedAt, order.UpdatedAt, order.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.OrderID, err)
	}

	if err := insertStatusChange(ctx, tx, change); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order creation: %w", err)
	}
	return nil
}

// UpdateOrderStatus applies the updated fields and appends the history
// entry, conditional on the persisted status still matching expectedStatus.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, updated domain.Order, expectedStatus domain.OrderStatus, change domain.OrderStatusChange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	query := `
		UPDATE orders
		SET operator_id = $3, operator_payment_details = $4, status = $5,
			rejection_reason = $6, updated_at = $7, completed_at = $8
		WHERE order_id = $1 AND status = $2
	`
	tag, err := tx.Exec(ctx, query,
		updated.OrderID, expectedStatus,
		updated.OperatorID, updated.OperatorPaymentDetails, updated.Status,
		updated.RejectionReason, updated.UpdatedAt, updated.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", updated.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a lost race from a missing order.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, updated.OrderID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check order existence: %w", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("%w: order %s is no longer in status %s", apperrors.ErrStaleState, updated.OrderID, expectedStatus)
	}

	if err := insertStatusChange(ctx, tx, change); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order update: %w", err)
	}
	return nil
}

// FindOrderByID retrieves a specific order.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	order := &domain.Order{}
	err := r.db.QueryRow(ctx, query, orderID).Scan(scanTargets(order)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding order: %w", err)
	}
	return order, nil
}

// ListOrdersByRequester retrieves a requester's orders, newest first.
func (r *PgxOrderRepository) ListOrdersByRequester(ctx context.Context, requesterID string, limit int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE requester_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, requesterID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing orders by requester: %w", err)
	}
	return collectOrders(rows)
}

// ListActiveOrders retrieves non-terminal orders, oldest first.
func (r *PgxOrderRepository) ListActiveOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = ANY($1)
		ORDER BY created_at ASC
	`
	statuses := make([]string, len(domain.ActiveOrderStatuses))
	for i, s := range domain.ActiveOrderStatuses {
		statuses[i] = string(s)
	}
	rows, err := r.db.Query(ctx, query, statuses)
	if err != nil {
		return nil, fmt.Errorf("error listing active orders: %w", err)
	}
	return collectOrders(rows)
}

// ListCompletedOrders retrieves completed orders, most recently completed first.
func (r *PgxOrderRepository) ListCompletedOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, domain.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing completed orders: %w", err)
	}
	return collectOrders(rows)
}

func insertStatusChange(ctx context.Context, tx pgx.Tx, change domain.OrderStatusChange) error {
	query := `
		INSERT INTO order_status_changes (change_id, order_id, from_status, to_status, actor_id, reason, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.Exec(ctx, query,
		change.ChangeID, change.OrderID, change.FromStatus, change.ToStatus, change.ActorID, change.Reason, change.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order status change: %w", err)
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(scanTargets(&order)...); err != nil {
			return nil, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func scanTargets(o *domain.Order) []any {
	return []any{
		&o.OrderID, &o.RequesterID, &o.OperatorID, &o.FromCurrencyCode, &o.ToCurrencyCode,
		&o.AmountFrom, &o.AmountTo, &o.Rate, &o.BankID, &o.RequesterPaymentDetails,
		&o.OperatorPaymentDetails, &o.Status, &o.RejectionReason, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt,
	}
}
