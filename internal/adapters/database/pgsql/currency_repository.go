package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRepository implements the currency repository ports using pgxpool.
type PgxCurrencyRepository struct {
	db *pgxpool.Pool
}

// NewCurrencyRepository creates a new PgxCurrencyRepository.
func NewCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{db: db}
}

// SaveCurrency inserts a new currency into the database.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (
			currency_code, name, kind, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		currency.CurrencyCode, currency.Name, currency.Kind, currency.Enabled,
		currency.CreatedAt, currency.CreatedBy, currency.LastUpdatedAt, currency.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: currency '%s' already exists", apperrors.ErrDuplicate, currency.CurrencyCode)
		}
		return fmt.Errorf("error inserting currency: %w", err)
	}
	return nil
}

// FindCurrencyByCode retrieves a specific currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, kind, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1
	`
	currency := &domain.Currency{}
	err := r.db.QueryRow(ctx, query, currencyCode).Scan(
		&currency.CurrencyCode, &currency.Name, &currency.Kind, &currency.Enabled,
		&currency.CreatedAt, &currency.CreatedBy, &currency.LastUpdatedAt, &currency.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding currency: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, enabledOnly bool) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, kind, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE ($1 = false OR enabled = true)
		ORDER BY currency_code
	`
	rows, err := r.db.Query(ctx, query, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing currencies: %w", err)
	}
	defer rows.Close()

	var currencies []domain.Currency
	for rows.Next() {
		var currency domain.Currency
		if err := rows.Scan(
			&currency.CurrencyCode, &currency.Name, &currency.Kind, &currency.Enabled,
			&currency.CreatedAt, &currency.CreatedBy, &currency.LastUpdatedAt, &currency.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning currency row: %w", err)
		}
		currencies = append(currencies, currency)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}
	return currencies, nil
}

// SetCurrencyEnabled toggles the enabled flag.
func (r *PgxCurrencyRepository) SetCurrencyEnabled(ctx context.Context, currencyCode string, enabled bool, updaterUserID string) error {
	query := `
		UPDATE currencies
		SET enabled = $2, last_updated_at = $3, last_updated_by = $4
		WHERE currency_code = $1
	`
	tag, err := r.db.Exec(ctx, query, currencyCode, enabled, time.Now(), updaterUserID)
	if err != nil {
		return fmt.Errorf("error updating currency enabled flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
