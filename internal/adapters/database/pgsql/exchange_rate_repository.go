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

// PgxExchangeRateRepository implements the exchange rate repository ports
// using pgxpool. Rates are stored as directed records, one row per
// (from, to) pair, and are always written in forward/reverse pairs inside
// one transaction.
type PgxExchangeRateRepository struct {
	db *pgxpool.Pool
}

// NewExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{db: db}
}

// FindExchangeRate retrieves the rate for a directed currency pair.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, updated_at, updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
	`
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode).Scan(
		&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode, &rate.Rate, &rate.UpdatedAt, &rate.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves all directed rate records.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, updated_at, updated_by
		FROM exchange_rates
		ORDER BY from_currency_code, to_currency_code
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing exchange rates: %w", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(
			&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode, &rate.Rate, &rate.UpdatedAt, &rate.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning exchange rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", err)
	}
	return rates, nil
}

// SaveExchangeRatePair upserts both directions of a pair in one DB
// transaction so a reader can never observe only one direction updated.
func (r *PgxExchangeRateRepository) SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (from_currency_code, to_currency_code)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at, updated_by = EXCLUDED.updated_by
	`
	for _, rate := range []domain.ExchangeRate{forward, reverse} {
		if _, err := tx.Exec(ctx, query,
			rate.ExchangeRateID, rate.FromCurrencyCode, rate.ToCurrencyCode, rate.Rate, rate.UpdatedAt, rate.UpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to upsert exchange rate %s->%s: %w", rate.FromCurrencyCode, rate.ToCurrencyCode, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit exchange rate pair: %w", err)
	}
	return nil
}
