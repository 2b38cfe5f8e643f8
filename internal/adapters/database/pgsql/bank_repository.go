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

// PgxBankRepository implements the bank repository ports using pgxpool.
type PgxBankRepository struct {
	db *pgxpool.Pool
}

// NewBankRepository creates a new PgxBankRepository.
func NewBankRepository(db *pgxpool.Pool) *PgxBankRepository {
	return &PgxBankRepository{db: db}
}

// SaveBank inserts a new bank into the database.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	query := `
		INSERT INTO banks (
			bank_id, name, currency_code, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		bank.BankID, bank.Name, bank.CurrencyCode, bank.Enabled,
		bank.CreatedAt, bank.CreatedBy, bank.LastUpdatedAt, bank.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bank '%s' already exists for currency '%s'", apperrors.ErrDuplicate, bank.Name, bank.CurrencyCode)
		}
		return fmt.Errorf("error inserting bank: %w", err)
	}
	return nil
}

// FindBankByID retrieves a specific bank.
func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	query := `
		SELECT bank_id, name, currency_code, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		FROM banks
		WHERE bank_id = $1
	`
	bank := &domain.Bank{}
	err := r.db.QueryRow(ctx, query, bankID).Scan(
		&bank.BankID, &bank.Name, &bank.CurrencyCode, &bank.Enabled,
		&bank.CreatedAt, &bank.CreatedBy, &bank.LastUpdatedAt, &bank.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding bank: %w", err)
	}
	return bank, nil
}

// ListBanksForCurrency retrieves banks owned by a currency, ordered by name.
func (r *PgxBankRepository) ListBanksForCurrency(ctx context.Context, currencyCode string, enabledOnly bool) ([]domain.Bank, error) {
	query := `
		SELECT bank_id, name, currency_code, enabled,
			created_at, created_by, last_updated_at, last_updated_by
		FROM banks
		WHERE currency_code = $1 AND ($2 = false OR enabled = true)
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, currencyCode, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing banks: %w", err)
	}
	defer rows.Close()

	var banks []domain.Bank
	for rows.Next() {
		var bank domain.Bank
		if err := rows.Scan(
			&bank.BankID, &bank.Name, &bank.CurrencyCode, &bank.Enabled,
			&bank.CreatedAt, &bank.CreatedBy, &bank.LastUpdatedAt, &bank.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning bank row: %w", err)
		}
		banks = append(banks, bank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}
	return banks, nil
}

// SetBankEnabled toggles the enabled flag.
func (r *PgxBankRepository) SetBankEnabled(ctx context.Context, bankID string, enabled bool, updaterUserID string) error {
	query := `
		UPDATE banks
		SET enabled = $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_id = $1
	`
	tag, err := r.db.Exec(ctx, query, bankID, enabled, time.Now(), updaterUserID)
	if err != nil {
		return fmt.Errorf("error updating bank enabled flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
