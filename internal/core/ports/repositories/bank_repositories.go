package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// BankReader defines read operations for bank data
type BankReader interface {
	// FindBankByID retrieves a specific bank.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanksForCurrency retrieves banks owned by a fiat currency;
	// enabledOnly filters out disabled ones.
	ListBanksForCurrency(ctx context.Context, currencyCode string, enabledOnly bool) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data
type BankWriter interface {
	// SaveBank persists a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// SetBankEnabled toggles the enabled flag.
	SetBankEnabled(ctx context.Context, bankID string, enabled bool, updaterUserID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
