package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies; enabledOnly filters out disabled ones.
	ListCurrencies(ctx context.Context, enabledOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SetCurrencyEnabled toggles the enabled flag.
	SetCurrencyEnabled(ctx context.Context, currencyCode string, enabled bool, updaterUserID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
