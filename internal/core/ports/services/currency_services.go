package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies, optionally only enabled ones.
	ListCurrencies(ctx context.Context, enabledOnly bool) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines admin write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// SetCurrencyEnabled toggles whether the currency is offered in drafts.
	SetCurrencyEnabled(ctx context.Context, currencyCode string, enabled bool, updaterUserID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
