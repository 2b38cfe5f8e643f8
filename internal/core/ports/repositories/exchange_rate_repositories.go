package repositories

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate for a directed currency pair.
	// No record means the pair is unsupported (apperrors.ErrNotFound).
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all directed rate records.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRatePair upserts the forward and reverse rate records in a
	// single transaction. A reader must never observe only one direction set.
	SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
