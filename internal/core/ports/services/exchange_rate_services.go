package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the rate for a directed currency pair.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all directed rate records.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines admin write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// SetExchangeRate upserts the directed rate and its inverse atomically.
	SetExchangeRate(ctx context.Context, req dto.SetExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
