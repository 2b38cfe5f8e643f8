package dto

import (
	"time"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetExchangeRateRequest defines the structure for setting a directed rate.
// The reverse pair is derived and written in the same transaction.
type SetExchangeRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,min=2,max=10,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,min=2,max=10,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		UpdatedAt:        rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
