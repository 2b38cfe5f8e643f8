package dto

import (
	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// CreateCurrencyRequest defines the structure for creating a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string              `json:"currencyCode" binding:"required,min=2,max=10,uppercase"`
	Name         string              `json:"name" binding:"required,notblank,max=50"`
	Kind         domain.CurrencyKind `json:"kind" binding:"required,oneof=CRYPTO FIAT"`
}

// ToggleEnabledRequest flips the enabled flag on a catalog entity.
type ToggleEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyCode string              `json:"currencyCode"`
	Name         string              `json:"name"`
	Kind         domain.CurrencyKind `json:"kind"`
	Enabled      bool                `json:"enabled"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Kind:         c.Kind,
		Enabled:      c.Enabled,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
