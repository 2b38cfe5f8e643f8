package dto

import (
	"github.com/changifyhq/changify-backend/internal/core/domain"
)

// CreateBankRequest defines the structure for creating a new bank.
type CreateBankRequest struct {
	Name         string `json:"name" binding:"required,notblank,max=50"`
	CurrencyCode string `json:"currencyCode" binding:"required,min=2,max=10,uppercase"`
}

// BankResponse defines the structure for API responses containing bank details.
type BankResponse struct {
	BankID       string `json:"bankID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	Enabled      bool   `json:"enabled"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:       b.BankID,
		Name:         b.Name,
		CurrencyCode: b.CurrencyCode,
		Enabled:      b.Enabled,
	}
}

// ToListBankResponse converts a slice of domain.Bank to response DTOs.
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	responses := make([]BankResponse, len(banks))
	for i := range banks {
		responses[i] = ToBankResponse(&banks[i])
	}
	return responses
}
