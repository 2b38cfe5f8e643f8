package services

import (
	"context"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// BankReaderSvc defines read operations for bank data
type BankReaderSvc interface {
	// GetBankByID retrieves a specific bank.
	GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanksForCurrency retrieves banks for a fiat currency, optionally
	// only enabled ones.
	ListBanksForCurrency(ctx context.Context, currencyCode string, enabledOnly bool) ([]domain.Bank, error)
}

// BankWriterSvc defines admin write operations for bank data
type BankWriterSvc interface {
	// CreateBank persists a new bank under a fiat currency.
	CreateBank(ctx context.Context, req dto.CreateBankRequest, creatorUserID string) (*domain.Bank, error)

	// SetBankEnabled toggles whether the bank is offered in drafts.
	SetBankEnabled(ctx context.Context, bankID string, enabled bool, updaterUserID string) error
}

// BankSvcFacade combines all bank-related service interfaces
type BankSvcFacade interface {
	BankReaderSvc
	BankWriterSvc
}
