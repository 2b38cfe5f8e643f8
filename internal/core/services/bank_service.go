package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/google/uuid"
)

// BankService provides business logic for the receiving-bank catalog.
type BankService struct {
	bankRepo        portsrepo.BankRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
	roles           portssvc.RoleResolverSvc
}

// NewBankService creates a new BankService.
func NewBankService(bankRepo portsrepo.BankRepositoryFacade, currencyService portssvc.CurrencyReaderSvc, roles portssvc.RoleResolverSvc) *BankService {
	return &BankService{
		bankRepo:        bankRepo,
		currencyService: currencyService,
		roles:           roles,
	}
}

// CreateBank registers a new bank under a fiat currency. Admin only.
func (s *BankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, creatorUserID string) (*domain.Bank, error) {
	if err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}

	code := strings.ToUpper(req.CurrencyCode)
	currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}
	if currency.Kind != domain.CurrencyKindFiat {
		return nil, fmt.Errorf("%w: banks can only be attached to fiat currencies", apperrors.ErrValidation)
	}

	now := time.Now()
	bank := domain.Bank{
		BankID:       uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: code,
		Enabled:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		return nil, fmt.Errorf("failed to create bank in service: %w", err)
	}

	return &bank, nil
}

// SetBankEnabled toggles whether the bank is offered. Admin only.
func (s *BankService) SetBankEnabled(ctx context.Context, bankID string, enabled bool, updaterUserID string) error {
	if err := s.requireAdmin(ctx, updaterUserID); err != nil {
		return err
	}
	return s.bankRepo.SetBankEnabled(ctx, bankID, enabled, updaterUserID)
}

// GetBankByID retrieves a specific bank.
func (s *BankService) GetBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bank in service: %w", err)
	}
	return bank, nil
}

// ListBanksForCurrency retrieves banks for a fiat currency.
func (s *BankService) ListBanksForCurrency(ctx context.Context, currencyCode string, enabledOnly bool) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanksForCurrency(ctx, strings.ToUpper(currencyCode), enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list banks in service: %w", err)
	}
	if banks == nil {
		banks = []domain.Bank{}
	}
	return banks, nil
}

func (s *BankService) requireAdmin(ctx context.Context, actorID string) error {
	role, err := s.roles.ResolveRole(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to resolve role for '%s': %w", actorID, err)
	}
	if role != domain.RoleAdmin {
		return fmt.Errorf("%w: bank catalog changes require the admin role", apperrors.ErrForbidden)
	}
	return nil
}
