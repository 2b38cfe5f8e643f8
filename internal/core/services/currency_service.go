package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portsrepo "github.com/changifyhq/changify-backend/internal/core/ports/repositories"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/dto"
)

// CurrencyService provides business logic for the currency catalog.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	roles        portssvc.RoleResolverSvc
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, roles portssvc.RoleResolverSvc) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		roles:        roles,
	}
}

// CreateCurrency registers a new currency. Admin only.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	if err := s.requireAdmin(ctx, creatorUserID); err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.CurrencyCode))
	if code == "" {
		return nil, fmt.Errorf("%w: currency code must not be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: code,
		Name:         req.Name,
		Kind:         req.Kind,
		Enabled:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// SetCurrencyEnabled toggles whether the currency is offered. Admin only.
func (s *CurrencyService) SetCurrencyEnabled(ctx context.Context, currencyCode string, enabled bool, updaterUserID string) error {
	if err := s.requireAdmin(ctx, updaterUserID); err != nil {
		return err
	}
	return s.currencyRepo.SetCurrencyEnabled(ctx, strings.ToUpper(currencyCode), enabled, updaterUserID)
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves currencies, optionally only enabled ones.
func (s *CurrencyService) ListCurrencies(ctx context.Context, enabledOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

func (s *CurrencyService) requireAdmin(ctx context.Context, actorID string) error {
	role, err := s.roles.ResolveRole(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to resolve role for '%s': %w", actorID, err)
	}
	if role != domain.RoleAdmin {
		return fmt.Errorf("%w: currency catalog changes require the admin role", apperrors.ErrForbidden)
	}
	return nil
}
