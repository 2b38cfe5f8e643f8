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
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for the directed rate store.
type ExchangeRateService struct {
	rateRepo        portsrepo.ExchangeRateRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
	roles           portssvc.RoleResolverSvc
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyService portssvc.CurrencyReaderSvc, roles portssvc.RoleResolverSvc) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
		roles:           roles,
	}
}

// SetExchangeRate upserts the directed rate and its inverse in one
// transaction, so a reader never observes only one direction set. Admin only.
func (s *ExchangeRateService) SetExchangeRate(ctx context.Context, req dto.SetExchangeRateRequest, updaterUserID string) (*domain.ExchangeRate, error) {
	role, err := s.roles.ResolveRole(ctx, updaterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role for '%s': %w", updaterUserID, err)
	}
	if role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: rate changes require the admin role", apperrors.ErrForbidden)
	}

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	for _, code := range []string{fromCode, toCode} {
		currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
			}
			return nil, fmt.Errorf("failed to validate currency '%s': %w", code, err)
		}
		if !currency.Enabled {
			return nil, fmt.Errorf("%w: currency '%s' is disabled", apperrors.ErrValidation, code)
		}
	}

	now := time.Now()
	forward := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		UpdatedAt:        now,
		UpdatedBy:        updaterUserID,
	}
	reverse := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: toCode,
		ToCurrencyCode:   fromCode,
		Rate:             decimal.NewFromInt(1).DivRound(req.Rate, 12),
		UpdatedAt:        now,
		UpdatedBy:        updaterUserID,
	}

	if err := s.rateRepo.SaveExchangeRatePair(ctx, forward, reverse); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate pair in service: %w", err)
	}

	return &forward, nil
}

// GetExchangeRate retrieves the rate for a directed currency pair. A missing
// record means the pair is unsupported and surfaces as ErrNotFound.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if fromCode == "" || toCode == "" {
		return nil, fmt.Errorf("%w: currency codes must not be empty", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		// Repository layer handles ErrNotFound mapping
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}
	return rate, nil
}

// ListExchangeRates retrieves all directed rate records.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}
