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
	"github.com/shopspring/decimal"
)

// DraftService drives the guided request-creation dialog: a per-actor
// cooperative state machine over an injected keyed store. Each call accepts
// exactly one typed input; invalid input re-prompts (ErrValidation) without
// touching previously entered fields.
type DraftService struct {
	store           portsrepo.DraftSessionStore
	currencyService portssvc.CurrencyReaderSvc
	bankService     portssvc.BankReaderSvc
	rateService     portssvc.ExchangeRateReaderSvc
	orderCreator    portssvc.OrderCreatorSvc
}

// NewDraftService creates a new DraftService.
func NewDraftService(
	store portsrepo.DraftSessionStore,
	currencyService portssvc.CurrencyReaderSvc,
	bankService portssvc.BankReaderSvc,
	rateService portssvc.ExchangeRateReaderSvc,
	orderCreator portssvc.OrderCreatorSvc,
) *DraftService {
	return &DraftService{
		store:           store,
		currencyService: currencyService,
		bankService:     bankService,
		rateService:     rateService,
		orderCreator:    orderCreator,
	}
}

// StartDraft opens a fresh session at SelectFrom. Any prior incomplete
// session for the actor is implicitly discarded.
func (s *DraftService) StartDraft(ctx context.Context, actorID string) (*domain.DraftSession, error) {
	session := domain.DraftSession{
		ActorID:   actorID,
		Step:      domain.DraftStepSelectFrom,
		StartedAt: time.Now(),
	}
	if err := s.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start draft session: %w", err)
	}
	return &session, nil
}

// GetDraft returns the actor's live session.
func (s *DraftService) GetDraft(ctx context.Context, actorID string) (*domain.DraftSession, error) {
	return s.store.Get(ctx, actorID)
}

// SelectCurrency applies a currency choice to the SelectFrom or SelectTo
// step. Selecting the target currency snapshots the current rate into the
// session; later rate changes never alter an in-progress draft.
func (s *DraftService) SelectCurrency(ctx context.Context, actorID, currencyCode string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	code := strings.ToUpper(strings.TrimSpace(currencyCode))

	switch session.Step {
	case domain.DraftStepSelectFrom:
		if err := s.validateCurrency(ctx, code); err != nil {
			return nil, err
		}
		session.FromCurrencyCode = code
		session.Step = domain.DraftStepSelectTo

	case domain.DraftStepSelectTo:
		if err := s.validateCurrency(ctx, code); err != nil {
			return nil, err
		}
		if code == session.FromCurrencyCode {
			return nil, fmt.Errorf("%w: target currency must differ from source", apperrors.ErrValidation)
		}
		rate, err := s.rateService.GetExchangeRate(ctx, session.FromCurrencyCode, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: exchange for pair %s/%s is not available", apperrors.ErrValidation, session.FromCurrencyCode, code)
			}
			return nil, fmt.Errorf("failed to look up rate for draft: %w", err)
		}
		session.ToCurrencyCode = code
		session.Rate = rate.Rate
		session.Step = domain.DraftStepEnterAmount

	default:
		return nil, fmt.Errorf("%w: a currency choice is not expected at this step", apperrors.ErrValidation)
	}

	if err := s.store.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save draft session: %w", err)
	}
	return session, nil
}

// EnterAmount parses the typed amount. On success both the amount and the
// derived amountTo are frozen into the session; the next step is SelectBank
// when the target currency is fiat with at least one enabled bank, otherwise
// EnterPaymentDetails.
func (s *DraftService) EnterAmount(ctx context.Context, actorID, amountText string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.DraftStepEnterAmount {
		return nil, fmt.Errorf("%w: an amount is not expected at this step", apperrors.ErrValidation)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(amountText), ",", "."))
	if err != nil {
		return nil, fmt.Errorf("%w: amount must be a number", apperrors.ErrValidation)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	session.AmountFrom = amount
	session.AmountTo = amount.Mul(session.Rate)

	needBank, err := s.bankStepRequired(ctx, session.ToCurrencyCode)
	if err != nil {
		return nil, err
	}
	if needBank {
		session.Step = domain.DraftStepSelectBank
	} else {
		session.Step = domain.DraftStepEnterPaymentDetails
	}

	if err := s.store.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save draft session: %w", err)
	}
	return session, nil
}

// SelectBank applies the receiving-bank choice.
func (s *DraftService) SelectBank(ctx context.Context, actorID, bankID string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.DraftStepSelectBank {
		return nil, fmt.Errorf("%w: a bank choice is not expected at this step", apperrors.ErrValidation)
	}

	bank, err := s.bankService.GetBankByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown bank", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up bank for draft: %w", err)
	}
	if !bank.Enabled || bank.CurrencyCode != session.ToCurrencyCode {
		return nil, fmt.Errorf("%w: bank '%s' cannot receive %s", apperrors.ErrValidation, bank.Name, session.ToCurrencyCode)
	}

	session.BankID = &bank.BankID
	session.Step = domain.DraftStepEnterPaymentDetails

	if err := s.store.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save draft session: %w", err)
	}
	return session, nil
}

// EnterPaymentDetails records where the requester wants to receive funds.
func (s *DraftService) EnterPaymentDetails(ctx context.Context, actorID, details string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.DraftStepEnterPaymentDetails {
		return nil, fmt.Errorf("%w: payment details are not expected at this step", apperrors.ErrValidation)
	}

	details = strings.TrimSpace(details)
	if len(details) < 5 {
		return nil, fmt.Errorf("%w: payment details are too short", apperrors.ErrValidation)
	}

	session.PaymentDetails = details
	session.Step = domain.DraftStepConfirm

	if err := s.store.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save draft session: %w", err)
	}
	return session, nil
}

// Back steps from SelectTo back to SelectFrom. On every other step a back
// signal cancels the whole session and nil is returned. The asymmetry
// mirrors the dialog's intended UX and is deliberate.
func (s *DraftService) Back(ctx context.Context, actorID string) (*domain.DraftSession, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if session.Step != domain.DraftStepSelectTo {
		if err := s.store.Delete(ctx, actorID); err != nil {
			return nil, fmt.Errorf("failed to discard draft session: %w", err)
		}
		return nil, nil
	}

	session.FromCurrencyCode = ""
	session.Step = domain.DraftStepSelectFrom
	if err := s.store.Put(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to save draft session: %w", err)
	}
	return session, nil
}

// Cancel discards the session without persisting anything.
func (s *DraftService) Cancel(ctx context.Context, actorID string) error {
	return s.store.Delete(ctx, actorID)
}

// Confirm materializes the draft into a CREATED order and discards the
// session. The session survives when order creation fails, so the actor can
// retry.
func (s *DraftService) Confirm(ctx context.Context, actorID string) (*domain.Order, error) {
	session, err := s.store.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.DraftStepConfirm {
		return nil, fmt.Errorf("%w: the draft is not ready to confirm", apperrors.ErrValidation)
	}

	order, err := s.orderCreator.CreateOrderFromDraft(ctx, *session)
	if err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, actorID); err != nil {
		return nil, fmt.Errorf("order created but failed to discard draft session: %w", err)
	}
	return order, nil
}

func (s *DraftService) validateCurrency(ctx context.Context, code string) error {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: unknown currency '%s'", apperrors.ErrValidation, code)
		}
		return fmt.Errorf("failed to look up currency for draft: %w", err)
	}
	if !currency.Enabled {
		return fmt.Errorf("%w: currency '%s' is disabled", apperrors.ErrValidation, code)
	}
	return nil
}

func (s *DraftService) bankStepRequired(ctx context.Context, toCurrencyCode string) (bool, error) {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, toCurrencyCode)
	if err != nil {
		return false, fmt.Errorf("failed to look up target currency: %w", err)
	}
	if currency.Kind != domain.CurrencyKindFiat {
		return false, nil
	}
	banks, err := s.bankService.ListBanksForCurrency(ctx, toCurrencyCode, true)
	if err != nil {
		return false, fmt.Errorf("failed to list banks for target currency: %w", err)
	}
	return len(banks) > 0, nil
}
