package dto

import (
	"time"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SelectCurrencyRequest carries a currency choice for the current step.
type SelectCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,min=2,max=10,uppercase"`
}

// EnterAmountRequest carries the raw amount text the actor typed. Parsing
// and validation belong to the draft service, not the transport.
type EnterAmountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// SelectBankRequest carries the chosen receiving bank.
type SelectBankRequest struct {
	BankID string `json:"bankID" binding:"required,uuid"`
}

// EnterPaymentDetailsRequest carries the requester's receiving requisites.
type EnterPaymentDetailsRequest struct {
	Details string `json:"details" binding:"required,notblank,min=5,max=500"`
}

// DraftSessionResponse mirrors the actor's dialog state, including which
// step is pending.
type DraftSessionResponse struct {
	Step             domain.DraftStep `json:"step"`
	FromCurrencyCode string           `json:"fromCurrencyCode,omitempty"`
	ToCurrencyCode   string           `json:"toCurrencyCode,omitempty"`
	Rate             decimal.Decimal  `json:"rate"`
	AmountFrom       decimal.Decimal  `json:"amountFrom"`
	AmountTo         decimal.Decimal  `json:"amountTo"`
	BankID           *string          `json:"bankID,omitempty"`
	PaymentDetails   string           `json:"paymentDetails,omitempty"`
	StartedAt        time.Time        `json:"startedAt"`
}

// ToDraftSessionResponse converts a domain.DraftSession to its response DTO.
func ToDraftSessionResponse(s *domain.DraftSession) DraftSessionResponse {
	return DraftSessionResponse{
		Step:             s.Step,
		FromCurrencyCode: s.FromCurrencyCode,
		ToCurrencyCode:   s.ToCurrencyCode,
		Rate:             s.Rate,
		AmountFrom:       s.AmountFrom,
		AmountTo:         s.AmountTo,
		BankID:           s.BankID,
		PaymentDetails:   s.PaymentDetails,
		StartedAt:        s.StartedAt,
	}
}
