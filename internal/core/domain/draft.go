package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DraftStep is the cursor of the guided request-creation dialog.
type DraftStep string

const (
	DraftStepSelectFrom          DraftStep = "SELECT_FROM"
	DraftStepSelectTo            DraftStep = "SELECT_TO"
	DraftStepEnterAmount         DraftStep = "ENTER_AMOUNT"
	DraftStepSelectBank          DraftStep = "SELECT_BANK"
	DraftStepEnterPaymentDetails DraftStep = "ENTER_PAYMENT_DETAILS"
	DraftStepConfirm             DraftStep = "CONFIRM"
)

// DraftSession is the in-progress, not-yet-persisted exchange request an
// actor is composing. At most one live session exists per actor. The rate
// and the derived AmountTo are frozen the moment the amount is entered; a
// concurrent rate update never alters them.
type DraftSession struct {
	ActorID          string          `json:"actorID"`
	Step             DraftStep       `json:"step"`
	FromCurrencyCode string          `json:"fromCurrencyCode,omitempty"`
	ToCurrencyCode   string          `json:"toCurrencyCode,omitempty"`
	Rate             decimal.Decimal `json:"rate"`
	AmountFrom       decimal.Decimal `json:"amountFrom"`
	AmountTo         decimal.Decimal `json:"amountTo"`
	BankID           *string         `json:"bankID,omitempty"`
	PaymentDetails   string          `json:"paymentDetails,omitempty"`
	StartedAt        time.Time       `json:"startedAt"`
}
