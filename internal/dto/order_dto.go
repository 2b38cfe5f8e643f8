package dto

import (
	"time"

	"github.com/changifyhq/changify-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RejectOrderRequest carries the mandatory rejection reason.
type RejectOrderRequest struct {
	Reason string `json:"reason" binding:"required,notblank,min=1,max=500"`
}

// ProvidePaymentDetailsRequest carries the operator's payment requisites.
type ProvidePaymentDetailsRequest struct {
	Details string `json:"details" binding:"required,notblank,min=5,max=500"`
}

// OrderResponse defines the structure for API responses containing order details.
type OrderResponse struct {
	OrderID                 string             `json:"orderID"`
	RequesterID             string             `json:"requesterID"`
	OperatorID              *string            `json:"operatorID,omitempty"`
	FromCurrencyCode        string             `json:"fromCurrencyCode"`
	ToCurrencyCode          string             `json:"toCurrencyCode"`
	AmountFrom              decimal.Decimal    `json:"amountFrom"`
	AmountTo                decimal.Decimal    `json:"amountTo"`
	Rate                    decimal.Decimal    `json:"rate"`
	BankID                  *string            `json:"bankID,omitempty"`
	RequesterPaymentDetails string             `json:"requesterPaymentDetails"`
	OperatorPaymentDetails  *string            `json:"operatorPaymentDetails,omitempty"`
	Status                  domain.OrderStatus `json:"status"`
	RejectionReason         *string            `json:"rejectionReason,omitempty"`
	CreatedAt               time.Time          `json:"createdAt"`
	UpdatedAt               time.Time          `json:"updatedAt"`
	CompletedAt             *time.Time         `json:"completedAt,omitempty"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:                 o.OrderID,
		RequesterID:             o.RequesterID,
		OperatorID:              o.OperatorID,
		FromCurrencyCode:        o.FromCurrencyCode,
		ToCurrencyCode:          o.ToCurrencyCode,
		AmountFrom:              o.AmountFrom,
		AmountTo:                o.AmountTo,
		Rate:                    o.Rate,
		BankID:                  o.BankID,
		RequesterPaymentDetails: o.RequesterPaymentDetails,
		OperatorPaymentDetails:  o.OperatorPaymentDetails,
		Status:                  o.Status,
		RejectionReason:         o.RejectionReason,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
		CompletedAt:             o.CompletedAt,
	}
}

// ToListOrderResponse converts a slice of domain.Order to response DTOs.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
