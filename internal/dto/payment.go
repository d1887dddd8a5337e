package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment.
// AmountTRY is computed server-side at write time and cannot be supplied.
type CreatePaymentRequest struct {
	ParticipantID string          `json:"participantID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"required,oneof=TRY USD SAR"`
	Method        string          `json:"method" binding:"required,oneof=Nakit Kart Havale Diğer"`
	Notes         string          `json:"notes"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
type UpdatePaymentRequest struct {
	Date     *time.Time       `json:"date"`
	Amount   *decimal.Decimal `json:"amount"`
	Currency *string          `json:"currency" binding:"omitempty,oneof=TRY USD SAR"`
	Method   *string          `json:"method" binding:"omitempty,oneof=Nakit Kart Havale Diğer"`
	Notes    *string          `json:"notes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	ParticipantID string          `json:"participantID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AmountTRY     decimal.Decimal `json:"amountTRY"`
	Method        string          `json:"method"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ParticipantID: p.ParticipantID,
		Date:          p.Date,
		Amount:        p.Amount,
		Currency:      p.Currency,
		AmountTRY:     p.AmountTRY,
		Method:        p.Method,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
