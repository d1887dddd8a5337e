package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table.
type Payment struct {
	PaymentID     string          `json:"paymentID" db:"payment_id"`
	ParticipantID string          `json:"participantID" db:"participant_id"`
	Date          time.Time       `json:"date" db:"date"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Currency      string          `json:"currency" db:"currency"`
	AmountTRY     decimal.Decimal `json:"amountTRY" db:"amount_try"`
	Method        string          `json:"method" db:"method"`
	Notes         string          `json:"notes" db:"notes"`
	AuditFields
}
