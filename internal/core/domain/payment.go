package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods as entered in the back office.
const (
	PaymentMethodNakit  = "Nakit"
	PaymentMethodKart   = "Kart"
	PaymentMethodHavale = "Havale"
	PaymentMethodDiger  = "Diğer"
)

// Payment is money received from a participant. Amount/Currency hold the
// original entry; AmountTRY is a point-in-time conversion snapshot taken at
// write time and is never recomputed when rates move.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	ParticipantID string          `json:"participantID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AmountTRY     decimal.Decimal `json:"amountTRY"`
	Method        string          `json:"method"`
	Notes         string          `json:"notes,omitempty"`
	AuditFields
}
