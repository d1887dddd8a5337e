package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories as used by operations.
const (
	ExpenseCategoryUcak      = "Uçak"
	ExpenseCategoryOtel      = "Otel"
	ExpenseCategoryTransfer  = "Transfer"
	ExpenseCategoryRehberlik = "Rehberlik"
	ExpenseCategoryVize      = "Vize"
	ExpenseCategoryDiger     = "Diğer"
)

// Expense is an operational cost. GroupID is nil for company-general
// expenses. AmountTRY follows the same write-time snapshot rule as Payment.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	GroupID     *string         `json:"groupID,omitempty"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	AmountTRY   decimal.Decimal `json:"amountTRY"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
