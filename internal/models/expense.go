package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID   string          `json:"expenseID" db:"expense_id"`
	GroupID     *string         `json:"groupID" db:"group_id"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Currency    string          `json:"currency" db:"currency"`
	AmountTRY   decimal.Decimal `json:"amountTRY" db:"amount_try"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	AuditFields
}
