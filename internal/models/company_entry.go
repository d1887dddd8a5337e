package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyEntry represents a row of the company_entries table. Only manual
// entries are stored; derived ledger rows are computed on read.
type CompanyEntry struct {
	EntryID     string          `json:"entryID" db:"entry_id"`
	Date        time.Time       `json:"date" db:"date"`
	Type        string          `json:"type" db:"type"`
	Currency    string          `json:"currency" db:"currency"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	AmountTRY   decimal.Decimal `json:"amountTRY" db:"amount_try"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	AuditFields
}
