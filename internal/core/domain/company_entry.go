package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType marks a company-ledger row as income or expense.
type EntryType string

const (
	EntryTypeIncome  EntryType = "Gelir"
	EntryTypeExpense EntryType = "Gider"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	return t == EntryTypeIncome || t == EntryTypeExpense
}

// CompanyEntry is a manually recorded company-level income or expense.
// Derived ledger rows (from payments and expenses) are never stored; they
// are computed on read, see LedgerEntry.
type CompanyEntry struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Type        EntryType       `json:"type"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	AmountTRY   decimal.Decimal `json:"amountTRY"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	AuditFields
}

// Ledger entry sources. Manual entries are editable; derived entries are
// read-only projections of payments and expenses.
const (
	EntrySourceManual         = "manual"
	EntrySourceDerivedPayment = "payment"
	EntrySourceDerivedExpense = "expense"
)

// LedgerEntry is one row of the combined company ledger: either a manual
// CompanyEntry or a derived row projected from a payment or expense.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Type        EntryType       `json:"type"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	AmountTRY   decimal.Decimal `json:"amountTRY"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Source      string          `json:"source"`
	ReadOnly    bool            `json:"readOnly"`
}
