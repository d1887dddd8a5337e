package domain

import "github.com/shopspring/decimal"

// Valuation policies for computed amounts. "recorded" uses the amountTRY
// snapshots stored at write time; "live" reconverts original amounts with
// the rates in effect at read time. Both are valid, intentionally
// divergent views and reports must label which one produced a number.
const (
	ValuationRecorded = "recorded"
	ValuationLive     = "live"
)

// CurrencyTotals is an income/expense aggregate for a single currency.
// Amounts from different currencies are never merged into one number.
type CurrencyTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// PeriodTotals is a per-currency aggregate for one monthly or weekly
// bucket. Period is "2006-01" for monthly and "2006-W02" for ISO weeks.
type PeriodTotals struct {
	Period     string                    `json:"period"`
	ByCurrency map[string]CurrencyTotals `json:"byCurrency"`
}

// ParticipantLedger is the computed financial position of one participant,
// shown both in the group's currency (live rates) and in TRY.
type ParticipantLedger struct {
	ParticipantID string          `json:"participantID"`
	FullName      string          `json:"fullName"`
	GroupID       string          `json:"groupID"`
	GroupCurrency string          `json:"groupCurrency"`
	Fee           decimal.Decimal `json:"fee"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	Valuation     string          `json:"valuation"` // always "live"
	FeeTRY        decimal.Decimal `json:"feeTRY"`
	PaidTRY       decimal.Decimal `json:"paidTRY"`
	BalanceTRY    decimal.Decimal `json:"balanceTRY"`
	ValuationTRY  string          `json:"valuationTRY"` // always "recorded"
}

// GroupReport is the roster report for one group.
type GroupReport struct {
	Group        Group                     `json:"group"`
	Participants []ParticipantLedger       `json:"participants"`
	Payments     map[string]CurrencyTotals `json:"paymentsByCurrency"`
	Expenses     map[string]CurrencyTotals `json:"expensesByCurrency"`
	Enrolled     int                       `json:"enrolled"`
	Remaining    int                       `json:"remaining"`
}

// CompanyLedger is the combined company-level ledger for a scope.
type CompanyLedger struct {
	Entries    []LedgerEntry             `json:"entries"`
	ByCurrency map[string]CurrencyTotals `json:"byCurrency"`
	Periods    []PeriodTotals            `json:"periods,omitempty"`
}
