package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CurrencyTotalsResponse is an income/expense aggregate for one currency.
type CurrencyTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

func toCurrencyTotalsMap(m map[string]domain.CurrencyTotals) map[string]CurrencyTotalsResponse {
	res := make(map[string]CurrencyTotalsResponse, len(m))
	for cur, t := range m {
		res[cur] = CurrencyTotalsResponse{Income: t.Income, Expense: t.Expense, Balance: t.Balance}
	}
	return res
}

// ParticipantLedgerResponse is one participant's computed financial position.
type ParticipantLedgerResponse struct {
	ParticipantID string          `json:"participantID"`
	FullName      string          `json:"fullName"`
	GroupID       string          `json:"groupID"`
	GroupCurrency string          `json:"groupCurrency"`
	Fee           decimal.Decimal `json:"fee"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	Valuation     string          `json:"valuation"`
	FeeTRY        decimal.Decimal `json:"feeTRY"`
	PaidTRY       decimal.Decimal `json:"paidTRY"`
	BalanceTRY    decimal.Decimal `json:"balanceTRY"`
	ValuationTRY  string          `json:"valuationTRY"`
}

// ToParticipantLedgerResponse converts a domain.ParticipantLedger to its DTO
func ToParticipantLedgerResponse(l *domain.ParticipantLedger) ParticipantLedgerResponse {
	return ParticipantLedgerResponse{
		ParticipantID: l.ParticipantID,
		FullName:      l.FullName,
		GroupID:       l.GroupID,
		GroupCurrency: l.GroupCurrency,
		Fee:           l.Fee,
		Paid:          l.Paid,
		Balance:       l.Balance,
		Valuation:     l.Valuation,
		FeeTRY:        l.FeeTRY,
		PaidTRY:       l.PaidTRY,
		BalanceTRY:    l.BalanceTRY,
		ValuationTRY:  l.ValuationTRY,
	}
}

// GroupReportResponse is the roster report for one group.
type GroupReportResponse struct {
	Group        GroupResponse                     `json:"group"`
	Participants []ParticipantLedgerResponse       `json:"participants"`
	Payments     map[string]CurrencyTotalsResponse `json:"paymentsByCurrency"`
	Expenses     map[string]CurrencyTotalsResponse `json:"expensesByCurrency"`
	Enrolled     int                               `json:"enrolled"`
	Remaining    int                               `json:"remaining"`
}

// ToGroupReportResponse converts a domain.GroupReport to its DTO
func ToGroupReportResponse(r *domain.GroupReport) GroupReportResponse {
	participants := make([]ParticipantLedgerResponse, len(r.Participants))
	for i := range r.Participants {
		participants[i] = ToParticipantLedgerResponse(&r.Participants[i])
	}
	return GroupReportResponse{
		Group:        ToGroupResponse(&r.Group),
		Participants: participants,
		Payments:     toCurrencyTotalsMap(r.Payments),
		Expenses:     toCurrencyTotalsMap(r.Expenses),
		Enrolled:     r.Enrolled,
		Remaining:    r.Remaining,
	}
}

// LedgerEntryResponse is one row of the combined company ledger.
type LedgerEntryResponse struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	AmountTRY   decimal.Decimal `json:"amountTRY"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Source      string          `json:"source"`
	ReadOnly    bool            `json:"readOnly"`
}

// PeriodTotalsResponse is a per-currency aggregate for one time bucket.
type PeriodTotalsResponse struct {
	Period     string                            `json:"period"`
	ByCurrency map[string]CurrencyTotalsResponse `json:"byCurrency"`
}

// CompanyLedgerResponse is the combined company ledger for a scope.
type CompanyLedgerResponse struct {
	Entries    []LedgerEntryResponse             `json:"entries"`
	ByCurrency map[string]CurrencyTotalsResponse `json:"byCurrency"`
	Periods    []PeriodTotalsResponse            `json:"periods,omitempty"`
}

// ToCompanyLedgerResponse converts a domain.CompanyLedger to its DTO
func ToCompanyLedgerResponse(l *domain.CompanyLedger) CompanyLedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			EntryID:     e.EntryID,
			Date:        e.Date,
			Type:        string(e.Type),
			Currency:    e.Currency,
			Amount:      e.Amount,
			AmountTRY:   e.AmountTRY,
			Category:    e.Category,
			Description: e.Description,
			Source:      e.Source,
			ReadOnly:    e.ReadOnly,
		}
	}
	var periods []PeriodTotalsResponse
	if len(l.Periods) > 0 {
		periods = make([]PeriodTotalsResponse, len(l.Periods))
		for i, p := range l.Periods {
			periods[i] = PeriodTotalsResponse{Period: p.Period, ByCurrency: toCurrencyTotalsMap(p.ByCurrency)}
		}
	}
	return CompanyLedgerResponse{
		Entries:    entries,
		ByCurrency: toCurrencyTotalsMap(l.ByCurrency),
		Periods:    periods,
	}
}
