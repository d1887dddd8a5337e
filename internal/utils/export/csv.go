package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// GroupReportCSV writes the group roster report as CSV. One row per
// participant, followed by a blank line and per-currency totals.
func GroupReportCSV(report domain.GroupReport, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{
		"Ad Soyad", "Ücret (" + report.Group.Currency + ")",
		"Ödenen", "Kalan", "Ücret (TRY)", "Ödenen (TRY)", "Kalan (TRY)",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range report.Participants {
		row := []string{
			p.FullName,
			p.Fee.String(),
			p.Paid.String(),
			p.Balance.String(),
			p.FeeTRY.String(),
			p.PaidTRY.String(),
			p.BalanceTRY.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write participant row: %w", err)
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}
	if err := cw.Write([]string{"Para Birimi", "Tahsilat", "Gider"}); err != nil {
		return fmt.Errorf("failed to write totals header: %w", err)
	}
	for _, currency := range sortedCurrencies(report.Payments, report.Expenses) {
		row := []string{
			currency,
			report.Payments[currency].Income.String(),
			report.Expenses[currency].Expense.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CompanyLedgerCSV writes the combined company ledger as CSV.
func CompanyLedgerCSV(ledger domain.CompanyLedger, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"Tarih", "Tür", "Kategori", "Açıklama", "Para Birimi", "Tutar", "Tutar (TRY)", "Kaynak"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range ledger.Entries {
		row := []string{
			e.Date.Format("2006-01-02"),
			string(e.Type),
			e.Category,
			e.Description,
			e.Currency,
			e.Amount.String(),
			e.AmountTRY.String(),
			e.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// sortedCurrencies merges the key sets of both total maps into a stable
// order, so exports do not reshuffle between runs.
func sortedCurrencies(a, b map[string]domain.CurrencyTotals) []string {
	seen := make(map[string]struct{})
	for currency := range a {
		seen[currency] = struct{}{}
	}
	for currency := range b {
		seen[currency] = struct{}{}
	}
	currencies := make([]string, 0, len(seen))
	for currency := range seen {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)
	return currencies
}
