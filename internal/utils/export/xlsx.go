package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// GroupReportXLSX writes the group roster report as an xlsx workbook with a
// participant sheet and a per-currency totals sheet.
func GroupReportXLSX(report domain.GroupReport, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Katılımcılar"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	sheet = "Katılımcılar"

	header := []interface{}{
		"Ad Soyad", "Ücret (" + report.Group.Currency + ")",
		"Ödenen", "Kalan", "Ücret (TRY)", "Ödenen (TRY)", "Kalan (TRY)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, p := range report.Participants {
		row := []interface{}{
			p.FullName,
			p.Fee.String(),
			p.Paid.String(),
			p.Balance.String(),
			p.FeeTRY.String(),
			p.PaidTRY.String(),
			p.BalanceTRY.String(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write participant row: %w", err)
		}
	}

	totalsSheet := "Toplamlar"
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return fmt.Errorf("failed to create totals sheet: %w", err)
	}
	if err := writeCurrencyTotalsSheet(f, totalsSheet, report.Payments, report.Expenses); err != nil {
		return err
	}

	return f.Write(w)
}

// CompanyLedgerXLSX writes the combined company ledger as an xlsx workbook.
func CompanyLedgerXLSX(ledger domain.CompanyLedger, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Defter"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	sheet = "Defter"

	header := []interface{}{"Tarih", "Tür", "Kategori", "Açıklama", "Para Birimi", "Tutar", "Tutar (TRY)", "Kaynak"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range ledger.Entries {
		row := []interface{}{
			e.Date.Format("2006-01-02"),
			string(e.Type),
			e.Category,
			e.Description,
			e.Currency,
			e.Amount.String(),
			e.AmountTRY.String(),
			e.Source,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}
	}

	return f.Write(w)
}

func writeCurrencyTotalsSheet(f *excelize.File, sheet string, payments, expenses map[string]domain.CurrencyTotals) error {
	header := []interface{}{"Para Birimi", "Tahsilat", "Gider"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write totals header: %w", err)
	}

	rowIdx := 2
	for _, currency := range sortedCurrencies(payments, expenses) {
		row := []interface{}{
			currency,
			payments[currency].Income.String(),
			expenses[currency].Expense.String(),
		}
		cell := fmt.Sprintf("A%d", rowIdx)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write totals row: %w", err)
		}
		rowIdx++
	}
	return nil
}
