package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/utils/export"
)

func sampleReport() domain.GroupReport {
	return domain.GroupReport{
		Group: domain.Group{GroupID: "g-1", Name: "Ramazan Umresi", Currency: "USD", Capacity: 10},
		Participants: []domain.ParticipantLedger{
			{
				FullName:   "Mehmet Yılmaz",
				Fee:        decimal.NewFromInt(900),
				Paid:       decimal.NewFromInt(520),
				Balance:    decimal.NewFromInt(380),
				FeeTRY:     decimal.NewFromInt(36000),
				PaidTRY:    decimal.NewFromInt(18300),
				BalanceTRY: decimal.NewFromInt(17700),
			},
		},
		Payments: map[string]domain.CurrencyTotals{
			"USD": {Income: decimal.NewFromInt(520)},
		},
		Expenses: map[string]domain.CurrencyTotals{
			"SAR": {Expense: decimal.NewFromInt(1500)},
		},
		Enrolled:  1,
		Remaining: 9,
	}
}

func sampleLedger() domain.CompanyLedger {
	return domain.CompanyLedger{
		Entries: []domain.LedgerEntry{
			{
				EntryID:   "pay-1",
				Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
				Type:      domain.EntryTypeIncome,
				Currency:  "USD",
				Amount:    decimal.NewFromInt(500),
				AmountTRY: decimal.NewFromInt(20000),
				Category:  "Katılımcı Ödemesi",
				Source:    domain.EntrySourceDerivedPayment,
				ReadOnly:  true,
			},
			{
				EntryID:   "ce-1",
				Date:      time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
				Type:      domain.EntryTypeExpense,
				Currency:  "TRY",
				Amount:    decimal.NewFromInt(2000),
				AmountTRY: decimal.NewFromInt(2000),
				Category:  "Kira",
				Source:    domain.EntrySourceManual,
			},
		},
	}
}

func TestGroupReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.GroupReportCSV(sampleReport(), &buf))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(records), 4)
	assert.Equal(t, "Ad Soyad", records[0][0])
	assert.Equal(t, "Ücret (USD)", records[0][1])
	assert.Equal(t, "Mehmet Yılmaz", records[1][0])
	assert.Equal(t, "380", records[1][3])

	// Totals block lists SAR and USD in sorted order.
	last := records[len(records)-2:]
	assert.Equal(t, "SAR", last[0][0])
	assert.Equal(t, "1500", last[0][2])
	assert.Equal(t, "USD", last[1][0])
	assert.Equal(t, "520", last[1][1])
}

func TestCompanyLedgerCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.CompanyLedgerCSV(sampleLedger(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "2026-05-01", records[1][0])
	assert.Equal(t, "Gelir", records[1][1])
	assert.Equal(t, "payment", records[1][7])
	assert.Equal(t, "Kira", records[2][2])
}

func TestGroupReportXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.GroupReportXLSX(sampleReport(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Katılımcılar", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Mehmet Yılmaz", name)

	balance, err := f.GetCellValue("Katılımcılar", "D2")
	require.NoError(t, err)
	assert.Equal(t, "380", balance)

	currency, err := f.GetCellValue("Toplamlar", "A2")
	require.NoError(t, err)
	assert.Equal(t, "SAR", currency)
}

func TestCompanyLedgerXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.CompanyLedgerXLSX(sampleLedger(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	date, err := f.GetCellValue("Defter", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", date)

	source, err := f.GetCellValue("Defter", "H3")
	require.NoError(t, err)
	assert.Equal(t, "manual", source)
}
