package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/core/services"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
)

func TestParticipantBalance_LiveAndRecordedViewsDiverge(t *testing.T) {
	group := testGroup()
	group.Capacity = 10

	groupRepo := &fakeGroupRepo{
		FindGroupByIDFn: func(ctx context.Context, groupID string) (*domain.Group, error) {
			return group, nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		FindParticipantByIDFn: func(ctx context.Context, participantID string) (*domain.Participant, error) {
			return &domain.Participant{
				ParticipantID: participantID,
				FullName:      "Mehmet Yılmaz",
				GroupID:       "group-1",
				RoomType:      "2",
				DayCount:      10,
				Discount:      decimal.NewFromInt(100),
			}, nil
		},
	}
	paymentRepo := &fakePaymentRepo{
		ListPaymentsByParticipantFn: func(ctx context.Context, participantID string) ([]domain.Payment, error) {
			return []domain.Payment{
				// snapshot taken when USDTRY was 35, live rate is 40
				{PaymentID: "pay-1", ParticipantID: participantID, Currency: "USD", Amount: decimal.NewFromInt(500), AmountTRY: decimal.NewFromInt(17500)},
				{PaymentID: "pay-2", ParticipantID: participantID, Currency: "TRY", Amount: decimal.NewFromInt(800), AmountTRY: decimal.NewFromInt(800)},
			}, nil
		},
	}

	svc := services.NewLedgerService(groupRepo, participantRepo, paymentRepo, &fakeExpenseRepo{}, &fakeCompanyEntryRepo{}, &stubRatesSvc{rates: testRates()})
	result, err := svc.ParticipantBalance(context.Background(), "p-1")
	require.NoError(t, err)

	// Fee: 1000 (d10/room2) - 100 discount = 900 USD.
	assert.True(t, result.Fee.Equal(decimal.NewFromInt(900)))

	// Live view: 500 USD + 800 TRY at 40 = 520 USD paid, 380 USD owed.
	assert.True(t, result.Paid.Equal(decimal.NewFromInt(520)), "got %s", result.Paid)
	assert.True(t, result.Balance.Equal(decimal.NewFromInt(380)), "got %s", result.Balance)
	assert.Equal(t, domain.ValuationLive, result.Valuation)

	// Recorded view: fee live at 40 = 36000 TRY, snapshots sum to 18300.
	assert.True(t, result.FeeTRY.Equal(decimal.NewFromInt(36000)), "got %s", result.FeeTRY)
	assert.True(t, result.PaidTRY.Equal(decimal.NewFromInt(18300)), "got %s", result.PaidTRY)
	assert.True(t, result.BalanceTRY.Equal(decimal.NewFromInt(17700)), "got %s", result.BalanceTRY)
	assert.Equal(t, domain.ValuationRecorded, result.ValuationTRY)
}

func TestGroupReport_TotalsStayPerCurrency(t *testing.T) {
	group := testGroup()
	group.Capacity = 5

	gid := "group-1"
	groupRepo := &fakeGroupRepo{
		FindGroupByIDFn: func(ctx context.Context, groupID string) (*domain.Group, error) {
			return group, nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		ListParticipantsByGroupFn: func(ctx context.Context, groupID string) ([]domain.Participant, error) {
			return []domain.Participant{
				{ParticipantID: "p-1", GroupID: groupID, RoomType: "2", DayCount: 10},
				{ParticipantID: "p-2", GroupID: groupID, RoomType: "3", DayCount: 10},
			}, nil
		},
	}
	paymentRepo := &fakePaymentRepo{
		ListPaymentsByGroupFn: func(ctx context.Context, groupID string) ([]domain.Payment, error) {
			return []domain.Payment{
				{PaymentID: "pay-1", ParticipantID: "p-1", Currency: "USD", Amount: decimal.NewFromInt(300), AmountTRY: decimal.NewFromInt(12000)},
				{PaymentID: "pay-2", ParticipantID: "p-2", Currency: "USD", Amount: decimal.NewFromInt(200), AmountTRY: decimal.NewFromInt(8000)},
				{PaymentID: "pay-3", ParticipantID: "p-2", Currency: "TRY", Amount: decimal.NewFromInt(5000), AmountTRY: decimal.NewFromInt(5000)},
			}, nil
		},
	}
	expenseRepo := &fakeExpenseRepo{
		ListExpensesByGroupFn: func(ctx context.Context, groupID string) ([]domain.Expense, error) {
			return []domain.Expense{
				{ExpenseID: "e-1", GroupID: &gid, Currency: "SAR", Amount: decimal.NewFromInt(1500), Category: domain.ExpenseCategoryOtel},
			}, nil
		},
	}

	svc := services.NewLedgerService(groupRepo, participantRepo, paymentRepo, expenseRepo, &fakeCompanyEntryRepo{}, &stubRatesSvc{rates: testRates()})
	report, err := svc.GroupReport(context.Background(), gid)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Enrolled)
	assert.Equal(t, 3, report.Remaining)
	require.Len(t, report.Participants, 2)

	// USD and TRY payments must not be merged into a single total.
	require.Contains(t, report.Payments, "USD")
	require.Contains(t, report.Payments, "TRY")
	assert.True(t, report.Payments["USD"].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Payments["TRY"].Income.Equal(decimal.NewFromInt(5000)))

	require.Contains(t, report.Expenses, "SAR")
	assert.True(t, report.Expenses["SAR"].Expense.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.Expenses["SAR"].Balance.Equal(decimal.NewFromInt(-1500)))
}

func TestCompanyLedger_MergesDerivedRowsSorted(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }

	entryRepo := &fakeCompanyEntryRepo{
		ListCompanyEntriesFn: func(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
			return []domain.CompanyEntry{
				{EntryID: "ce-1", Date: day(3), Type: domain.EntryTypeExpense, Currency: "TRY", Amount: decimal.NewFromInt(2000), AmountTRY: decimal.NewFromInt(2000), Category: "Kira"},
			}, nil
		},
	}
	paymentRepo := &fakePaymentRepo{
		ListPaymentsFn: func(ctx context.Context, from, to *time.Time) ([]domain.Payment, error) {
			return []domain.Payment{
				{PaymentID: "pay-1", ParticipantID: "p-1", Date: day(1), Currency: "USD", Amount: decimal.NewFromInt(500), AmountTRY: decimal.NewFromInt(20000)},
			}, nil
		},
	}
	expenseRepo := &fakeExpenseRepo{
		ListExpensesFn: func(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
			return []domain.Expense{
				{ExpenseID: "e-1", Date: day(2), Currency: "USD", Amount: decimal.NewFromInt(100), AmountTRY: decimal.NewFromInt(4000), Category: domain.ExpenseCategoryVize},
			}, nil
		},
	}

	svc := services.NewLedgerService(&fakeGroupRepo{}, &fakeParticipantRepo{}, paymentRepo, expenseRepo, entryRepo, &stubRatesSvc{rates: testRates()})
	result, err := svc.CompanyLedger(context.Background(), nil, nil, portssvc.LedgerBucketNone)
	require.NoError(t, err)

	require.Len(t, result.Entries, 3)
	assert.Equal(t, "pay-1", result.Entries[0].EntryID)
	assert.Equal(t, "e-1", result.Entries[1].EntryID)
	assert.Equal(t, "ce-1", result.Entries[2].EntryID)

	// Derived rows are read-only, the manual one is not.
	assert.True(t, result.Entries[0].ReadOnly)
	assert.Equal(t, domain.EntrySourceDerivedPayment, result.Entries[0].Source)
	assert.Equal(t, domain.EntryTypeIncome, result.Entries[0].Type)
	assert.Equal(t, "Katılımcı Ödemesi", result.Entries[0].Category)
	assert.True(t, result.Entries[1].ReadOnly)
	assert.Equal(t, domain.EntrySourceDerivedExpense, result.Entries[1].Source)
	assert.False(t, result.Entries[2].ReadOnly)
	assert.Equal(t, domain.EntrySourceManual, result.Entries[2].Source)

	// Per-currency totals: USD 500 in, 100 out; TRY 2000 out.
	assert.True(t, result.ByCurrency["USD"].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, result.ByCurrency["USD"].Expense.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.ByCurrency["USD"].Balance.Equal(decimal.NewFromInt(400)))
	assert.True(t, result.ByCurrency["TRY"].Balance.Equal(decimal.NewFromInt(-2000)))

	assert.Empty(t, result.Periods)
}

func TestCompanyLedger_MonthlyBuckets(t *testing.T) {
	entryRepo := &fakeCompanyEntryRepo{
		ListCompanyEntriesFn: func(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
			return []domain.CompanyEntry{
				{EntryID: "ce-1", Date: time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), Type: domain.EntryTypeIncome, Currency: "TRY", Amount: decimal.NewFromInt(1000)},
				{EntryID: "ce-2", Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Type: domain.EntryTypeExpense, Currency: "TRY", Amount: decimal.NewFromInt(400)},
			}, nil
		},
	}
	paymentRepo := &fakePaymentRepo{
		ListPaymentsFn: func(ctx context.Context, from, to *time.Time) ([]domain.Payment, error) {
			return nil, nil
		},
	}
	expenseRepo := &fakeExpenseRepo{
		ListExpensesFn: func(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
			return nil, nil
		},
	}

	svc := services.NewLedgerService(&fakeGroupRepo{}, &fakeParticipantRepo{}, paymentRepo, expenseRepo, entryRepo, &stubRatesSvc{rates: testRates()})
	result, err := svc.CompanyLedger(context.Background(), nil, nil, portssvc.LedgerBucketMonthly)
	require.NoError(t, err)

	require.Len(t, result.Periods, 2)
	assert.Equal(t, "2026-04", result.Periods[0].Period)
	assert.Equal(t, "2026-05", result.Periods[1].Period)
	assert.True(t, result.Periods[0].ByCurrency["TRY"].Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Periods[1].ByCurrency["TRY"].Expense.Equal(decimal.NewFromInt(400)))
}

func TestCompanyLedger_WeeklyBucketKeys(t *testing.T) {
	entryRepo := &fakeCompanyEntryRepo{
		ListCompanyEntriesFn: func(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
			return []domain.CompanyEntry{
				// 2026-01-01 is a Thursday, ISO week 1.
				{EntryID: "ce-1", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), Type: domain.EntryTypeIncome, Currency: "TRY", Amount: decimal.NewFromInt(100)},
			}, nil
		},
	}
	paymentRepo := &fakePaymentRepo{
		ListPaymentsFn: func(ctx context.Context, from, to *time.Time) ([]domain.Payment, error) { return nil, nil },
	}
	expenseRepo := &fakeExpenseRepo{
		ListExpensesFn: func(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) { return nil, nil },
	}

	svc := services.NewLedgerService(&fakeGroupRepo{}, &fakeParticipantRepo{}, paymentRepo, expenseRepo, entryRepo, &stubRatesSvc{rates: testRates()})
	result, err := svc.CompanyLedger(context.Background(), nil, nil, portssvc.LedgerBucketWeekly)
	require.NoError(t, err)

	require.Len(t, result.Periods, 1)
	assert.Equal(t, "2026-W01", result.Periods[0].Period)
}
