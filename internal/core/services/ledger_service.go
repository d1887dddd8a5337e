package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/utils/ledger"
)

type ledgerService struct {
	BaseService
	groupRepo       portsrepo.GroupRepositoryFacade
	participantRepo portsrepo.ParticipantRepositoryFacade
	paymentRepo     portsrepo.PaymentRepositoryFacade
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	entryRepo       portsrepo.CompanyEntryRepositoryFacade
	ratesSvc        portssvc.RatesSvc
}

// NewLedgerService creates the read-only financial reporting service.
func NewLedgerService(
	groupRepo portsrepo.GroupRepositoryFacade,
	participantRepo portsrepo.ParticipantRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	entryRepo portsrepo.CompanyEntryRepositoryFacade,
	ratesSvc portssvc.RatesSvc,
) portssvc.LedgerSvc {
	return &ledgerService{
		groupRepo:       groupRepo,
		participantRepo: participantRepo,
		paymentRepo:     paymentRepo,
		expenseRepo:     expenseRepo,
		entryRepo:       entryRepo,
		ratesSvc:        ratesSvc,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) ParticipantBalance(ctx context.Context, participantID string) (*domain.ParticipantLedger, error) {
	participant, err := s.participantRepo.FindParticipantByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.FindGroupByID(ctx, participant.GroupID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByParticipant(ctx, participantID)
	if err != nil {
		return nil, err
	}

	rates := s.ratesSvc.Current(ctx)
	result := buildParticipantLedger(*group, *participant, payments, rates)
	return &result, nil
}

// buildParticipantLedger computes both views of one participant's position:
// the group-currency view converts every payment with live rates, the TRY
// view sums the amountTRY snapshots recorded at write time. The two are
// intentionally allowed to disagree.
func buildParticipantLedger(group domain.Group, p domain.Participant, payments []domain.Payment, rates domain.ExchangeRates) domain.ParticipantLedger {
	sums := ledger.PaymentSumsByCurrency(payments)

	return domain.ParticipantLedger{
		ParticipantID: p.ParticipantID,
		FullName:      p.FullName,
		GroupID:       p.GroupID,
		GroupCurrency: group.Currency,
		Fee:           ledger.Fee(group, p),
		Paid:          ledger.PaidInCurrency(sums, group.Currency, rates),
		Balance:       ledger.Balance(group, payments, p, rates),
		Valuation:     domain.ValuationLive,
		FeeTRY:        ledger.FeeInTRY(group, p, rates),
		PaidTRY:       ledger.PaidTRYRecorded(payments),
		BalanceTRY:    ledger.BalanceTRY(group, payments, p, rates),
		ValuationTRY:  domain.ValuationRecorded,
	}
}

func (s *ledgerService) GroupReport(ctx context.Context, groupID string) (*domain.GroupReport, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	participants, err := s.participantRepo.ListParticipantsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	rates := s.ratesSvc.Current(ctx)

	paymentsByParticipant := make(map[string][]domain.Payment)
	for _, payment := range payments {
		paymentsByParticipant[payment.ParticipantID] = append(paymentsByParticipant[payment.ParticipantID], payment)
	}

	ledgers := make([]domain.ParticipantLedger, len(participants))
	for i, p := range participants {
		ledgers[i] = buildParticipantLedger(*group, p, paymentsByParticipant[p.ParticipantID], rates)
	}

	// Totals stay bucketed per original currency, never merged.
	paymentTotals := make(map[string]domain.CurrencyTotals)
	for _, payment := range payments {
		t := paymentTotals[payment.Currency]
		t.Income = t.Income.Add(payment.Amount)
		t.Balance = t.Income.Sub(t.Expense)
		paymentTotals[payment.Currency] = t
	}
	expenseTotals := make(map[string]domain.CurrencyTotals)
	for _, expense := range expenses {
		t := expenseTotals[expense.Currency]
		t.Expense = t.Expense.Add(expense.Amount)
		t.Balance = t.Income.Sub(t.Expense)
		expenseTotals[expense.Currency] = t
	}

	report := &domain.GroupReport{
		Group:        *group,
		Participants: ledgers,
		Payments:     paymentTotals,
		Expenses:     expenseTotals,
		Enrolled:     len(participants),
		Remaining:    group.Capacity - len(participants),
	}

	s.LogDebug(ctx, "Group report built",
		slog.String("group_id", groupID),
		slog.Int("participants", len(participants)),
		slog.Int("payments", len(payments)))
	return report, nil
}

func (s *ledgerService) CompanyLedger(ctx context.Context, from, to *time.Time, bucket string) (*domain.CompanyLedger, error) {
	entries, err := s.entryRepo.ListCompanyEntries(ctx, from, to)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.LedgerEntry, 0, len(entries)+len(payments)+len(expenses))
	for _, e := range entries {
		rows = append(rows, domain.LedgerEntry{
			EntryID:     e.EntryID,
			Date:        e.Date,
			Type:        e.Type,
			Currency:    e.Currency,
			Amount:      e.Amount,
			AmountTRY:   e.AmountTRY,
			Category:    e.Category,
			Description: e.Description,
			Source:      domain.EntrySourceManual,
		})
	}
	for _, p := range payments {
		rows = append(rows, domain.LedgerEntry{
			EntryID:     p.PaymentID,
			Date:        p.Date,
			Type:        domain.EntryTypeIncome,
			Currency:    p.Currency,
			Amount:      p.Amount,
			AmountTRY:   p.AmountTRY,
			Category:    "Katılımcı Ödemesi",
			Description: p.Notes,
			Source:      domain.EntrySourceDerivedPayment,
			ReadOnly:    true,
		})
	}
	for _, e := range expenses {
		rows = append(rows, domain.LedgerEntry{
			EntryID:     e.ExpenseID,
			Date:        e.Date,
			Type:        domain.EntryTypeExpense,
			Currency:    e.Currency,
			Amount:      e.Amount,
			AmountTRY:   e.AmountTRY,
			Category:    e.Category,
			Description: e.Description,
			Source:      domain.EntrySourceDerivedExpense,
			ReadOnly:    true,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })

	result := &domain.CompanyLedger{
		Entries:    rows,
		ByCurrency: currencyTotals(rows),
	}

	switch bucket {
	case portssvc.LedgerBucketMonthly:
		result.Periods = periodTotals(rows, ledger.MonthKey)
	case portssvc.LedgerBucketWeekly:
		result.Periods = periodTotals(rows, ledger.WeekKey)
	}

	s.LogDebug(ctx, "Company ledger built",
		slog.Int("rows", len(rows)),
		slog.String("bucket", bucket))
	return result, nil
}

// currencyTotals sums rows per currency. Income and expense never cross
// currency boundaries.
func currencyTotals(rows []domain.LedgerEntry) map[string]domain.CurrencyTotals {
	totals := make(map[string]domain.CurrencyTotals)
	for _, row := range rows {
		t := totals[row.Currency]
		if row.Type == domain.EntryTypeIncome {
			t.Income = t.Income.Add(row.Amount)
		} else {
			t.Expense = t.Expense.Add(row.Amount)
		}
		t.Balance = t.Income.Sub(t.Expense)
		totals[row.Currency] = t
	}
	return totals
}

// periodTotals buckets rows by the given key function, sorted by period.
func periodTotals(rows []domain.LedgerEntry, keyFn func(time.Time) string) []domain.PeriodTotals {
	byPeriod := make(map[string][]domain.LedgerEntry)
	for _, row := range rows {
		key := keyFn(row.Date)
		byPeriod[key] = append(byPeriod[key], row)
	}

	keys := make([]string, 0, len(byPeriod))
	for key := range byPeriod {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	periods := make([]domain.PeriodTotals, len(keys))
	for i, key := range keys {
		periods[i] = domain.PeriodTotals{
			Period:     key,
			ByCurrency: currencyTotals(byPeriod[key]),
		}
	}
	return periods
}
