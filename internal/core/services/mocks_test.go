package services_test

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// Function-field fakes for the repository facades. Only the methods a test
// sets are expected to be called; the rest panic loudly.

type fakeGroupRepo struct {
	FindGroupByIDFn func(ctx context.Context, groupID string) (*domain.Group, error)
	ListGroupsFn    func(ctx context.Context, includeArchived bool) ([]domain.Group, error)
	SaveGroupFn     func(ctx context.Context, group domain.Group) error
	UpdateGroupFn   func(ctx context.Context, group domain.Group) error
	DeleteGroupFn   func(ctx context.Context, groupID string) error
}

func (f *fakeGroupRepo) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	return f.FindGroupByIDFn(ctx, groupID)
}
func (f *fakeGroupRepo) ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error) {
	return f.ListGroupsFn(ctx, includeArchived)
}
func (f *fakeGroupRepo) SaveGroup(ctx context.Context, group domain.Group) error {
	return f.SaveGroupFn(ctx, group)
}
func (f *fakeGroupRepo) UpdateGroup(ctx context.Context, group domain.Group) error {
	return f.UpdateGroupFn(ctx, group)
}
func (f *fakeGroupRepo) DeleteGroup(ctx context.Context, groupID string) error {
	return f.DeleteGroupFn(ctx, groupID)
}

type fakeParticipantRepo struct {
	FindParticipantByIDFn     func(ctx context.Context, participantID string) (*domain.Participant, error)
	ListParticipantsByGroupFn func(ctx context.Context, groupID string) ([]domain.Participant, error)
	CountParticipantsFn       func(ctx context.Context, groupID string) (int, error)
	SaveParticipantFn         func(ctx context.Context, participant domain.Participant) error
	UpdateParticipantFn       func(ctx context.Context, participant domain.Participant) error
	DeleteParticipantFn       func(ctx context.Context, participantID string) error
}

func (f *fakeParticipantRepo) FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	return f.FindParticipantByIDFn(ctx, participantID)
}
func (f *fakeParticipantRepo) ListParticipantsByGroup(ctx context.Context, groupID string) ([]domain.Participant, error) {
	return f.ListParticipantsByGroupFn(ctx, groupID)
}
func (f *fakeParticipantRepo) CountParticipantsByGroup(ctx context.Context, groupID string) (int, error) {
	return f.CountParticipantsFn(ctx, groupID)
}
func (f *fakeParticipantRepo) SaveParticipant(ctx context.Context, participant domain.Participant) error {
	return f.SaveParticipantFn(ctx, participant)
}
func (f *fakeParticipantRepo) UpdateParticipant(ctx context.Context, participant domain.Participant) error {
	return f.UpdateParticipantFn(ctx, participant)
}
func (f *fakeParticipantRepo) DeleteParticipant(ctx context.Context, participantID string) error {
	return f.DeleteParticipantFn(ctx, participantID)
}

type fakeRoomRepo struct {
	FindRoomByIDFn    func(ctx context.Context, roomID string) (*domain.Room, error)
	ListRoomsByGroupFn func(ctx context.Context, groupID string) ([]domain.Room, error)
	SaveRoomFn        func(ctx context.Context, room domain.Room) error
	UpdateRoomFn      func(ctx context.Context, room domain.Room) error
	DeleteRoomFn      func(ctx context.Context, roomID string) error
}

func (f *fakeRoomRepo) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	return f.FindRoomByIDFn(ctx, roomID)
}
func (f *fakeRoomRepo) ListRoomsByGroup(ctx context.Context, groupID string) ([]domain.Room, error) {
	return f.ListRoomsByGroupFn(ctx, groupID)
}
func (f *fakeRoomRepo) SaveRoom(ctx context.Context, room domain.Room) error {
	return f.SaveRoomFn(ctx, room)
}
func (f *fakeRoomRepo) UpdateRoom(ctx context.Context, room domain.Room) error {
	return f.UpdateRoomFn(ctx, room)
}
func (f *fakeRoomRepo) DeleteRoom(ctx context.Context, roomID string) error {
	return f.DeleteRoomFn(ctx, roomID)
}

type fakePaymentRepo struct {
	FindPaymentByIDFn           func(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPaymentsByParticipantFn func(ctx context.Context, participantID string) ([]domain.Payment, error)
	ListPaymentsByGroupFn       func(ctx context.Context, groupID string) ([]domain.Payment, error)
	ListPaymentsFn              func(ctx context.Context, from, to *time.Time) ([]domain.Payment, error)
	SavePaymentFn               func(ctx context.Context, payment domain.Payment) error
	UpdatePaymentFn             func(ctx context.Context, payment domain.Payment) error
	DeletePaymentFn             func(ctx context.Context, paymentID string) error
}

func (f *fakePaymentRepo) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return f.FindPaymentByIDFn(ctx, paymentID)
}
func (f *fakePaymentRepo) ListPaymentsByParticipant(ctx context.Context, participantID string) ([]domain.Payment, error) {
	return f.ListPaymentsByParticipantFn(ctx, participantID)
}
func (f *fakePaymentRepo) ListPaymentsByGroup(ctx context.Context, groupID string) ([]domain.Payment, error) {
	return f.ListPaymentsByGroupFn(ctx, groupID)
}
func (f *fakePaymentRepo) ListPayments(ctx context.Context, from, to *time.Time) ([]domain.Payment, error) {
	return f.ListPaymentsFn(ctx, from, to)
}
func (f *fakePaymentRepo) SavePayment(ctx context.Context, payment domain.Payment) error {
	return f.SavePaymentFn(ctx, payment)
}
func (f *fakePaymentRepo) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	return f.UpdatePaymentFn(ctx, payment)
}
func (f *fakePaymentRepo) DeletePayment(ctx context.Context, paymentID string) error {
	return f.DeletePaymentFn(ctx, paymentID)
}

type fakeExpenseRepo struct {
	FindExpenseByIDFn    func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesByGroupFn func(ctx context.Context, groupID string) ([]domain.Expense, error)
	ListExpensesFn       func(ctx context.Context, from, to *time.Time) ([]domain.Expense, error)
	SaveExpenseFn        func(ctx context.Context, expense domain.Expense) error
	UpdateExpenseFn      func(ctx context.Context, expense domain.Expense) error
	DeleteExpenseFn      func(ctx context.Context, expenseID string) error
}

func (f *fakeExpenseRepo) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return f.FindExpenseByIDFn(ctx, expenseID)
}
func (f *fakeExpenseRepo) ListExpensesByGroup(ctx context.Context, groupID string) ([]domain.Expense, error) {
	return f.ListExpensesByGroupFn(ctx, groupID)
}
func (f *fakeExpenseRepo) ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
	return f.ListExpensesFn(ctx, from, to)
}
func (f *fakeExpenseRepo) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return f.SaveExpenseFn(ctx, expense)
}
func (f *fakeExpenseRepo) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return f.UpdateExpenseFn(ctx, expense)
}
func (f *fakeExpenseRepo) DeleteExpense(ctx context.Context, expenseID string) error {
	return f.DeleteExpenseFn(ctx, expenseID)
}

type fakeCompanyEntryRepo struct {
	FindCompanyEntryByIDFn func(ctx context.Context, entryID string) (*domain.CompanyEntry, error)
	ListCompanyEntriesFn   func(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error)
	SaveCompanyEntryFn     func(ctx context.Context, entry domain.CompanyEntry) error
	UpdateCompanyEntryFn   func(ctx context.Context, entry domain.CompanyEntry) error
	DeleteCompanyEntryFn   func(ctx context.Context, entryID string) error
}

func (f *fakeCompanyEntryRepo) FindCompanyEntryByID(ctx context.Context, entryID string) (*domain.CompanyEntry, error) {
	return f.FindCompanyEntryByIDFn(ctx, entryID)
}
func (f *fakeCompanyEntryRepo) ListCompanyEntries(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
	return f.ListCompanyEntriesFn(ctx, from, to)
}
func (f *fakeCompanyEntryRepo) SaveCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error {
	return f.SaveCompanyEntryFn(ctx, entry)
}
func (f *fakeCompanyEntryRepo) UpdateCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error {
	return f.UpdateCompanyEntryFn(ctx, entry)
}
func (f *fakeCompanyEntryRepo) DeleteCompanyEntry(ctx context.Context, entryID string) error {
	return f.DeleteCompanyEntryFn(ctx, entryID)
}

type fakeRateHistoryRepo struct {
	ListRateSnapshotsFn      func(ctx context.Context, limit int) ([]domain.RateSnapshot, error)
	FindLatestRateSnapshotFn func(ctx context.Context) (*domain.RateSnapshot, error)
	SaveRateSnapshotFn       func(ctx context.Context, snapshot domain.RateSnapshot) error
}

func (f *fakeRateHistoryRepo) ListRateSnapshots(ctx context.Context, limit int) ([]domain.RateSnapshot, error) {
	if f.ListRateSnapshotsFn != nil {
		return f.ListRateSnapshotsFn(ctx, limit)
	}
	return nil, nil
}
func (f *fakeRateHistoryRepo) FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	if f.FindLatestRateSnapshotFn != nil {
		return f.FindLatestRateSnapshotFn(ctx)
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeRateHistoryRepo) SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error {
	if f.SaveRateSnapshotFn != nil {
		return f.SaveRateSnapshotFn(ctx, snapshot)
	}
	return nil
}

// stubRatesSvc serves fixed rates to the services under test.
type stubRatesSvc struct {
	rates domain.ExchangeRates
}

func (s *stubRatesSvc) Current(ctx context.Context) domain.ExchangeRates { return s.rates }
func (s *stubRatesSvc) Refresh(ctx context.Context) (domain.ExchangeRates, error) {
	return s.rates, nil
}
func (s *stubRatesSvc) History(ctx context.Context, limit int) ([]domain.RateSnapshot, error) {
	return nil, nil
}
func (s *stubRatesSvc) StartRefreshLoop(ctx context.Context, interval time.Duration) {}
