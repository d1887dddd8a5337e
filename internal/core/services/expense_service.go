package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
	"github.com/weberkan/mevatur-backend/internal/utils/ledger"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	groupRepo   portsrepo.GroupRepositoryFacade
	ratesSvc    portssvc.RatesSvc
}

// NewExpenseService creates the expense management service.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	groupRepo portsrepo.GroupRepositoryFacade,
	ratesSvc portssvc.RatesSvc,
) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		ratesSvc:    ratesSvc,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	if req.GroupID != nil {
		if _, err := s.groupRepo.FindGroupByID(ctx, *req.GroupID); err != nil {
			return nil, err
		}
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	rates := s.ratesSvc.Current(ctx)
	amountTRY := ledger.ConvertToTRY(req.Amount, req.Currency, rates)

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		GroupID:     req.GroupID,
		Date:        req.Date,
		Amount:      req.Amount,
		Currency:    req.Currency,
		AmountTRY:   amountTRY,
		Category:    req.Category,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to create expense", slog.String("category", req.Category))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category),
		slog.String("amount", expense.Amount.String()))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	return s.expenseRepo.FindExpenseByID(ctx, expenseID)
}

func (s *expenseService) ListExpensesByGroup(ctx context.Context, groupID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("group_id", groupID))
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	retakeSnapshot := false
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationError("amount must be positive")
		}
		expense.Amount = *req.Amount
		retakeSnapshot = true
	}
	if req.Currency != nil {
		expense.Currency = *req.Currency
		retakeSnapshot = true
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}

	if retakeSnapshot {
		rates := s.ratesSvc.Current(ctx)
		expense.AmountTRY = ledger.ConvertToTRY(expense.Amount, expense.Currency, rates)
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.DeleteExpense(ctx, expenseID)
}
