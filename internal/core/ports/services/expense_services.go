package services

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its ID.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpensesByGroup retrieves all expenses charged to a group.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]domain.Expense, error)

	// ListExpenses retrieves all expenses in an optional date range.
	ListExpenses(ctx context.Context, from, to *time.Time) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense records an expense, snapshotting its TRY value with
	// the rates in effect right now.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// UpdateExpense updates an expense. When amount or currency change
	// the TRY snapshot is retaken with current rates.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
