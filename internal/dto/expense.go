package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
// GroupID is omitted for company-general expenses.
type CreateExpenseRequest struct {
	GroupID     *string         `json:"groupID"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,oneof=TRY USD SAR"`
	Category    string          `json:"category" binding:"required,oneof=Uçak Otel Transfer Rehberlik Vize Diğer"`
	Description string          `json:"description"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" binding:"omitempty,oneof=TRY USD SAR"`
	Category    *string          `json:"category" binding:"omitempty,oneof=Uçak Otel Transfer Rehberlik Vize Diğer"`
	Description *string          `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	GroupID       *string         `json:"groupID,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AmountTRY     decimal.Decimal `json:"amountTRY"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		GroupID:       e.GroupID,
		Date:          e.Date,
		Amount:        e.Amount,
		Currency:      e.Currency,
		AmountTRY:     e.AmountTRY,
		Category:      e.Category,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
