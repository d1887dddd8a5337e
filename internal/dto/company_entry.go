package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreateCompanyEntryRequest defines the data needed to record a manual
// company-ledger entry.
type CreateCompanyEntryRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=Gelir Gider"`
	Currency    string          `json:"currency" binding:"required,oneof=TRY USD SAR"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// UpdateCompanyEntryRequest defines the data allowed for updating a manual entry.
type UpdateCompanyEntryRequest struct {
	Date        *time.Time       `json:"date"`
	Type        *string          `json:"type" binding:"omitempty,oneof=Gelir Gider"`
	Currency    *string          `json:"currency" binding:"omitempty,oneof=TRY USD SAR"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// CompanyEntryResponse defines the data returned for a manual entry.
type CompanyEntryResponse struct {
	EntryID       string          `json:"entryID"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	Currency      string          `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	AmountTRY     decimal.Decimal `json:"amountTRY"`
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToCompanyEntryResponse converts a domain.CompanyEntry to CompanyEntryResponse DTO
func ToCompanyEntryResponse(e *domain.CompanyEntry) CompanyEntryResponse {
	return CompanyEntryResponse{
		EntryID:       e.EntryID,
		Date:          e.Date,
		Type:          string(e.Type),
		Currency:      e.Currency,
		Amount:        e.Amount,
		AmountTRY:     e.AmountTRY,
		Category:      e.Category,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ToListCompanyEntryResponse converts a slice of domain.CompanyEntry to DTOs
func ToListCompanyEntryResponse(entries []domain.CompanyEntry) []CompanyEntryResponse {
	res := make([]CompanyEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToCompanyEntryResponse(&entries[i])
	}
	return res
}
