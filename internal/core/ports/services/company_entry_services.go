package services

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// CompanyEntryReaderSvc defines read operations for manual company entries
type CompanyEntryReaderSvc interface {
	// GetCompanyEntryByID retrieves a specific entry by its ID.
	GetCompanyEntryByID(ctx context.Context, entryID string) (*domain.CompanyEntry, error)

	// ListCompanyEntries retrieves all manual entries in an optional date
	// range.
	ListCompanyEntries(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error)
}

// CompanyEntryWriterSvc defines write operations for manual company entries
type CompanyEntryWriterSvc interface {
	// CreateCompanyEntry records a manual income or expense entry.
	CreateCompanyEntry(ctx context.Context, req dto.CreateCompanyEntryRequest, creatorUserID string) (*domain.CompanyEntry, error)

	// UpdateCompanyEntry updates a manual entry. Derived ledger rows are
	// not entries and cannot be edited.
	UpdateCompanyEntry(ctx context.Context, entryID string, req dto.UpdateCompanyEntryRequest, updaterUserID string) (*domain.CompanyEntry, error)

	// DeleteCompanyEntry removes a manual entry.
	DeleteCompanyEntry(ctx context.Context, entryID string) error
}

// CompanyEntrySvcFacade combines all company-entry service interfaces
type CompanyEntrySvcFacade interface {
	CompanyEntryReaderSvc
	CompanyEntryWriterSvc
}
