package repositories

import (
	"context"
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CompanyEntryReader defines read operations for manual company entries
type CompanyEntryReader interface {
	// FindCompanyEntryByID retrieves a specific entry by its ID.
	FindCompanyEntryByID(ctx context.Context, entryID string) (*domain.CompanyEntry, error)

	// ListCompanyEntries retrieves all manual entries, optionally limited
	// to a date range. Nil bounds are open-ended.
	ListCompanyEntries(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error)
}

// CompanyEntryWriter defines write operations for manual company entries
type CompanyEntryWriter interface {
	// SaveCompanyEntry persists a new entry.
	SaveCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error

	// UpdateCompanyEntry updates an existing entry.
	UpdateCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error

	// DeleteCompanyEntry removes an entry.
	DeleteCompanyEntry(ctx context.Context, entryID string) error
}

// CompanyEntryRepositoryFacade combines all company-entry repository interfaces
type CompanyEntryRepositoryFacade interface {
	CompanyEntryReader
	CompanyEntryWriter
}
