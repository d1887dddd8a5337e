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

type companyEntryService struct {
	BaseService
	entryRepo portsrepo.CompanyEntryRepositoryFacade
	ratesSvc  portssvc.RatesSvc
}

// NewCompanyEntryService creates the manual company-ledger entry service.
func NewCompanyEntryService(entryRepo portsrepo.CompanyEntryRepositoryFacade, ratesSvc portssvc.RatesSvc) portssvc.CompanyEntrySvcFacade {
	return &companyEntryService{entryRepo: entryRepo, ratesSvc: ratesSvc}
}

var _ portssvc.CompanyEntrySvcFacade = (*companyEntryService)(nil)

func (s *companyEntryService) CreateCompanyEntry(ctx context.Context, req dto.CreateCompanyEntryRequest, creatorUserID string) (*domain.CompanyEntry, error) {
	if !domain.EntryType(req.Type).IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown entry type %q", req.Type))
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	rates := s.ratesSvc.Current(ctx)
	amountTRY := ledger.ConvertToTRY(req.Amount, req.Currency, rates)

	now := time.Now()
	entry := domain.CompanyEntry{
		EntryID:     uuid.NewString(),
		Date:        req.Date,
		Type:        domain.EntryType(req.Type),
		Currency:    req.Currency,
		Amount:      req.Amount,
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

	if err := s.entryRepo.SaveCompanyEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to create company entry", slog.String("type", req.Type))
		return nil, fmt.Errorf("failed to create company entry: %w", err)
	}

	s.LogInfo(ctx, "Company entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("type", string(entry.Type)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

func (s *companyEntryService) GetCompanyEntryByID(ctx context.Context, entryID string) (*domain.CompanyEntry, error) {
	return s.entryRepo.FindCompanyEntryByID(ctx, entryID)
}

func (s *companyEntryService) ListCompanyEntries(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
	entries, err := s.entryRepo.ListCompanyEntries(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company entries")
		return nil, err
	}
	if entries == nil {
		return []domain.CompanyEntry{}, nil
	}
	return entries, nil
}

func (s *companyEntryService) UpdateCompanyEntry(ctx context.Context, entryID string, req dto.UpdateCompanyEntryRequest, updaterUserID string) (*domain.CompanyEntry, error) {
	entry, err := s.entryRepo.FindCompanyEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	retakeSnapshot := false
	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Type != nil {
		if !domain.EntryType(*req.Type).IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown entry type %q", *req.Type))
		}
		entry.Type = domain.EntryType(*req.Type)
	}
	if req.Currency != nil {
		entry.Currency = *req.Currency
		retakeSnapshot = true
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperrors.NewValidationError("amount must be positive")
		}
		entry.Amount = *req.Amount
		retakeSnapshot = true
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if retakeSnapshot {
		rates := s.ratesSvc.Current(ctx)
		entry.AmountTRY = ledger.ConvertToTRY(entry.Amount, entry.Currency, rates)
	}

	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = updaterUserID

	if err := s.entryRepo.UpdateCompanyEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update company entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *companyEntryService) DeleteCompanyEntry(ctx context.Context, entryID string) error {
	return s.entryRepo.DeleteCompanyEntry(ctx, entryID)
}
