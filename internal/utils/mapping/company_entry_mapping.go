package mapping

import (
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/models"
)

// ToModelCompanyEntry converts a domain CompanyEntry to a model CompanyEntry
func ToModelCompanyEntry(d domain.CompanyEntry) models.CompanyEntry {
	return models.CompanyEntry{
		EntryID:     d.EntryID,
		Date:        d.Date,
		Type:        string(d.Type),
		Currency:    d.Currency,
		Amount:      d.Amount,
		AmountTRY:   d.AmountTRY,
		Category:    d.Category,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompanyEntry converts a model CompanyEntry to a domain CompanyEntry
func ToDomainCompanyEntry(m models.CompanyEntry) domain.CompanyEntry {
	return domain.CompanyEntry{
		EntryID:     m.EntryID,
		Date:        m.Date,
		Type:        domain.EntryType(m.Type),
		Currency:    m.Currency,
		Amount:      m.Amount,
		AmountTRY:   m.AmountTRY,
		Category:    m.Category,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanyEntrySlice converts a slice of model CompanyEntries to domain CompanyEntries
func ToDomainCompanyEntrySlice(ms []models.CompanyEntry) []domain.CompanyEntry {
	ds := make([]domain.CompanyEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompanyEntry(m)
	}
	return ds
}
