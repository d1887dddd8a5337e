package mapping

import (
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/models"
)

func toModelFeeSet(d domain.FeeSet) models.FeeSet {
	return models.FeeSet{Room2: d.Room2, Room3: d.Room3, Room4: d.Room4}
}

func toDomainFeeSet(m models.FeeSet) domain.FeeSet {
	return domain.FeeSet{Room2: m.Room2, Room3: m.Room3, Room4: m.Room4}
}

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:   d.GroupID,
		Name:      d.Name,
		Type:      string(d.Type),
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
		Capacity:  d.Capacity,
		Currency:  d.Currency,
		FeesByDuration: models.FeesByDuration{
			D7:  toModelFeeSet(d.FeesByDuration.D7),
			D10: toModelFeeSet(d.FeesByDuration.D10),
			D14: toModelFeeSet(d.FeesByDuration.D14),
			D20: toModelFeeSet(d.FeesByDuration.D20),
		},
		Notes:       d.Notes,
		Status:      string(d.Status),
		ArchivedAt:  d.ArchivedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:   m.GroupID,
		Name:      m.Name,
		Type:      domain.GroupType(m.Type),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Capacity:  m.Capacity,
		Currency:  m.Currency,
		FeesByDuration: domain.FeesByDuration{
			D7:  toDomainFeeSet(m.FeesByDuration.D7),
			D10: toDomainFeeSet(m.FeesByDuration.D10),
			D14: toDomainFeeSet(m.FeesByDuration.D14),
			D20: toDomainFeeSet(m.FeesByDuration.D20),
		},
		Notes:       m.Notes,
		Status:      domain.GroupStatus(m.Status),
		ArchivedAt:  m.ArchivedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupSlice converts a slice of model Groups to a slice of domain Groups
func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}
