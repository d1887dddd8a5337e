package mapping

import (
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/models"
)

// ToModelParticipant converts a domain Participant to a model Participant
func ToModelParticipant(d domain.Participant) models.Participant {
	return models.Participant{
		ParticipantID:      d.ParticipantID,
		FullName:           d.FullName,
		Phone:              d.Phone,
		Email:              d.Email,
		IDNumber:           d.IDNumber,
		PassportNo:         d.PassportNo,
		PassportValidUntil: d.PassportValidUntil,
		BirthDate:          d.BirthDate,
		Gender:             d.Gender,
		GroupID:            d.GroupID,
		RoomType:           d.RoomType,
		DayCount:           d.DayCount,
		Discount:           d.Discount,
		RoomID:             d.RoomID,
		Reference:          d.Reference,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParticipant converts a model Participant to a domain Participant
func ToDomainParticipant(m models.Participant) domain.Participant {
	return domain.Participant{
		ParticipantID:      m.ParticipantID,
		FullName:           m.FullName,
		Phone:              m.Phone,
		Email:              m.Email,
		IDNumber:           m.IDNumber,
		PassportNo:         m.PassportNo,
		PassportValidUntil: m.PassportValidUntil,
		BirthDate:          m.BirthDate,
		Gender:             m.Gender,
		GroupID:            m.GroupID,
		RoomType:           m.RoomType,
		DayCount:           m.DayCount,
		Discount:           m.Discount,
		RoomID:             m.RoomID,
		Reference:          m.Reference,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainParticipantSlice converts a slice of model Participants to domain Participants
func ToDomainParticipantSlice(ms []models.Participant) []domain.Participant {
	ds := make([]domain.Participant, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParticipant(m)
	}
	return ds
}
