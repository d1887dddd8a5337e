package mapping

import (
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/models"
)

// ToModelRoom converts a domain Room to a model Room
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		GroupID:     d.GroupID,
		Name:        d.Name,
		Type:        d.Type,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		GroupID:     m.GroupID,
		Name:        m.Name,
		Type:        m.Type,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to a slice of domain Rooms
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}
