package dto

import (
	"time"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// CreateRoomRequest defines the data needed to create a room.
type CreateRoomRequest struct {
	GroupID string `json:"groupID" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required,oneof=2 3 4 5"`
}

// UpdateRoomRequest defines the data allowed for updating a room.
type UpdateRoomRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type" binding:"omitempty,oneof=2 3 4 5"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID        string    `json:"roomID"`
	GroupID       string    `json:"groupID"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:        r.RoomID,
		GroupID:       r.GroupID,
		Name:          r.Name,
		Type:          r.Type,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// ToListRoomResponse converts a slice of domain.Room to RoomResponse DTOs
func ToListRoomResponse(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i := range rooms {
		res[i] = ToRoomResponse(&rooms[i])
	}
	return res
}
