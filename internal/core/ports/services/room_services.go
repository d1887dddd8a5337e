package services

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// RoomReaderSvc defines read operations for room data
type RoomReaderSvc interface {
	// GetRoomByID retrieves a specific room by its ID.
	GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRoomsByGroup retrieves all rooms of a group.
	ListRoomsByGroup(ctx context.Context, groupID string) ([]domain.Room, error)
}

// RoomWriterSvc defines write operations for room data
type RoomWriterSvc interface {
	// CreateRoom creates a new room inside a group.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, updaterUserID string) (*domain.Room, error)

	// DeleteRoom removes a room, unassigning its participants.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomReaderSvc
	RoomWriterSvc
}
