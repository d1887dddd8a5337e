package repositories

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by its ID.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRoomsByGroup retrieves all rooms of a group.
	ListRoomsByGroup(ctx context.Context, groupID string) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// DeleteRoom removes a room. Assigned participants keep their room
	// type; their room reference is cleared via foreign-key SET NULL.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
