package repositories

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// GroupReader defines read operations for group data
type GroupReader interface {
	// FindGroupByID retrieves a specific group by its ID.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups, optionally including archived ones.
	ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error)
}

// GroupWriter defines write operations for group data
type GroupWriter interface {
	// SaveGroup persists a new group.
	SaveGroup(ctx context.Context, group domain.Group) error

	// UpdateGroup updates an existing group.
	UpdateGroup(ctx context.Context, group domain.Group) error

	// DeleteGroup removes a group. Participants, rooms, payments and
	// group expenses go with it via foreign-key cascade.
	DeleteGroup(ctx context.Context, groupID string) error
}

// GroupRepositoryFacade combines all group-related repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
