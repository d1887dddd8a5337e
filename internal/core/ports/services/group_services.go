package services

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// GroupReaderSvc defines read operations for group data
type GroupReaderSvc interface {
	// GetGroupByID retrieves a specific group by its ID.
	GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// ListGroups retrieves all groups, optionally including archived ones.
	ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error)
}

// GroupWriterSvc defines write operations for group data
type GroupWriterSvc interface {
	// CreateGroup creates a new group with its fee schedule.
	CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error)

	// UpdateGroup updates an existing group.
	UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, updaterUserID string) (*domain.Group, error)

	// ArchiveGroup marks a completed group as archived. Archived groups
	// stay readable but are excluded from default listings.
	ArchiveGroup(ctx context.Context, groupID string, updaterUserID string) (*domain.Group, error)

	// DeleteGroup removes a group and everything that hangs off it.
	DeleteGroup(ctx context.Context, groupID string) error
}

// GroupSvcFacade combines all group-related service interfaces
type GroupSvcFacade interface {
	GroupReaderSvc
	GroupWriterSvc
}
