package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

type groupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
}

// NewGroupService creates the group management service.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade) portssvc.GroupSvcFacade {
	return &groupService{groupRepo: groupRepo}
}

var _ portssvc.GroupSvcFacade = (*groupService)(nil)

func (s *groupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, creatorUserID string) (*domain.Group, error) {
	if !domain.GroupType(req.Type).IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown group type %q", req.Type))
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	now := time.Now()
	group := domain.Group{
		GroupID:        uuid.NewString(),
		Name:           req.Name,
		Type:           domain.GroupType(req.Type),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Capacity:       req.Capacity,
		Currency:       req.Currency,
		FeesByDuration: req.FeesByDuration,
		Notes:          req.Notes,
		Status:         domain.GroupStatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		s.LogError(ctx, err, "Failed to create group", slog.String("group_name", req.Name))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.LogInfo(ctx, "Group created", slog.String("group_id", group.GroupID), slog.String("type", req.Type))
	return &group, nil
}

func (s *groupService) GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups")
		return nil, err
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID string, req dto.UpdateGroupRequest, updaterUserID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Type != nil {
		if !domain.GroupType(*req.Type).IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown group type %q", *req.Type))
		}
		group.Type = domain.GroupType(*req.Type)
	}
	if req.StartDate != nil {
		group.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		group.EndDate = req.EndDate
	}
	if req.Capacity != nil {
		group.Capacity = *req.Capacity
	}
	if req.Currency != nil {
		if !domain.IsSupportedCurrency(*req.Currency) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported currency %q", *req.Currency))
		}
		group.Currency = *req.Currency
	}
	if req.FeesByDuration != nil {
		group.FeesByDuration = *req.FeesByDuration
	}
	if req.Notes != nil {
		group.Notes = *req.Notes
	}
	if group.EndDate != nil && group.EndDate.Before(group.StartDate) {
		return nil, apperrors.NewValidationError("endDate must not be before startDate")
	}

	group.LastUpdatedAt = time.Now()
	group.LastUpdatedBy = updaterUserID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, err
	}
	return group, nil
}

func (s *groupService) ArchiveGroup(ctx context.Context, groupID string, updaterUserID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Status == domain.GroupStatusArchived {
		return group, nil
	}

	now := time.Now()
	group.Status = domain.GroupStatusArchived
	group.ArchivedAt = &now
	group.LastUpdatedAt = now
	group.LastUpdatedBy = updaterUserID

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to archive group", slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Group archived", slog.String("group_id", groupID))
	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete group", slog.String("group_id", groupID))
		}
		return err
	}
	s.LogInfo(ctx, "Group deleted with its participants, rooms and payments", slog.String("group_id", groupID))
	return nil
}
