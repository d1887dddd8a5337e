package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	portssvc "github.com/weberkan/mevatur-backend/internal/core/ports/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

type roomService struct {
	BaseService
	roomRepo  portsrepo.RoomRepositoryFacade
	groupRepo portsrepo.GroupRepositoryFacade
}

// NewRoomService creates the room management service.
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade, groupRepo portsrepo.GroupRepositoryFacade) portssvc.RoomSvcFacade {
	return &roomService{roomRepo: roomRepo, groupRepo: groupRepo}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	if _, err := s.groupRepo.FindGroupByID(ctx, req.GroupID); err != nil {
		return nil, err
	}

	now := time.Now()
	room := domain.Room{
		RoomID:  uuid.NewString(),
		GroupID: req.GroupID,
		Name:    req.Name,
		Type:    req.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to create room", slog.String("group_id", req.GroupID))
		return nil, err
	}
	return &room, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.roomRepo.FindRoomByID(ctx, roomID)
}

func (s *roomService) ListRoomsByGroup(ctx context.Context, groupID string) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRoomsByGroup(ctx, groupID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms", slog.String("group_id", groupID))
		return nil, err
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, updaterUserID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	room.LastUpdatedAt = time.Now()
	room.LastUpdatedBy = updaterUserID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, err
	}
	return room, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Room deleted, occupants unassigned", slog.String("room_id", roomID))
	return nil
}
