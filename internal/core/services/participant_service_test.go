package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/core/services"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

func testGroup() *domain.Group {
	end := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	return &domain.Group{
		GroupID:   "group-1",
		Name:      "Ramazan Umresi",
		Type:      domain.GroupTypeUmre,
		StartDate: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Capacity:  2,
		Currency:  "USD",
		FeesByDuration: domain.FeesByDuration{
			D10: domain.FeeSet{
				Room2: decimal.NewFromInt(1000),
				Room3: decimal.NewFromInt(800),
				Room4: decimal.NewFromInt(700),
			},
		},
		Status: domain.GroupStatusActive,
	}
}

func TestCreateParticipant_RejectsFullGroup(t *testing.T) {
	groupRepo := &fakeGroupRepo{
		FindGroupByIDFn: func(ctx context.Context, groupID string) (*domain.Group, error) {
			return testGroup(), nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		CountParticipantsFn: func(ctx context.Context, groupID string) (int, error) {
			return 2, nil
		},
		SaveParticipantFn: func(ctx context.Context, participant domain.Participant) error {
			t.Fatal("SaveParticipant must not be called for a full group")
			return nil
		},
	}

	svc := services.NewParticipantService(participantRepo, groupRepo, &fakeRoomRepo{})
	_, err := svc.CreateParticipant(context.Background(), dto.CreateParticipantRequest{
		FullName: "Ayşe Demir",
		GroupID:  "group-1",
		RoomType: "2",
		DayCount: 10,
	}, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "full")
}

func TestCreateParticipant_Success(t *testing.T) {
	var saved domain.Participant
	groupRepo := &fakeGroupRepo{
		FindGroupByIDFn: func(ctx context.Context, groupID string) (*domain.Group, error) {
			g := testGroup()
			g.Capacity = 10
			return g, nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		CountParticipantsFn: func(ctx context.Context, groupID string) (int, error) {
			return 3, nil
		},
		SaveParticipantFn: func(ctx context.Context, participant domain.Participant) error {
			saved = participant
			return nil
		},
	}

	svc := services.NewParticipantService(participantRepo, groupRepo, &fakeRoomRepo{})
	created, err := svc.CreateParticipant(context.Background(), dto.CreateParticipantRequest{
		FullName: "Mehmet Yılmaz",
		GroupID:  "group-1",
		RoomType: "3",
		DayCount: 10,
		Discount: decimal.NewFromInt(50),
	}, "user-1")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, saved.ParticipantID)
	assert.Equal(t, "Mehmet Yılmaz", saved.FullName)
	assert.Equal(t, "group-1", saved.GroupID)
	assert.Equal(t, "3", saved.RoomType)
	assert.Equal(t, 10, saved.DayCount)
	assert.Nil(t, saved.RoomID)
	assert.Equal(t, "user-1", saved.CreatedBy)
	assert.Equal(t, "user-1", saved.LastUpdatedBy)
}

func TestCreateParticipant_RejectsRoomFromAnotherGroup(t *testing.T) {
	groupRepo := &fakeGroupRepo{
		FindGroupByIDFn: func(ctx context.Context, groupID string) (*domain.Group, error) {
			g := testGroup()
			g.Capacity = 10
			return g, nil
		},
	}
	participantRepo := &fakeParticipantRepo{
		CountParticipantsFn: func(ctx context.Context, groupID string) (int, error) {
			return 0, nil
		},
	}
	roomRepo := &fakeRoomRepo{
		FindRoomByIDFn: func(ctx context.Context, roomID string) (*domain.Room, error) {
			return &domain.Room{RoomID: roomID, GroupID: "group-2", Type: "2"}, nil
		},
	}

	roomID := "room-9"
	svc := services.NewParticipantService(participantRepo, groupRepo, roomRepo)
	_, err := svc.CreateParticipant(context.Background(), dto.CreateParticipantRequest{
		FullName: "Ali Kaya",
		GroupID:  "group-1",
		RoomType: "2",
		DayCount: 10,
		RoomID:   &roomID,
	}, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateParticipant_UnassignsRoomWithEmptyID(t *testing.T) {
	roomID := "room-1"
	var updated domain.Participant
	participantRepo := &fakeParticipantRepo{
		FindParticipantByIDFn: func(ctx context.Context, participantID string) (*domain.Participant, error) {
			return &domain.Participant{
				ParticipantID: participantID,
				FullName:      "Fatma Şahin",
				GroupID:       "group-1",
				RoomType:      "2",
				DayCount:      10,
				RoomID:        &roomID,
			}, nil
		},
		UpdateParticipantFn: func(ctx context.Context, participant domain.Participant) error {
			updated = participant
			return nil
		},
	}

	empty := ""
	svc := services.NewParticipantService(participantRepo, &fakeGroupRepo{}, &fakeRoomRepo{})
	result, err := svc.UpdateParticipant(context.Background(), "p-1", dto.UpdateParticipantRequest{
		RoomID: &empty,
	}, "user-2")

	require.NoError(t, err)
	assert.Nil(t, result.RoomID)
	assert.Nil(t, updated.RoomID)
	assert.Equal(t, "user-2", updated.LastUpdatedBy)
}

func TestUpdateParticipant_RejectsUnsupportedDayCount(t *testing.T) {
	participantRepo := &fakeParticipantRepo{
		FindParticipantByIDFn: func(ctx context.Context, participantID string) (*domain.Participant, error) {
			return &domain.Participant{ParticipantID: participantID, GroupID: "group-1", RoomType: "2", DayCount: 10}, nil
		},
	}

	days := 12
	svc := services.NewParticipantService(participantRepo, &fakeGroupRepo{}, &fakeRoomRepo{})
	_, err := svc.UpdateParticipant(context.Background(), "p-1", dto.UpdateParticipantRequest{
		DayCount: &days,
	}, "user-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
