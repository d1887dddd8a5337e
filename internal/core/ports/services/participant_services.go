package services

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
	"github.com/weberkan/mevatur-backend/internal/dto"
)

// ParticipantReaderSvc defines read operations for participant data
type ParticipantReaderSvc interface {
	// GetParticipantByID retrieves a specific participant by their ID.
	GetParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error)

	// ListParticipantsByGroup retrieves all participants of a group.
	ListParticipantsByGroup(ctx context.Context, groupID string) ([]domain.Participant, error)
}

// ParticipantWriterSvc defines write operations for participant data
type ParticipantWriterSvc interface {
	// CreateParticipant enrolls a participant into a group. Enrollment
	// past the group's capacity is rejected.
	CreateParticipant(ctx context.Context, req dto.CreateParticipantRequest, creatorUserID string) (*domain.Participant, error)

	// UpdateParticipant updates an existing participant, including room
	// assignment and discount.
	UpdateParticipant(ctx context.Context, participantID string, req dto.UpdateParticipantRequest, updaterUserID string) (*domain.Participant, error)

	// DeleteParticipant removes a participant and their payments.
	DeleteParticipant(ctx context.Context, participantID string) error
}

// ParticipantSvcFacade combines all participant-related service interfaces
type ParticipantSvcFacade interface {
	ParticipantReaderSvc
	ParticipantWriterSvc
}
