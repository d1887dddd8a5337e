package repositories

import (
	"context"

	"github.com/weberkan/mevatur-backend/internal/core/domain"
)

// ParticipantReader defines read operations for participant data
type ParticipantReader interface {
	// FindParticipantByID retrieves a specific participant by their ID.
	FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error)

	// ListParticipantsByGroup retrieves all participants of a group.
	ListParticipantsByGroup(ctx context.Context, groupID string) ([]domain.Participant, error)

	// CountParticipantsByGroup returns the number of participants enrolled
	// in a group.
	CountParticipantsByGroup(ctx context.Context, groupID string) (int, error)
}

// ParticipantWriter defines write operations for participant data
type ParticipantWriter interface {
	// SaveParticipant persists a new participant.
	SaveParticipant(ctx context.Context, participant domain.Participant) error

	// UpdateParticipant updates an existing participant.
	UpdateParticipant(ctx context.Context, participant domain.Participant) error

	// DeleteParticipant removes a participant. Their payments go with them
	// via foreign-key cascade.
	DeleteParticipant(ctx context.Context, participantID string) error
}

// ParticipantRepositoryFacade combines all participant-related repository interfaces
type ParticipantRepositoryFacade interface {
	ParticipantReader
	ParticipantWriter
}
