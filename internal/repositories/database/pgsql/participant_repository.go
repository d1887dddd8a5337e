package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	"github.com/weberkan/mevatur-backend/internal/models"
	"github.com/weberkan/mevatur-backend/internal/utils/mapping"
)

type PgxParticipantRepository struct {
	BaseRepository
}

// newPgxParticipantRepository creates a new repository for participant data.
func newPgxParticipantRepository(pool *pgxpool.Pool) portsrepo.ParticipantRepositoryFacade {
	return &PgxParticipantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ParticipantRepositoryFacade = (*PgxParticipantRepository)(nil)

const participantColumns = `participant_id, full_name, phone, email, id_number, passport_no, passport_valid_until, birth_date, gender, group_id, room_type, day_count, discount, room_id, reference, created_at, created_by, last_updated_at, last_updated_by`

func scanParticipant(row pgx.Row) (models.Participant, error) {
	var p models.Participant
	err := row.Scan(
		&p.ParticipantID,
		&p.FullName,
		&p.Phone,
		&p.Email,
		&p.IDNumber,
		&p.PassportNo,
		&p.PassportValidUntil,
		&p.BirthDate,
		&p.Gender,
		&p.GroupID,
		&p.RoomType,
		&p.DayCount,
		&p.Discount,
		&p.RoomID,
		&p.Reference,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SaveParticipant inserts a new participant.
func (r *PgxParticipantRepository) SaveParticipant(ctx context.Context, participant domain.Participant) error {
	m := mapping.ToModelParticipant(participant)

	query := `
		INSERT INTO participants (` + participantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ParticipantID, m.FullName, m.Phone, m.Email, m.IDNumber, m.PassportNo,
		m.PassportValidUntil, m.BirthDate, m.Gender, m.GroupID, m.RoomType,
		m.DayCount, m.Discount, m.RoomID, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save participant %s: %w", m.ParticipantID, err)
	}
	return nil
}

// FindParticipantByID retrieves a participant by their ID.
func (r *PgxParticipantRepository) FindParticipantByID(ctx context.Context, participantID string) (*domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE participant_id = $1;`

	m, err := scanParticipant(r.Pool.QueryRow(ctx, query, participantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant by id %s: %w", participantID, err)
	}

	p := mapping.ToDomainParticipant(m)
	return &p, nil
}

// ListParticipantsByGroup retrieves all participants of a group ordered by name.
func (r *PgxParticipantRepository) ListParticipantsByGroup(ctx context.Context, groupID string) ([]domain.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE group_id = $1 ORDER BY full_name;`

	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants for group %s: %w", groupID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Participant, error) {
		return scanParticipant(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan participants: %w", err)
	}
	return mapping.ToDomainParticipantSlice(ms), nil
}

// CountParticipantsByGroup returns how many participants a group has.
func (r *PgxParticipantRepository) CountParticipantsByGroup(ctx context.Context, groupID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE group_id = $1;`, groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count participants for group %s: %w", groupID, err)
	}
	return count, nil
}

// UpdateParticipant updates an existing participant.
func (r *PgxParticipantRepository) UpdateParticipant(ctx context.Context, participant domain.Participant) error {
	m := mapping.ToModelParticipant(participant)

	query := `
		UPDATE participants SET
			full_name = $2, phone = $3, email = $4, id_number = $5, passport_no = $6,
			passport_valid_until = $7, birth_date = $8, gender = $9, room_type = $10,
			day_count = $11, discount = $12, room_id = $13, reference = $14,
			last_updated_at = $15, last_updated_by = $16
		WHERE participant_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ParticipantID, m.FullName, m.Phone, m.Email, m.IDNumber, m.PassportNo,
		m.PassportValidUntil, m.BirthDate, m.Gender, m.RoomType, m.DayCount,
		m.Discount, m.RoomID, m.Reference, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant %s: %w", m.ParticipantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParticipant removes a participant. Their payments are removed by the
// database via ON DELETE CASCADE.
func (r *PgxParticipantRepository) DeleteParticipant(ctx context.Context, participantID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM participants WHERE participant_id = $1;`, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete participant %s: %w", participantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
