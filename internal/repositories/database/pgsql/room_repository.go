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

type PgxRoomRepository struct {
	BaseRepository
}

// newPgxRoomRepository creates a new repository for room data.
func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

const roomColumns = `room_id, group_id, name, type, created_at, created_by, last_updated_at, last_updated_by`

func scanRoom(row pgx.Row) (models.Room, error) {
	var m models.Room
	err := row.Scan(
		&m.RoomID,
		&m.GroupID,
		&m.Name,
		&m.Type,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRoom inserts a new room.
func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)

	query := `
		INSERT INTO rooms (` + roomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RoomID, m.GroupID, m.Name, m.Type,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save room %s: %w", m.RoomID, err)
	}
	return nil
}

// FindRoomByID retrieves a room by its ID.
func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_id = $1;`

	m, err := scanRoom(r.Pool.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room by id %s: %w", roomID, err)
	}

	room := mapping.ToDomainRoom(m)
	return &room, nil
}

// ListRoomsByGroup retrieves all rooms of a group ordered by name.
func (r *PgxRoomRepository) ListRoomsByGroup(ctx context.Context, groupID string) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE group_id = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms for group %s: %w", groupID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Room, error) {
		return scanRoom(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rooms: %w", err)
	}
	return mapping.ToDomainRoomSlice(ms), nil
}

// UpdateRoom updates an existing room.
func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)

	query := `
		UPDATE rooms SET name = $2, type = $3, last_updated_at = $4, last_updated_by = $5
		WHERE room_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.RoomID, m.Name, m.Type, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", m.RoomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRoom removes a room. The database clears the room reference of
// assigned participants via ON DELETE SET NULL.
func (r *PgxRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1;`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", roomID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
