package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	"github.com/weberkan/mevatur-backend/internal/models"
	"github.com/weberkan/mevatur-backend/internal/utils/mapping"
)

type PgxGroupRepository struct {
	BaseRepository
}

// newPgxGroupRepository creates a new repository for group data.
func newPgxGroupRepository(pool *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

const groupColumns = `group_id, name, type, start_date, end_date, capacity, currency, fees_by_duration, notes, status, archived_at, created_at, created_by, last_updated_at, last_updated_by`

func scanGroup(row pgx.Row) (models.Group, error) {
	var g models.Group
	err := row.Scan(
		&g.GroupID,
		&g.Name,
		&g.Type,
		&g.StartDate,
		&g.EndDate,
		&g.Capacity,
		&g.Currency,
		&g.FeesByDuration,
		&g.Notes,
		&g.Status,
		&g.ArchivedAt,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	return g, err
}

// SaveGroup inserts a new group. The fee schedule is stored as jsonb.
func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)

	query := `
		INSERT INTO groups (` + groupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.GroupID, m.Name, m.Type, m.StartDate, m.EndDate, m.Capacity, m.Currency,
		m.FeesByDuration, m.Notes, m.Status, m.ArchivedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save group %s: %w", m.GroupID, err)
	}
	return nil
}

// FindGroupByID retrieves a group by its ID.
func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE group_id = $1;`

	m, err := scanGroup(r.Pool.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find group by id %s: %w", groupID, err)
	}

	g := mapping.ToDomainGroup(m)
	return &g, nil
}

// ListGroups retrieves all groups, newest start date first. Archived groups
// are excluded unless requested.
func (r *PgxGroupRepository) ListGroups(ctx context.Context, includeArchived bool) ([]domain.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups`
	if !includeArchived {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Group, error) {
		return scanGroup(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan groups: %w", err)
	}
	return mapping.ToDomainGroupSlice(ms), nil
}

// UpdateGroup updates an existing group.
func (r *PgxGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	m := mapping.ToModelGroup(group)

	query := `
		UPDATE groups SET
			name = $2, type = $3, start_date = $4, end_date = $5, capacity = $6,
			currency = $7, fees_by_duration = $8, notes = $9, status = $10,
			archived_at = $11, last_updated_at = $12, last_updated_by = $13
		WHERE group_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.GroupID, m.Name, m.Type, m.StartDate, m.EndDate, m.Capacity, m.Currency,
		m.FeesByDuration, m.Notes, m.Status, m.ArchivedAt, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update group %s: %w", m.GroupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteGroup removes a group. Participants, rooms, payments and group
// expenses are removed by the database via ON DELETE CASCADE.
func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM groups WHERE group_id = $1;`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group %s: %w", groupID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
