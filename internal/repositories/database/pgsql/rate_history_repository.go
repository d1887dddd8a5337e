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

type PgxRateHistoryRepository struct {
	BaseRepository
}

// newPgxRateHistoryRepository creates a new repository for rate snapshots.
func newPgxRateHistoryRepository(pool *pgxpool.Pool) portsrepo.RateHistoryRepositoryFacade {
	return &PgxRateHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RateHistoryRepositoryFacade = (*PgxRateHistoryRepository)(nil)

const rateSnapshotColumns = `snapshot_id, usd_try, sar_try, usd_sar, source, fetched_at`

func scanRateSnapshot(row pgx.Row) (models.RateSnapshot, error) {
	var m models.RateSnapshot
	err := row.Scan(
		&m.SnapshotID,
		&m.USDTRY,
		&m.SARTRY,
		&m.USDSAR,
		&m.Source,
		&m.FetchedAt,
	)
	return m, err
}

// SaveRateSnapshot persists one rate refresh.
func (r *PgxRateHistoryRepository) SaveRateSnapshot(ctx context.Context, snapshot domain.RateSnapshot) error {
	m := mapping.ToModelRateSnapshot(snapshot)

	query := `
		INSERT INTO rate_history (` + rateSnapshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.SnapshotID, m.USDTRY, m.SARTRY, m.USDSAR, m.Source, m.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to save rate snapshot %s: %w", m.SnapshotID, err)
	}
	return nil
}

// ListRateSnapshots retrieves the most recent snapshots, newest first.
func (r *PgxRateHistoryRepository) ListRateSnapshots(ctx context.Context, limit int) ([]domain.RateSnapshot, error) {
	query := `SELECT ` + rateSnapshotColumns + ` FROM rate_history ORDER BY fetched_at DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate history: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RateSnapshot, error) {
		return scanRateSnapshot(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate history: %w", err)
	}
	return mapping.ToDomainRateSnapshotSlice(ms), nil
}

// FindLatestRateSnapshot retrieves the most recent snapshot.
func (r *PgxRateHistoryRepository) FindLatestRateSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	query := `SELECT ` + rateSnapshotColumns + ` FROM rate_history ORDER BY fetched_at DESC LIMIT 1;`

	m, err := scanRateSnapshot(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest rate snapshot: %w", err)
	}

	s := mapping.ToDomainRateSnapshot(m)
	return &s, nil
}
