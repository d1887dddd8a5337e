package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/weberkan/mevatur-backend/internal/apperrors"
	"github.com/weberkan/mevatur-backend/internal/core/domain"
	portsrepo "github.com/weberkan/mevatur-backend/internal/core/ports/repositories"
	"github.com/weberkan/mevatur-backend/internal/models"
	"github.com/weberkan/mevatur-backend/internal/utils/mapping"
)

type PgxCompanyEntryRepository struct {
	BaseRepository
}

// newPgxCompanyEntryRepository creates a new repository for manual company entries.
func newPgxCompanyEntryRepository(pool *pgxpool.Pool) portsrepo.CompanyEntryRepositoryFacade {
	return &PgxCompanyEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyEntryRepositoryFacade = (*PgxCompanyEntryRepository)(nil)

const companyEntryColumns = `entry_id, date, type, currency, amount, amount_try, category, description, created_at, created_by, last_updated_at, last_updated_by`

func scanCompanyEntry(row pgx.Row) (models.CompanyEntry, error) {
	var m models.CompanyEntry
	err := row.Scan(
		&m.EntryID,
		&m.Date,
		&m.Type,
		&m.Currency,
		&m.Amount,
		&m.AmountTRY,
		&m.Category,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCompanyEntry inserts a new manual entry.
func (r *PgxCompanyEntryRepository) SaveCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error {
	m := mapping.ToModelCompanyEntry(entry)

	query := `
		INSERT INTO company_entries (` + companyEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Date, m.Type, m.Currency, m.Amount, m.AmountTRY,
		m.Category, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save company entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindCompanyEntryByID retrieves a manual entry by its ID.
func (r *PgxCompanyEntryRepository) FindCompanyEntryByID(ctx context.Context, entryID string) (*domain.CompanyEntry, error) {
	query := `SELECT ` + companyEntryColumns + ` FROM company_entries WHERE entry_id = $1;`

	m, err := scanCompanyEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company entry by id %s: %w", entryID, err)
	}

	e := mapping.ToDomainCompanyEntry(m)
	return &e, nil
}

// ListCompanyEntries retrieves all manual entries in an optional date range,
// oldest first.
func (r *PgxCompanyEntryRepository) ListCompanyEntries(ctx context.Context, from, to *time.Time) ([]domain.CompanyEntry, error) {
	query := `SELECT ` + companyEntryColumns + ` FROM company_entries WHERE 1=1`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query company entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CompanyEntry, error) {
		return scanCompanyEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan company entries: %w", err)
	}
	return mapping.ToDomainCompanyEntrySlice(ms), nil
}

// UpdateCompanyEntry updates an existing manual entry.
func (r *PgxCompanyEntryRepository) UpdateCompanyEntry(ctx context.Context, entry domain.CompanyEntry) error {
	m := mapping.ToModelCompanyEntry(entry)

	query := `
		UPDATE company_entries SET
			date = $2, type = $3, currency = $4, amount = $5, amount_try = $6,
			category = $7, description = $8, last_updated_at = $9, last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.Date, m.Type, m.Currency, m.Amount, m.AmountTRY,
		m.Category, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update company entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCompanyEntry removes a manual entry.
func (r *PgxCompanyEntryRepository) DeleteCompanyEntry(ctx context.Context, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM company_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete company entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
