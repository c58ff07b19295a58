package pgsql

import (
	"context"
	"errors"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	"github.com/barterbase/barter_books_app/internal/models"
	"github.com/barterbase/barter_books_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCounterpartyRepository struct {
	BaseRepository
}

// newPgxCounterpartyRepository creates a new repository for counterparty data.
func newPgxCounterpartyRepository(pool *pgxpool.Pool) portsrepo.CounterpartyRepositoryFacade {
	return &PgxCounterpartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

// SaveCounterparty inserts or updates a counterparty.
func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, cp domain.Counterparty) error {
	modelCp := mapping.ToModelCounterparty(cp)
	query := `
		INSERT INTO counterparties (counterparty_id, name, tax_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (counterparty_id) DO UPDATE SET
			name = EXCLUDED.name,
			tax_id = EXCLUDED.tax_id,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCp.CounterpartyID,
		modelCp.Name,
		modelCp.TaxID,
		modelCp.IsActive,
		modelCp.CreatedAt,
		modelCp.CreatedBy,
		modelCp.LastUpdatedAt,
		modelCp.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save counterparty "+modelCp.CounterpartyID, err)
	}
	return nil
}

const selectCounterpartyColumns = `
	SELECT counterparty_id, name, tax_id, is_active,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM counterparties
`

func scanCounterparty(row pgx.Row) (models.Counterparty, error) {
	var m models.Counterparty
	err := row.Scan(
		&m.CounterpartyID,
		&m.Name,
		&m.TaxID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindCounterpartyByID retrieves a counterparty by its ID.
func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	query := selectCounterpartyColumns + ` WHERE counterparty_id = $1;`
	m, err := scanCounterparty(r.Pool.QueryRow(ctx, query, counterpartyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find counterparty by ID "+counterpartyID, err)
	}
	domainCp := mapping.ToDomainCounterparty(m)
	return &domainCp, nil
}

// ListCounterparties retrieves a page of counterparties ordered by name.
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, limit int, offset int) ([]domain.Counterparty, error) {
	query := selectCounterpartyColumns + ` ORDER BY name, counterparty_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query counterparties", err)
	}
	defer rows.Close()

	cps := []domain.Counterparty{}
	for rows.Next() {
		m, err := scanCounterparty(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan counterparty row", err)
		}
		cps = append(cps, mapping.ToDomainCounterparty(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating counterparty rows", err)
	}
	return cps, nil
}
