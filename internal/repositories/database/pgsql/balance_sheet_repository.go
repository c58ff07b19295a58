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

type PgxBalanceSheetRepository struct {
	BaseRepository
}

// newPgxBalanceSheetRepository creates a new repository for balance sheet data.
func newPgxBalanceSheetRepository(pool *pgxpool.Pool) portsrepo.BalanceSheetRepositoryFacade {
	return &PgxBalanceSheetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BalanceSheetRepositoryFacade = (*PgxBalanceSheetRepository)(nil)

// SaveSnapshot persists a snapshot and its line items within a DB transaction.
func (r *PgxBalanceSheetRepository) SaveSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelSnapshot := mapping.ToModelSnapshot(snapshot)
	snapshotQuery := `
		INSERT INTO balance_sheet_snapshots (snapshot_id, period_type, period_start, period_end, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, snapshotQuery,
		modelSnapshot.SnapshotID,
		modelSnapshot.PeriodType,
		modelSnapshot.PeriodStart,
		modelSnapshot.PeriodEnd,
		modelSnapshot.CreatedAt,
		modelSnapshot.CreatedBy,
		modelSnapshot.LastUpdatedAt,
		modelSnapshot.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert snapshot "+modelSnapshot.SnapshotID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO balance_sheet_line_items (snapshot_id, section, description, amount, position)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range snapshot.LineItems {
		modelItem := mapping.ToModelLineItem(snapshot.SnapshotID, item)
		batch.Queue(itemQuery,
			modelItem.SnapshotID,
			modelItem.Section,
			modelItem.Description,
			modelItem.Amount,
			modelItem.Position,
		)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert line items for snapshot "+modelSnapshot.SnapshotID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindSnapshotByID retrieves a snapshot with its line items.
func (r *PgxBalanceSheetRepository) FindSnapshotByID(ctx context.Context, snapshotID string) (*domain.BalanceSheetSnapshot, error) {
	query := `
		SELECT snapshot_id, period_type, period_start, period_end,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM balance_sheet_snapshots
		WHERE snapshot_id = $1;
	`
	var m models.BalanceSheetSnapshot
	err := r.Pool.QueryRow(ctx, query, snapshotID).Scan(
		&m.SnapshotID,
		&m.PeriodType,
		&m.PeriodStart,
		&m.PeriodEnd,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find snapshot by ID "+snapshotID, err)
	}

	itemsQuery := `
		SELECT snapshot_id, section, description, amount, position
		FROM balance_sheet_line_items
		WHERE snapshot_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, itemsQuery, snapshotID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for snapshot "+snapshotID, err)
	}
	defer rows.Close()

	items := []domain.BalanceSheetLineItem{}
	for rows.Next() {
		var mi models.BalanceSheetLineItem
		if err := rows.Scan(&mi.SnapshotID, &mi.Section, &mi.Description, &mi.Amount, &mi.Position); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for snapshot "+snapshotID, err)
		}
		items = append(items, mapping.ToDomainLineItem(mi))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for snapshot "+snapshotID, err)
	}

	domainSnapshot := mapping.ToDomainSnapshot(m)
	domainSnapshot.LineItems = items
	return &domainSnapshot, nil
}

// ListSnapshots retrieves snapshots ordered by period start, newest first.
// Line items are not populated.
func (r *PgxBalanceSheetRepository) ListSnapshots(ctx context.Context, limit int, offset int) ([]domain.BalanceSheetSnapshot, error) {
	query := `
		SELECT snapshot_id, period_type, period_start, period_end,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM balance_sheet_snapshots
		ORDER BY period_start DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query snapshots", err)
	}
	defer rows.Close()

	snapshots := []domain.BalanceSheetSnapshot{}
	for rows.Next() {
		var m models.BalanceSheetSnapshot
		err := rows.Scan(
			&m.SnapshotID,
			&m.PeriodType,
			&m.PeriodStart,
			&m.PeriodEnd,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan snapshot row", err)
		}
		snapshots = append(snapshots, mapping.ToDomainSnapshot(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating snapshot rows", err)
	}
	return snapshots, nil
}
