package pgsql

import (
	"context"
	"database/sql"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for report queries.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// FindPostedBarterRows returns one row per POSTED barter transaction dated in
// the given year, joined with its barter detail and counterparty. The FMV of
// goods received is the income side, the FMV of goods provided the expense
// side. Draft and void transactions never appear here.
func (r *ReportingRepository) FindPostedBarterRows(ctx context.Context, year int) ([]domain.BarterReportRow, error) {
	query := `
		SELECT t.transaction_id, t.transaction_date, t.description,
		       t.counterparty_id, cp.name,
		       bd.fmv_received, bd.fmv_provided
		FROM transactions t
		JOIN barter_details bd ON bd.transaction_id = t.transaction_id
		LEFT JOIN counterparties cp ON cp.counterparty_id = t.counterparty_id
		WHERE t.kind = 'BARTER'
		  AND t.state = 'POSTED'
		  AND t.transaction_date >= make_date($1, 1, 1)
		  AND t.transaction_date < make_date($1 + 1, 1, 1)
		ORDER BY t.transaction_date, t.transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query barter report rows", err)
	}
	defer rows.Close()

	result := []domain.BarterReportRow{}
	for rows.Next() {
		var row domain.BarterReportRow
		var counterpartyID, counterpartyName sql.NullString
		err := rows.Scan(
			&row.TransactionID,
			&row.TransactionDate,
			&row.Description,
			&counterpartyID,
			&counterpartyName,
			&row.IncomeAmount,
			&row.ExpenseAmount,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan barter report row", err)
		}
		row.CounterpartyID = counterpartyID.String
		row.CounterpartyName = counterpartyName.String
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating barter report rows", err)
	}
	return result, nil
}
