package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	"github.com/barterbase/barter_books_app/internal/models"
	"github.com/barterbase/barter_books_app/internal/utils/mapping"
	"github.com/barterbase/barter_books_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction and entry data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const insertEntryQuery = `
	INSERT INTO ledger_entries (entry_id, transaction_id, account_id, direction, amount, state, posted_at, notes, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const upsertBarterDetailQuery = `
	INSERT INTO barter_details (transaction_id, goods_received_description, goods_provided_description, fmv_received, fmv_provided, fmv_basis, fmv_mismatch_acknowledged)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (transaction_id) DO UPDATE SET
		goods_received_description = EXCLUDED.goods_received_description,
		goods_provided_description = EXCLUDED.goods_provided_description,
		fmv_received = EXCLUDED.fmv_received,
		fmv_provided = EXCLUDED.fmv_provided,
		fmv_basis = EXCLUDED.fmv_basis,
		fmv_mismatch_acknowledged = EXCLUDED.fmv_mismatch_acknowledged;
`

// queueEntryInserts adds an insert per entry to the batch.
func queueEntryInserts(batch *pgx.Batch, entries []domain.LedgerEntry) {
	for _, entry := range entries {
		modelEntry := mapping.ToModelLedgerEntry(entry)
		batch.Queue(insertEntryQuery,
			modelEntry.EntryID,
			modelEntry.TransactionID,
			modelEntry.AccountID,
			modelEntry.Direction,
			modelEntry.Amount,
			modelEntry.State,
			modelEntry.PostedAt,
			modelEntry.Notes,
			modelEntry.CreatedAt,
			modelEntry.CreatedBy,
			modelEntry.LastUpdatedAt,
			modelEntry.LastUpdatedBy,
		)
	}
}

// SaveTransaction persists a new draft transaction, its entries and optional
// barter detail within a single DB transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	txnQuery := `
		INSERT INTO transactions (transaction_id, kind, description, counterparty_id, state, transaction_date, posted_at, voided_at, void_reason, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, txnQuery,
		modelTxn.TransactionID,
		modelTxn.Kind,
		modelTxn.Description,
		modelTxn.CounterpartyID,
		modelTxn.State,
		modelTxn.TransactionDate,
		modelTxn.PostedAt,
		modelTxn.VoidedAt,
		modelTxn.VoidReason,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	batch := &pgx.Batch{}
	queueEntryInserts(batch, txn.Entries)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert entries for transaction "+modelTxn.TransactionID, err)
		}
	}

	if txn.BarterDetail != nil {
		modelDetail := mapping.ToModelBarterDetail(*txn.BarterDetail)
		_, err = tx.Exec(ctx, upsertBarterDetailQuery,
			modelDetail.TransactionID,
			modelDetail.GoodsReceivedDescription,
			modelDetail.GoodsProvidedDescription,
			modelDetail.FMVReceived,
			modelDetail.FMVProvided,
			modelDetail.FMVBasis,
			modelDetail.FMVMismatchAcknowledged,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert barter detail for transaction "+modelTxn.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// stateOf reads the current state of a transaction within tx. Used to tell
// "row gone" apart from "row left the expected state" after a guarded update
// matched nothing.
func (r *PgxTransactionRepository) stateOf(ctx context.Context, tx pgx.Tx, transactionID string) (models.TxnState, error) {
	var state models.TxnState
	err := tx.QueryRow(ctx, `SELECT state FROM transactions WHERE transaction_id = $1;`, transactionID).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return "", apperrors.NewAppError(500, "failed to read state of transaction "+transactionID, err)
	}
	return state, nil
}

// UpdateDraftTransaction replaces the mutable fields, entries and barter
// detail of a DRAFT transaction. The update is guarded on the DRAFT state.
func (r *PgxTransactionRepository) UpdateDraftTransaction(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions
		SET description = $2,
		    transaction_date = $3,
		    counterparty_id = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE transaction_id = $1 AND state = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		modelTxn.TransactionID,
		modelTxn.Description,
		modelTxn.TransactionDate,
		modelTxn.CounterpartyID,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+modelTxn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, stateErr := r.stateOf(ctx, tx, modelTxn.TransactionID); stateErr != nil {
			return stateErr
		}
		return fmt.Errorf("%w: transaction %s is not in draft state", apperrors.ErrConflict, modelTxn.TransactionID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE transaction_id = $1;`, modelTxn.TransactionID); err != nil {
		return apperrors.NewAppError(500, "failed to clear entries for transaction "+modelTxn.TransactionID, err)
	}

	batch := &pgx.Batch{}
	queueEntryInserts(batch, txn.Entries)
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to insert entries for transaction "+modelTxn.TransactionID, err)
		}
	}

	if txn.BarterDetail != nil {
		modelDetail := mapping.ToModelBarterDetail(*txn.BarterDetail)
		_, err = tx.Exec(ctx, upsertBarterDetailQuery,
			modelDetail.TransactionID,
			modelDetail.GoodsReceivedDescription,
			modelDetail.GoodsProvidedDescription,
			modelDetail.FMVReceived,
			modelDetail.FMVProvided,
			modelDetail.FMVBasis,
			modelDetail.FMVMismatchAcknowledged,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to upsert barter detail for transaction "+modelTxn.TransactionID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// MarkTransactionPosted flips a DRAFT transaction and its entries to POSTED.
// The state guard in the WHERE clause is the compare-and-swap: of two
// concurrent posts only one matches the row, the other sees zero rows
// affected and fails with ErrConflict.
func (r *PgxTransactionRepository) MarkTransactionPosted(ctx context.Context, transactionID string, userID string, postedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txnQuery := `
		UPDATE transactions
		SET state = 'POSTED',
		    posted_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE transaction_id = $1 AND state = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, txnQuery, transactionID, postedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, stateErr := r.stateOf(ctx, tx, transactionID); stateErr != nil {
			return stateErr
		}
		return fmt.Errorf("%w: transaction %s is not in draft state", apperrors.ErrConflict, transactionID)
	}

	entriesQuery := `
		UPDATE ledger_entries
		SET state = 'POSTED',
		    posted_at = $2,
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, entriesQuery, transactionID, postedAt, userID); err != nil {
		return apperrors.NewAppError(500, "failed to post entries for transaction "+transactionID, err)
	}

	return r.Commit(ctx, tx)
}

// MarkTransactionVoided flips a POSTED transaction and its entries to VOID,
// with the same compare-and-swap semantics as MarkTransactionPosted.
func (r *PgxTransactionRepository) MarkTransactionVoided(ctx context.Context, transactionID string, reason string, userID string, voidedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txnQuery := `
		UPDATE transactions
		SET state = 'VOID',
		    voided_at = $2,
		    void_reason = $3,
		    last_updated_at = $2,
		    last_updated_by = $4
		WHERE transaction_id = $1 AND state = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, txnQuery, transactionID, voidedAt, reason, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void transaction "+transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, stateErr := r.stateOf(ctx, tx, transactionID); stateErr != nil {
			return stateErr
		}
		return fmt.Errorf("%w: transaction %s is not in posted state", apperrors.ErrConflict, transactionID)
	}

	entriesQuery := `
		UPDATE ledger_entries
		SET state = 'VOID',
		    last_updated_at = $2,
		    last_updated_by = $3
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, entriesQuery, transactionID, voidedAt, userID); err != nil {
		return apperrors.NewAppError(500, "failed to void entries for transaction "+transactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its entries and, for
// barter transactions, its detail row.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, kind, description, counterparty_id, state, transaction_date, posted_at, voided_at, void_reason,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	var counterpartyID sql.NullString
	var postedAt, voidedAt sql.NullTime

	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.Kind,
		&modelTxn.Description,
		&counterpartyID,
		&modelTxn.State,
		&modelTxn.TransactionDate,
		&postedAt,
		&voidedAt,
		&modelTxn.VoidReason,
		&modelTxn.CreatedAt,
		&modelTxn.CreatedBy,
		&modelTxn.LastUpdatedAt,
		&modelTxn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}

	if counterpartyID.Valid {
		modelTxn.CounterpartyID = &counterpartyID.String
	}
	if postedAt.Valid {
		modelTxn.PostedAt = &postedAt.Time
	}
	if voidedAt.Valid {
		modelTxn.VoidedAt = &voidedAt.Time
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)

	entries, err := r.findEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	domainTxn.Entries = entries

	if domainTxn.Kind == domain.Barter {
		detail, err := r.findBarterDetail(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		domainTxn.BarterDetail = detail
	}

	return &domainTxn, nil
}

func (r *PgxTransactionRepository) findEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, transaction_id, account_id, direction, amount, state, posted_at, notes,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for transaction "+transactionID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		var postedAt sql.NullTime
		err := rows.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.AccountID,
			&e.Direction,
			&e.Amount,
			&e.State,
			&postedAt,
			&e.Notes,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for transaction "+transactionID, err)
		}
		if postedAt.Valid {
			e.PostedAt = &postedAt.Time
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for transaction "+transactionID, err)
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func (r *PgxTransactionRepository) findBarterDetail(ctx context.Context, transactionID string) (*domain.BarterDetail, error) {
	query := `
		SELECT transaction_id, goods_received_description, goods_provided_description, fmv_received, fmv_provided, fmv_basis, fmv_mismatch_acknowledged
		FROM barter_details
		WHERE transaction_id = $1;
	`
	var m models.BarterDetail
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.GoodsReceivedDescription,
		&m.GoodsProvidedDescription,
		&m.FMVReceived,
		&m.FMVProvided,
		&m.FMVBasis,
		&m.FMVMismatchAcknowledged,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Barter transaction without a detail row, should not happen.
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find barter detail for transaction "+transactionID, err)
	}
	detail := mapping.ToDomainBarterDetail(m)
	return &detail, nil
}

// ListTransactions retrieves a paginated list of transactions using
// token-based pagination. Entries are not populated.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, kind, description, counterparty_id, state, transaction_date, posted_at, voided_at, void_reason,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
	`
	// Ordering must be stable: transaction_date DESC with created_at as the
	// tie-breaker, matching the cursor encoded in the token.
	orderByClause := `ORDER BY transaction_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `WHERE (transaction_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var m models.Transaction
		var counterpartyID sql.NullString
		var postedAt, voidedAt sql.NullTime

		scanErr := rows.Scan(
			&m.TransactionID,
			&m.Kind,
			&m.Description,
			&counterpartyID,
			&m.State,
			&m.TransactionDate,
			&postedAt,
			&voidedAt,
			&m.VoidReason,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", scanErr)
		}
		if counterpartyID.Valid {
			m.CounterpartyID = &counterpartyID.String
		}
		if postedAt.Valid {
			m.PostedAt = &postedAt.Time
		}
		if voidedAt.Valid {
			m.VoidedAt = &voidedAt.Time
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		lastTxn := modelTxns[limit-1]
		token := pagination.EncodeToken(lastTxn.TransactionDate, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	domainTxns := make([]domain.Transaction, len(results))
	for i, m := range results {
		domainTxns[i] = mapping.ToDomainTransaction(m)
	}
	return domainTxns, nextTokenVal, nil
}
