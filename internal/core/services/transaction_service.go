package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	"github.com/barterbase/barter_books_app/internal/core/domain"
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/events"
	"github.com/barterbase/barter_books_app/internal/middleware"
	"github.com/barterbase/barter_books_app/internal/utils/accounting"
)

var (
	ErrAlreadyPosted       = errors.New("transaction is already posted")
	ErrNotPosted           = errors.New("only posted transactions can be voided")
	ErrImmutable           = errors.New("posted and voided transactions cannot be modified")
	ErrMissingBarterDetail = errors.New("barter transactions require a barter detail")
	ErrMissingCounterparty = errors.New("barter transactions require a counterparty")
	ErrVoidReasonRequired  = errors.New("void reason is required")
	ErrAccountNotFound     = errors.New("account not found")
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// transactionService provides the transaction lifecycle: draft creation and
// editing, posting and voiding, plus barter offset generation.
type transactionService struct {
	txnRepo         portsrepo.TransactionRepositoryWithTx
	accountSvc      portssvc.AccountSvcFacade
	counterpartySvc portssvc.CounterpartySvcFacade
	publisher       events.Publisher
	fmvTolerancePct decimal.Decimal
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, accountSvc portssvc.AccountSvcFacade, counterpartySvc portssvc.CounterpartySvcFacade, publisher events.Publisher, fmvTolerancePct decimal.Decimal) portssvc.TransactionSvcFacade {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &transactionService{
		txnRepo:         txnRepo,
		accountSvc:      accountSvc,
		counterpartySvc: counterpartySvc,
		publisher:       publisher,
		fmvTolerancePct: fmvTolerancePct,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// publishEvent emits a lifecycle event. Publishing failures are logged and
// swallowed; the ledger write has already committed.
func (s *transactionService) publishEvent(ctx context.Context, eventType string, txn *domain.Transaction, actorUserID string) {
	logger := middleware.GetLoggerFromCtx(ctx)
	event := events.TransactionEvent{
		EventType:     eventType,
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		State:         string(txn.State),
		ActorUserID:   actorUserID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish transaction event", slog.String("event_type", eventType), slog.String("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
	}
}

// verifyAccountsUsable checks that every referenced account exists and is active.
func (s *transactionService) verifyAccountsUsable(ctx context.Context, accountIDs []string) error {
	unique := uniqueStrings(accountIDs)
	accountsMap, err := s.accountSvc.GetAccountsByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range unique {
		acc, found := accountsMap[id]
		if !found {
			return fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// CreateTransaction creates a new DRAFT transaction. For STANDARD
// transactions the caller supplies the entries; for BARTER transactions the
// entries are generated from the barter detail and the caller must not supply
// any. Drafts are allowed to be unbalanced, the balance invariant is enforced
// at posting time.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, *accounting.FMVMismatchWarning, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	transactionID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	txn := domain.Transaction{
		TransactionID:   transactionID,
		Kind:            req.Kind,
		Description:     req.Description,
		CounterpartyID:  req.CounterpartyID,
		State:           domain.Draft,
		TransactionDate: req.TransactionDate,
		AuditFields:     audit,
	}

	var warning *accounting.FMVMismatchWarning

	switch req.Kind {
	case domain.Standard:
		if req.BarterDetail != nil {
			return nil, nil, fmt.Errorf("%w: standard transactions cannot carry a barter detail", apperrors.ErrValidation)
		}
		entries := make([]domain.LedgerEntry, len(req.Entries))
		accountIDs := make([]string, 0, len(req.Entries))
		for i, entryReq := range req.Entries {
			if entryReq.Amount.LessThanOrEqual(decimal.Zero) {
				return nil, nil, fmt.Errorf("%w: entry amount must be positive for account %s", apperrors.ErrValidation, entryReq.AccountID)
			}
			entries[i] = domain.LedgerEntry{
				EntryID:       uuid.NewString(),
				TransactionID: transactionID,
				AccountID:     entryReq.AccountID,
				Direction:     entryReq.Direction,
				Amount:        entryReq.Amount,
				State:         domain.Draft,
				Notes:         entryReq.Notes,
				AuditFields:   audit,
			}
			accountIDs = append(accountIDs, entryReq.AccountID)
		}
		if len(accountIDs) > 0 {
			if err := s.verifyAccountsUsable(ctx, accountIDs); err != nil {
				return nil, nil, err
			}
		}
		txn.Entries = entries

	case domain.Barter:
		if req.BarterDetail == nil {
			return nil, nil, ErrMissingBarterDetail
		}
		if len(req.Entries) > 0 {
			return nil, nil, fmt.Errorf("%w: barter entries are generated, not supplied", apperrors.ErrValidation)
		}
		if req.CounterpartyID == nil || *req.CounterpartyID == "" {
			return nil, nil, ErrMissingCounterparty
		}
		if _, err := s.counterpartySvc.GetCounterpartyByID(ctx, *req.CounterpartyID); err != nil {
			return nil, nil, fmt.Errorf("failed to verify counterparty %s: %w", *req.CounterpartyID, err)
		}

		detail := req.BarterDetail.ToDomainDetail(transactionID)
		accounts := req.BarterDetail.Accounts()
		if err := s.verifyAccountsUsable(ctx, []string{accounts.IncomeAccountID, accounts.ExpenseAccountID, accounts.ClearingAccountID}); err != nil {
			return nil, nil, err
		}

		entries, w, err := GenerateBarterEntries(transactionID, detail, accounts, s.fmvTolerancePct)
		if err != nil {
			return nil, nil, err
		}
		for i := range entries {
			entries[i].AuditFields = audit
		}
		warning = w
		txn.Entries = entries
		txn.BarterDetail = &detail

	default:
		return nil, nil, fmt.Errorf("%w: unknown transaction kind %s", apperrors.ErrValidation, req.Kind)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction created", slog.String("transaction_id", transactionID), slog.String("kind", string(txn.Kind)))
	s.publishEvent(ctx, events.EventTransactionCreated, &txn, creatorUserID)
	return &txn, warning, nil
}

// UpdateTransaction edits a DRAFT transaction. Supplying a new barter detail
// regenerates the offsetting entries; their IDs are stable across
// regeneration, so the replaced rows keep their identity.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, *accounting.FMVMismatchWarning, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.State != domain.Draft {
		return nil, nil, fmt.Errorf("%w: transaction %s is %s", ErrImmutable, transactionID, txn.State)
	}

	now := time.Now().UTC()
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.TransactionDate != nil {
		txn.TransactionDate = *req.TransactionDate
	}

	var warning *accounting.FMVMismatchWarning
	if req.BarterDetail != nil {
		if txn.Kind != domain.Barter {
			return nil, nil, fmt.Errorf("%w: transaction %s is not a barter transaction", apperrors.ErrValidation, transactionID)
		}
		detail := req.BarterDetail.ToDomainDetail(transactionID)
		accounts := req.BarterDetail.Accounts()
		if err := s.verifyAccountsUsable(ctx, []string{accounts.IncomeAccountID, accounts.ExpenseAccountID, accounts.ClearingAccountID}); err != nil {
			return nil, nil, err
		}
		entries, w, err := GenerateBarterEntries(transactionID, detail, accounts, s.fmvTolerancePct)
		if err != nil {
			return nil, nil, err
		}
		audit := domain.AuditFields{
			CreatedAt:     txn.CreatedAt,
			CreatedBy:     txn.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
		for i := range entries {
			entries[i].AuditFields = audit
		}
		warning = w
		txn.Entries = entries
		txn.BarterDetail = &detail
	}

	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateDraftTransaction(ctx, *txn); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// The draft got posted or voided underneath us.
			return nil, nil, fmt.Errorf("%w: transaction %s left draft state", ErrImmutable, transactionID)
		}
		logger.Error("Failed to update transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	logger.Info("Transaction updated", slog.String("transaction_id", transactionID))
	s.publishEvent(ctx, events.EventTransactionUpdated, txn, userID)
	return txn, warning, nil
}

// PostTransaction moves a DRAFT transaction to POSTED. The entry set must be
// balanced within the minor-unit tolerance; the state flip is a
// compare-and-swap, so concurrent posts of the same draft fail with
// apperrors.ErrConflict.
func (s *transactionService) PostTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	switch txn.State {
	case domain.Posted:
		return nil, fmt.Errorf("%w: %s", ErrAlreadyPosted, transactionID)
	case domain.Void:
		return nil, fmt.Errorf("%w: transaction %s is void", ErrImmutable, transactionID)
	}

	if txn.Kind == domain.Barter && txn.BarterDetail == nil {
		return nil, fmt.Errorf("%w: transaction %s has no barter detail", ErrMissingBarterDetail, transactionID)
	}

	if err := accounting.ValidateEntries(txn.Entries); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	postedAt := time.Now().UTC()
	if err := s.txnRepo.MarkTransactionPosted(ctx, transactionID, userID, postedAt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Lost posting race", slog.String("transaction_id", transactionID))
		} else {
			logger.Error("Failed to post transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to post transaction %s: %w", transactionID, err)
	}

	txn.State = domain.Posted
	txn.PostedAt = &postedAt
	txn.LastUpdatedAt = postedAt
	txn.LastUpdatedBy = userID
	for i := range txn.Entries {
		txn.Entries[i].State = domain.Posted
		txn.Entries[i].PostedAt = &postedAt
	}

	logger.Info("Transaction posted", slog.String("transaction_id", transactionID))
	s.publishEvent(ctx, events.EventTransactionPosted, txn, userID)
	return txn, nil
}

// VoidTransaction moves a POSTED transaction to VOID. VOID is terminal; the
// entries are retained for the audit trail but excluded from all reports.
func (s *transactionService) VoidTransaction(ctx context.Context, transactionID string, reason string, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reason == "" {
		return nil, ErrVoidReasonRequired
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.State != domain.Posted {
		return nil, fmt.Errorf("%w: transaction %s is %s", ErrNotPosted, transactionID, txn.State)
	}

	voidedAt := time.Now().UTC()
	if err := s.txnRepo.MarkTransactionVoided(ctx, transactionID, reason, userID, voidedAt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Lost voiding race", slog.String("transaction_id", transactionID))
		} else {
			logger.Error("Failed to void transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to void transaction %s: %w", transactionID, err)
	}

	txn.State = domain.Void
	txn.VoidedAt = &voidedAt
	txn.VoidReason = reason
	txn.LastUpdatedAt = voidedAt
	txn.LastUpdatedBy = userID
	for i := range txn.Entries {
		txn.Entries[i].State = domain.Void
	}

	logger.Info("Transaction voided", slog.String("transaction_id", transactionID), slog.String("reason", reason))
	s.publishEvent(ctx, events.EventTransactionVoided, txn, userID)
	return txn, nil
}

// GetTransactionByID retrieves a transaction with its entries and barter detail.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of transactions using token pagination.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, limit, params.NextToken)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	responses := make([]dto.TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = dto.ToTransactionResponse(&txns[i])
	}
	return &dto.ListTransactionsResponse{
		Transactions: responses,
		NextToken:    nextToken,
	}, nil
}

// PreviewBarterEntries generates barter offsets for display without touching
// storage. A provisional transaction ID is used, so previewed entry IDs are
// not the ones a subsequent create will produce.
func (s *transactionService) PreviewBarterEntries(ctx context.Context, req dto.BarterDetailRequest) ([]domain.LedgerEntry, *accounting.FMVMismatchWarning, error) {
	provisionalID := uuid.NewString()
	detail := req.ToDomainDetail(provisionalID)
	return GenerateBarterEntries(provisionalID, detail, req.Accounts(), s.fmvTolerancePct)
}

// uniqueStrings returns the unique values of in, preserving first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
