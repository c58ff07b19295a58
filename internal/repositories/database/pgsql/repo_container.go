package pgsql

import (
	portsrepo "github.com/barterbase/barter_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	counterpartyRepo := newPgxCounterpartyRepository(dbPool)
	balanceSheetRepo := newPgxBalanceSheetRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:  transactionRepo,
		AccountRepo:      accountRepo,
		CounterpartyRepo: counterpartyRepo,
		BalanceSheetRepo: balanceSheetRepo,
		ReportingRepo:    reportingRepo,
	}
}
