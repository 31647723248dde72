package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	chartRepo := newPgxChartRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ChartRepo:       chartRepo,
		TransactionRepo: transactionRepo,
		JournalRepo:     journalRepo,
		ReportingRepo:   reportingRepo,
	}
}
