package services

import (
	portsrepo "github.com/xylo-fin/xylo-backend/internal/core/ports/repositories"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Chart service first since journal posting depends on it for
	// strict account validation.
	container.Chart = NewChartOfAccountsService(repos.ChartRepo)

	container.Transaction = NewTransactionService(repos.TransactionRepo, cfg.DefaultCurrency)

	var journalOpts []JournalServiceOption
	if cfg.StrictAccounts {
		journalOpts = append(journalOpts, WithStrictAccounts())
	}
	container.Journal = NewJournalService(repos.JournalRepo, container.Chart, journalOpts...)

	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChartOfAccountsSvc = (*chartService)(nil)
	_ portssvc.TransactionSvc     = (*transactionService)(nil)
	_ portssvc.JournalSvcFacade   = (*journalService)(nil)
	_ portssvc.ReportingSvc       = (*reportingService)(nil)
)
