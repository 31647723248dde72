package services

// ServiceContainer holds all the services used by the application.
type ServiceContainer struct {
	Chart       ChartOfAccountsSvc
	Transaction TransactionSvc
	Journal     JournalSvcFacade
	Reporting   ReportingSvc
}
