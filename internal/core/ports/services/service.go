package services

// ServiceContainer holds all service facades handed to the HTTP layer.
type ServiceContainer struct {
	TransactionSvc  TransactionSvcFacade
	AccountSvc      AccountSvcFacade
	CounterpartySvc CounterpartySvcFacade
	BalanceSheetSvc BalanceSheetSvcFacade
	ReportingSvc    ReportingSvcFacade
}
