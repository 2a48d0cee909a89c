package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency    CurrencySvcFacade
	Wallet      WalletSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Balance     BalanceSvcFacade
	Budget      BudgetSvcFacade
	Debt        DebtSvcFacade
	Planning    PlanningSvcFacade
	Report      ReportSvcFacade
	Backup      BackupSvcFacade
	Advice      AdviceSvcFacade
	Auth        AuthSvcFacade
}
