package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryWithTx
	TransactionRepo TransactionRepositoryWithTx
	FiscalYearRepo  FiscalYearRepositoryWithTx
	RollupRepo      RollupRepository
	CompanyRepo     CompanyRepository
	CustomerRepo    CustomerRepository
	ProjectRepo     ProjectRepository
	CurrencyRepo    CurrencyRepository
}
