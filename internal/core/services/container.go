package services

import (
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company:    NewCompanyService(repos.CompanyRepo, repos.CurrencyRepo),
		Account:    NewAccountService(repos.AccountRepo, repos.CurrencyRepo, repos.CompanyRepo),
		Ledger:     NewLedgerService(repos.TransactionRepo, repos.FiscalYearRepo, repos.AccountRepo, repos.ProjectRepo, repos.CustomerRepo),
		FiscalYear: NewFiscalYearService(repos.FiscalYearRepo, repos.AccountRepo, repos.TransactionRepo, repos.CompanyRepo),
		Rollup:     NewRollupService(repos.RollupRepo, repos.ProjectRepo, repos.CustomerRepo, repos.FiscalYearRepo),
		Customer:   NewCustomerService(repos.CustomerRepo, repos.CompanyRepo),
		Project:    NewProjectService(repos.ProjectRepo, repos.CustomerRepo, repos.CompanyRepo),
		Currency:   NewCurrencyService(repos.CurrencyRepo),
	}
}
