package pgsql

import (
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every PostgreSQL repository implementation onto
// one shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		FiscalYearRepo:  newPgxFiscalYearRepository(pool),
		RollupRepo:      newPgxRollupRepository(pool),
		CompanyRepo:     newPgxCompanyRepository(pool),
		CustomerRepo:    newPgxCustomerRepository(pool),
		ProjectRepo:     newPgxProjectRepository(pool),
		CurrencyRepo:    newPgxCurrencyRepository(pool),
	}
}
