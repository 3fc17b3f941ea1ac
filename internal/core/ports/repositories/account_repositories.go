package repositories

import (
	"context"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByCompany retrieves all accounts for a company.
	ListAccountsByCompany(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// GetOrCreateAccount returns the account matching the
	// (companyID, name, accountType) triple, creating it with a zero balance
	// if absent. Implemented as an idempotent upsert keyed on the triple, so
	// it is safe under concurrent first use.
	GetOrCreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive. Accounts referenced by
	// transactions are never physically deleted.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountTransactionSupport defines account operations that participate in a
// caller-owned database transaction.
type AccountTransactionSupport interface {
	// FindAccountForUpdate selects one account and locks its row.
	FindAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// GetOrCreateAccountInTx is GetOrCreateAccount inside an open transaction,
	// with the resulting row locked for update.
	GetOrCreateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) (*domain.Account, error)

	// ApplyBalanceDeltaInTx adjusts an account balance by exactly the given
	// signed amount. The caller must hold the row lock.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string, now time.Time) (decimal.Decimal, error)
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends the facade with transaction capabilities.
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
