package repositories

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations over the journal.
type TransactionReader interface {
	// FindTransactionByID retrieves a single journal entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByFiscalYear returns the period's entries ordered by
	// (transaction_date ASC, created_at ASC, transaction_id ASC) with cursor
	// pagination. The ordering is stable so the sequence is restartable and
	// close calculations are reproducible.
	ListTransactionsByFiscalYear(ctx context.Context, companyID string, fiscalYearID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByAccount returns an account's entries in the same
	// stable order.
	ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the append operation. The journal is append-only:
// there is no update or delete; a correction is a new entry of the opposite
// direction.
type TransactionWriter interface {
	// SaveTransaction persists one journal entry and applies its signed
	// balance delta to the owning account within a single database
	// transaction. The fiscal year row is share-locked while its ACTIVE
	// status is checked, so a concurrent close cannot slip between the check
	// and the insert. Returns the entry with its running balance set.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// InsertTransactionsInTx batch-inserts pre-built entries (closing
	// entries) inside a caller-owned transaction. Running balances must be
	// precomputed by the caller from the locked account row.
	InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines journal read and write interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
