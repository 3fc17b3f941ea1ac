package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for database transaction management.
// Services use it to orchestrate multi-repository atomic units (the
// fiscal-year close spans the fiscal year, account and journal tables).
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Rolling back an already committed
	// transaction is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
