package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/fiscalledger/fiscal_ledger_app/internal/models"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/accounting"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/mapping"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, company_id, fiscal_year_id, account_id, transaction_type, amount, description, project_id, customer_id, transaction_date, metadata, created_at, created_by, last_updated_at, last_updated_by, running_balance`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for journal entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CompanyID,
		&m.FiscalYearID,
		&m.AccountID,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.ProjectID,
		&m.CustomerID,
		&m.TransactionDate,
		&m.Metadata,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RunningBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction row: %w", err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func scanTransactionRows(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()
	ms := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.CompanyID,
			&m.FiscalYearID,
			&m.AccountID,
			&m.TransactionType,
			&m.Amount,
			&m.Description,
			&m.ProjectID,
			&m.CustomerID,
			&m.TransactionDate,
			&m.Metadata,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.RunningBalance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// SaveTransaction appends one journal entry and applies its signed delta to
// the owning account atomically. Lock order: fiscal year row first (shared),
// then the account row (exclusive). The close unit takes the same rows in the
// same order with a stronger fiscal year lock, so the two cannot deadlock and
// an append can never land in a period mid-close.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var fyStatus models.FiscalYearStatus
	var fyStart, fyEnd time.Time
	err = tx.QueryRow(ctx, `
		SELECT status, start_date, end_date
		FROM fiscal_years
		WHERE fiscal_year_id = $1 AND company_id = $2
		FOR SHARE;
	`, txn.FiscalYearID, txn.CompanyID).Scan(&fyStatus, &fyStart, &fyEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: fiscal year %s not found", apperrors.ErrNotFound, txn.FiscalYearID)
		}
		return nil, fmt.Errorf("failed to lock fiscal year %s: %w", txn.FiscalYearID, classifyPgError(err))
	}
	if fyStatus == models.FiscalYearClosed {
		return nil, fmt.Errorf("%w: fiscal year %s is closed", apperrors.ErrConflict, txn.FiscalYearID)
	}
	if txn.TransactionDate.Before(fyStart) || txn.TransactionDate.After(fyEnd) {
		return nil, fmt.Errorf("%w: transaction date %s is outside fiscal year %s",
			apperrors.ErrValidation, txn.TransactionDate.Format("2006-01-02"), txn.FiscalYearID)
	}

	var accType models.AccountType
	var accIsActive bool
	err = tx.QueryRow(ctx, `
		SELECT account_type, is_active
		FROM accounts
		WHERE account_id = $1 AND company_id = $2
		FOR UPDATE;
	`, txn.AccountID, txn.CompanyID).Scan(&accType, &accIsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, txn.AccountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", txn.AccountID, classifyPgError(err))
	}
	if !accIsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, txn.AccountID)
	}

	delta, err := accounting.SignedAmount(txn.TransactionType, txn.Amount, domain.AccountType(accType))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	var newBalance decimal.Decimal
	err = tx.QueryRow(ctx, `
		UPDATE accounts
		SET balance = balance + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE account_id = $1
		RETURNING balance;
	`, txn.AccountID, delta, txn.CreatedAt, txn.CreatedBy).Scan(&newBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to apply balance delta to account %s: %w", txn.AccountID, classifyPgError(err))
	}
	txn.RunningBalance = newBalance

	modelTxn := mapping.ToModelTransaction(txn)
	if err := insertTransaction(ctx, tx, modelTxn); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &txn, nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.CompanyID,
		m.FiscalYearID,
		m.AccountID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.ProjectID,
		m.CustomerID,
		m.TransactionDate,
		m.Metadata,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RunningBalance,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique violation
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503": // foreign key violation
				return fmt.Errorf("%w: transaction %s references a missing row (%s)", apperrors.ErrValidation, m.TransactionID, pgErr.ConstraintName)
			}
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, classifyPgError(err))
	}
	return nil
}

// InsertTransactionsInTx batch-inserts pre-built entries inside a caller-owned
// transaction. Running balances must already be set by the caller.
func (r *PgxTransactionRepository) InsertTransactionsInTx(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) error {
	for _, txn := range txns {
		if err := insertTransaction(ctx, tx, mapping.ToModelTransaction(txn)); err != nil {
			return err
		}
	}
	return nil
}

// FindTransactionByID retrieves a single journal entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	return scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
}

// ListTransactionsByFiscalYear returns a page of the period's entries in
// stable (transaction_date, created_at, transaction_id) order.
func (r *PgxTransactionRepository) ListTransactionsByFiscalYear(ctx context.Context, companyID string, fiscalYearID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, "fiscal_year_id", fiscalYearID, companyID, limit, nextToken)
}

// ListTransactionsByAccount returns a page of an account's entries in the
// same stable order.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, "account_id", accountID, companyID, limit, nextToken)
}

func (r *PgxTransactionRepository) listTransactions(ctx context.Context, scopeColumn string, scopeID string, companyID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	// scopeColumn is one of two compile-time constants, never user input.
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE company_id = $1 AND ` + scopeColumn + ` = $2
	`
	args := []any{companyID, scopeID}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, lastID, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (transaction_date, created_at, transaction_id) > ($3, $4, $5)`
		args = append(args, txnDate, createdAt, lastID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY transaction_date ASC, created_at ASC, transaction_id ASC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for %s %s: %w", scopeColumn, scopeID, err)
	}
	txns, err := scanTransactionRows(rows)
	if err != nil {
		return nil, nil, err
	}

	var outToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeCursor(last.TransactionDate, last.CreatedAt, last.TransactionID)
		outToken = &token
	}
	return txns, outToken, nil
}
