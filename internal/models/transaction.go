package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the DB layer.
type TransactionType string

const (
	Income      TransactionType = "INCOME"
	Expense     TransactionType = "EXPENSE"
	TransferIn  TransactionType = "TRANSFER_IN"
	TransferOut TransactionType = "TRANSFER_OUT"
	DebtTaken   TransactionType = "DEBT_TAKEN"
	DebtRepaid  TransactionType = "DEBT_REPAID"
	Other       TransactionType = "OTHER"
)

// Transaction is the DB representation of a journal entry. Rows are
// append-only; there are no UPDATE or DELETE paths for this table.
// Metadata is stored as jsonb and never read by aggregation queries.
type Transaction struct {
	TransactionID   string            `db:"transaction_id"`
	CompanyID       string            `db:"company_id"`
	FiscalYearID    string            `db:"fiscal_year_id"`
	AccountID       string            `db:"account_id"`
	TransactionType TransactionType   `db:"transaction_type"`
	Amount          decimal.Decimal   `db:"amount"` // Positive value
	Description     string            `db:"description"`
	ProjectID       *string           `db:"project_id"`
	CustomerID      *string           `db:"customer_id"`
	TransactionDate time.Time         `db:"transaction_date"`
	Metadata        map[string]string `db:"metadata"`
	AuditFields
	RunningBalance decimal.Decimal `db:"running_balance"`
}
