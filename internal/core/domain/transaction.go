package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a monetary movement. Amounts are always stored
// positive; the type decides the direction of the balance delta.
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

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, TransferIn, TransferOut, DebtTaken, DebtRepaid, Other:
		return true
	}
	return false
}

// Transaction is a single immutable journal entry against one account.
// There is no update or delete; a correction is a new entry of the opposite
// direction. Metadata is a display-only payload and never participates in
// balance or rollup computations.
type Transaction struct {
	TransactionID   string            `json:"transactionID"` // Primary Key (UUID)
	CompanyID       string            `json:"companyID"`     // FK -> companies.company_id (Not Null)
	FiscalYearID    string            `json:"fiscalYearID"`  // FK -> fiscal_years.fiscal_year_id (Not Null)
	AccountID       string            `json:"accountID"`     // FK -> accounts.account_id (Not Null)
	TransactionType TransactionType   `json:"transactionType"`
	Amount          decimal.Decimal   `json:"amount"` // Positive value
	Description     string            `json:"description"`
	ProjectID       *string           `json:"projectID,omitempty"`  // Nullable FK -> projects
	CustomerID      *string           `json:"customerID,omitempty"` // Nullable FK -> customers
	TransactionDate time.Time         `json:"transactionDate"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this entry
}

// IsClosingEntry reports whether the entry was synthesized by a fiscal-year
// close (closing entries reference the EQUITY account and carry this marker
// in metadata).
func (t Transaction) IsClosingEntry() bool {
	_, ok := t.Metadata[ClosingEntryMetadataKey]
	return ok
}

// ClosingEntryMetadataKey marks transactions synthesized by a fiscal-year close.
const ClosingEntryMetadataKey = "closingEntry"
