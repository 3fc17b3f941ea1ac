package services

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
)

// LedgerSvcFacade exposes the journal: appending monetary movements and
// reading them back in a stable order.
type LedgerSvcFacade interface {
	// AppendTransaction validates and persists one journal entry, applying
	// its balance delta to the owning account in the same atomic unit.
	AppendTransaction(ctx context.Context, companyID string, req dto.AppendTransactionRequest, userID string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single entry scoped to the company.
	GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByFiscalYear lists a period's entries with cursor
	// pagination, ordered by transaction date then creation order.
	ListTransactionsByFiscalYear(ctx context.Context, companyID string, fiscalYearID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionsByAccount lists an account's entries in the same order.
	ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
