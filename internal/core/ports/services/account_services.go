package services

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
)

// AccountSvcFacade exposes account store operations. Balance mutation is not
// part of this surface: balances change only through the ledger append and
// fiscal-year close units.
type AccountSvcFacade interface {
	// CreateAccount creates a new account for the company.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// GetAccountByID retrieves an account scoped to the company; an account
	// belonging to another company surfaces as not found.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all of the company's accounts.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)

	// GetOrCreateAccount returns the account for the (company, name, type)
	// triple, materializing it with a zero balance if absent. Idempotent
	// under concurrent first use.
	GetOrCreateAccount(ctx context.Context, companyID string, name string, accountType domain.AccountType, currencyCode string, userID string) (*domain.Account, error)
}
