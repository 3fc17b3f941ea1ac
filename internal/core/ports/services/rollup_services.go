package services

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
)

// RollupSvcFacade is the single place derived financial figures are computed.
// Every consumer (handlers, close previews, reports) goes through it rather
// than re-deriving the formulas locally. All methods are read-only and
// return zero figures, not errors, for entities with no activity.
type RollupSvcFacade interface {
	// ProjectRemaining computes max(0, agreementAmount - advancePaid), where
	// advancePaid is the sum of the project's Payment records. Project-scoped
	// INCOME transactions are not counted; see the service documentation.
	ProjectRemaining(ctx context.Context, companyID string, projectID string) (*domain.ProjectRemaining, error)

	// CounterpartyDebt computes max(0, taken - (repaid + non-project income))
	// for a customer, or for the company itself when customerID is nil.
	CounterpartyDebt(ctx context.Context, companyID string, customerID *string) (*domain.CounterpartyDebt, error)

	// CashBalance sums the balances of all BANK, CASH and MOBILE_MONEY
	// accounts across all periods, closed and active.
	CashBalance(ctx context.Context, companyID string) (*domain.CashBalance, error)

	// FiscalYearSummary aggregates a period's activity without closing it.
	FiscalYearSummary(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYearSummary, error)
}
