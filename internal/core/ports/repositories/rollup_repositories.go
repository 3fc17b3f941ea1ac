package repositories

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtAggregates holds the raw sums behind a counterparty debt figure.
// Clamping happens in the service, never here.
type DebtAggregates struct {
	TotalTaken       decimal.Decimal
	TotalRepaid      decimal.Decimal
	NonProjectIncome decimal.Decimal
}

// RollupRepository defines the read-only aggregation queries behind the
// rollup calculator. Every method answers from the store's current snapshot;
// nothing is cached or persisted.
type RollupRepository interface {
	// GetProjectAdvancePaid sums the payments recorded against a project.
	GetProjectAdvancePaid(ctx context.Context, companyID string, projectID string) (decimal.Decimal, error)

	// GetDebtAggregates sums DEBT_TAKEN, DEBT_REPAID and non-project INCOME
	// for one counterparty. A nil customerID selects the company itself
	// (entries with no customer reference).
	GetDebtAggregates(ctx context.Context, companyID string, customerID *string) (*DebtAggregates, error)

	// GetCashBalances returns the balance of every BANK, CASH and
	// MOBILE_MONEY account of the company.
	GetCashBalances(ctx context.Context, companyID string) ([]domain.AccountAmount, error)

	// GetFiscalYearSummary computes a period's income/expense totals and
	// entry count outside any close transaction (read-only preview).
	GetFiscalYearSummary(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYearSummary, error)
}
