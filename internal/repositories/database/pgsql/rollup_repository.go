package pgsql

import (
	"context"
	"fmt"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxRollupRepository struct {
	BaseRepository
}

// newPgxRollupRepository creates a new repository for rollup aggregation queries.
func newPgxRollupRepository(pool *pgxpool.Pool) portsrepo.RollupRepository {
	return &PgxRollupRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RollupRepository = (*PgxRollupRepository)(nil)

// GetProjectAdvancePaid sums the payments recorded against a project.
// Payments are the only source; project-scoped INCOME entries are not counted.
func (r *PgxRollupRepository) GetProjectAdvancePaid(ctx context.Context, companyID string, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE company_id = $1 AND project_id = $2;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, companyID, projectID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for project %s: %w", projectID, err)
	}
	return total, nil
}

// GetDebtAggregates sums one counterparty's DEBT_TAKEN, DEBT_REPAID and
// non-project INCOME across the journal. A nil customerID selects entries
// with no customer reference, which is the company's own debt.
func (r *PgxRollupRepository) GetDebtAggregates(ctx context.Context, companyID string, customerID *string) (*portsrepo.DebtAggregates, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEBT_TAKEN'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEBT_REPAID'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'INCOME' AND project_id IS NULL), 0)
		FROM transactions
		WHERE company_id = $1
		  AND customer_id IS NOT DISTINCT FROM $2
		  AND NOT (metadata ? 'closingEntry');
	`
	agg := &portsrepo.DebtAggregates{}
	err := r.Pool.QueryRow(ctx, query, companyID, customerID).Scan(&agg.TotalTaken, &agg.TotalRepaid, &agg.NonProjectIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate debt for company %s: %w", companyID, err)
	}
	return agg, nil
}

// GetCashBalances returns the balance of every cash-like account of the
// company, active or not, so history remains in the position.
func (r *PgxRollupRepository) GetCashBalances(ctx context.Context, companyID string) ([]domain.AccountAmount, error) {
	query := `
		SELECT account_id, name, account_type, balance
		FROM accounts
		WHERE company_id = $1 AND account_type IN ('BANK', 'CASH', 'MOBILE_MONEY')
		ORDER BY created_at, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	out := []domain.AccountAmount{}
	for rows.Next() {
		var row domain.AccountAmount
		if err := rows.Scan(&row.AccountID, &row.Name, &row.AccountType, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan cash account row for company %s: %w", companyID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash account rows for company %s: %w", companyID, err)
	}
	return out, nil
}

// GetFiscalYearSummary computes a period's totals outside any close
// transaction. The figures match what a close of the same snapshot would
// produce, because both exclude closing entries and use the same sums.
func (r *PgxRollupRepository) GetFiscalYearSummary(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYearSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'EXPENSE'), 0),
			COUNT(*)
		FROM transactions
		WHERE company_id = $1
		  AND fiscal_year_id = $2
		  AND NOT (metadata ? 'closingEntry');
	`
	summary := &domain.FiscalYearSummary{FiscalYearID: fiscalYearID}
	err := r.Pool.QueryRow(ctx, query, companyID, fiscalYearID).Scan(&summary.TotalIncome, &summary.TotalExpenses, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize fiscal year %s: %w", fiscalYearID, err)
	}
	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary, nil
}
