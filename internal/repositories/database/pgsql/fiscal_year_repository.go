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
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fiscalYearColumns = `fiscal_year_id, company_id, year, start_date, end_date, status, description, closed_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxFiscalYearRepository struct {
	BaseRepository
}

// newPgxFiscalYearRepository creates a new repository for fiscal year data.
func newPgxFiscalYearRepository(pool *pgxpool.Pool) portsrepo.FiscalYearRepositoryWithTx {
	return &PgxFiscalYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalYearRepositoryWithTx = (*PgxFiscalYearRepository)(nil)

func scanFiscalYear(row pgx.Row) (*domain.FiscalYear, error) {
	var m models.FiscalYear
	err := row.Scan(
		&m.FiscalYearID,
		&m.CompanyID,
		&m.Year,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.Description,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan fiscal year row: %w", err)
	}
	fy := mapping.ToDomainFiscalYear(m)
	return &fy, nil
}

// SaveFiscalYear persists a new fiscal year.
func (r *PgxFiscalYearRepository) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(fy)

	query := `
		INSERT INTO fiscal_years (` + fiscalYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FiscalYearID,
		m.CompanyID,
		m.Year,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.Description,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique violation
			return fmt.Errorf("%w: fiscal year %d already exists for company %s",
				apperrors.ErrDuplicate, m.Year, m.CompanyID)
		}
		return fmt.Errorf("failed to save fiscal year %s: %w", m.FiscalYearID, err)
	}
	return nil
}

// FindFiscalYearByID retrieves a fiscal year by its identifier.
func (r *PgxFiscalYearRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1;`
	return scanFiscalYear(r.Pool.QueryRow(ctx, query, fiscalYearID))
}

// FindFiscalYearByYear retrieves the fiscal year for a (company, year) pair.
func (r *PgxFiscalYearRepository) FindFiscalYearByYear(ctx context.Context, companyID string, year int) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE company_id = $1 AND year = $2;`
	return scanFiscalYear(r.Pool.QueryRow(ctx, query, companyID, year))
}

// ListFiscalYearsByCompany retrieves all fiscal years for a company, newest
// year first.
func (r *PgxFiscalYearRepository) ListFiscalYearsByCompany(ctx context.Context, companyID string) ([]domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE company_id = $1 ORDER BY year DESC;`

	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal years for company %s: %w", companyID, err)
	}
	defer rows.Close()

	fys := []domain.FiscalYear{}
	for rows.Next() {
		var m models.FiscalYear
		if err := rows.Scan(
			&m.FiscalYearID,
			&m.CompanyID,
			&m.Year,
			&m.StartDate,
			&m.EndDate,
			&m.Status,
			&m.Description,
			&m.ClosedAt,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fiscal year row for company %s: %w", companyID, err)
		}
		fys = append(fys, mapping.ToDomainFiscalYear(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal year rows for company %s: %w", companyID, err)
	}
	return fys, nil
}

// FindFiscalYearForUpdate selects the fiscal year row and locks it. Close
// takes this exclusive lock while appends take FOR SHARE, so a close waits
// for in-flight appends and blocks new ones until it commits.
func (r *PgxFiscalYearRepository) FindFiscalYearForUpdate(ctx context.Context, tx pgx.Tx, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1 FOR UPDATE;`
	fy, err := scanFiscalYear(tx.QueryRow(ctx, query, fiscalYearID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, classifyPgError(err)
	}
	return fy, nil
}

// SummarizeFiscalYearInTx computes the period's income and expense totals
// from the journal inside the close transaction. Closing entries are filtered
// out by their metadata marker so a re-read after close reproduces the same
// figures.
func (r *PgxFiscalYearRepository) SummarizeFiscalYearInTx(ctx context.Context, tx pgx.Tx, fiscalYearID string) (*domain.FiscalYearSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'INCOME'), 0)  AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'EXPENSE'), 0) AS total_expenses,
			COUNT(*)                                                             AS transaction_count
		FROM transactions
		WHERE fiscal_year_id = $1
		  AND NOT (metadata ? 'closingEntry');
	`
	summary := &domain.FiscalYearSummary{FiscalYearID: fiscalYearID}
	err := tx.QueryRow(ctx, query, fiscalYearID).Scan(&summary.TotalIncome, &summary.TotalExpenses, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize fiscal year %s: %w", fiscalYearID, classifyPgError(err))
	}
	summary.NetProfit = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary, nil
}

// MarkFiscalYearClosedInTx flips the status to CLOSED. The guard on the
// current status makes the transition idempotent-safe: a row already closed
// by a racing caller affects zero rows and surfaces as a conflict.
func (r *PgxFiscalYearRepository) MarkFiscalYearClosedInTx(ctx context.Context, tx pgx.Tx, fiscalYearID string, userID string, now time.Time) error {
	query := `
		UPDATE fiscal_years
		SET status = $2,
		    closed_at = $3,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE fiscal_year_id = $1 AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, query, fiscalYearID, models.FiscalYearClosed, now, userID, models.FiscalYearActive)
	if err != nil {
		return fmt.Errorf("failed to close fiscal year %s: %w", fiscalYearID, classifyPgError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: fiscal year %s is not active", apperrors.ErrConflict, fiscalYearID)
	}
	return nil
}
