package repositories

import (
	"context"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FiscalYearReader defines read operations for fiscal years.
type FiscalYearReader interface {
	// FindFiscalYearByID retrieves a fiscal year by its identifier.
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)

	// FindFiscalYearByYear retrieves the fiscal year for a (company, year) pair.
	FindFiscalYearByYear(ctx context.Context, companyID string, year int) (*domain.FiscalYear, error)

	// ListFiscalYearsByCompany retrieves all fiscal years for a company,
	// newest year first.
	ListFiscalYearsByCompany(ctx context.Context, companyID string) ([]domain.FiscalYear, error)
}

// FiscalYearWriter defines write operations for fiscal years.
type FiscalYearWriter interface {
	// SaveFiscalYear persists a new fiscal year. A (company_id, year)
	// uniqueness violation surfaces as apperrors.ErrDuplicate.
	SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error
}

// FiscalYearCloseSupport defines the tx-scoped operations of the close unit.
type FiscalYearCloseSupport interface {
	// FindFiscalYearForUpdate selects the fiscal year row and locks it,
	// serializing concurrent closes of the same period.
	FindFiscalYearForUpdate(ctx context.Context, tx pgx.Tx, fiscalYearID string) (*domain.FiscalYear, error)

	// SummarizeFiscalYearInTx computes the period's income/expense totals and
	// entry count inside the close transaction, after the period row is
	// locked, so the totals cannot be invalidated by a concurrent append.
	SummarizeFiscalYearInTx(ctx context.Context, tx pgx.Tx, fiscalYearID string) (*domain.FiscalYearSummary, error)

	// MarkFiscalYearClosedInTx flips the status to CLOSED. The update is
	// guarded on the current status being ACTIVE; zero rows affected
	// surfaces as apperrors.ErrConflict.
	MarkFiscalYearClosedInTx(ctx context.Context, tx pgx.Tx, fiscalYearID string, userID string, now time.Time) error
}

// FiscalYearRepositoryFacade combines all fiscal year repository interfaces.
type FiscalYearRepositoryFacade interface {
	FiscalYearReader
	FiscalYearWriter
	FiscalYearCloseSupport
}

// FiscalYearRepositoryWithTx extends the facade with transaction capabilities.
type FiscalYearRepositoryWithTx interface {
	FiscalYearRepositoryFacade
	TransactionManager
}
