package services

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
)

// FiscalYearSvcFacade owns the fiscal year lifecycle: ACTIVE -> CLOSED,
// one-way, exactly once.
type FiscalYearSvcFacade interface {
	// CreateFiscalYear creates a new ACTIVE fiscal year for the company.
	CreateFiscalYear(ctx context.Context, companyID string, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error)

	// GetFiscalYearByID retrieves a fiscal year scoped to the company.
	GetFiscalYearByID(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error)

	// ListFiscalYears retrieves the company's fiscal years, newest first.
	ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error)

	// CloseFiscalYear performs the atomic close: sums the period's activity,
	// posts closing entries against the EQUITY account, and flips the status
	// to CLOSED. A second successful invocation is impossible; callers get
	// ErrAlreadyClosed.
	CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, userID string) (*domain.CloseResult, error)
}
