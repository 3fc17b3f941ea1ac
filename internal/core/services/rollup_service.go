package services

import (
	"context"
	"log/slog"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// rollupServiceImpl implements the RollupSvcFacade interface. All figures are
// derived on demand from the store's current snapshot; nothing is cached.
type rollupServiceImpl struct {
	BaseService
	rollupRepo     portsrepo.RollupRepository
	projectRepo    portsrepo.ProjectRepository
	customerRepo   portsrepo.CustomerRepository
	fiscalYearRepo portsrepo.FiscalYearReader
}

// NewRollupService creates a new rollup service
func NewRollupService(
	rollupRepo portsrepo.RollupRepository,
	projectRepo portsrepo.ProjectRepository,
	customerRepo portsrepo.CustomerRepository,
	fiscalYearRepo portsrepo.FiscalYearReader,
) portssvc.RollupSvcFacade {
	return &rollupServiceImpl{
		rollupRepo:     rollupRepo,
		projectRepo:    projectRepo,
		customerRepo:   customerRepo,
		fiscalYearRepo: fiscalYearRepo,
	}
}

var _ portssvc.RollupSvcFacade = (*rollupServiceImpl)(nil)

// ProjectRemaining derives a project's outstanding agreement balance.
// Advance paid is the sum of the project's Payment records only; a
// project-scoped INCOME transaction is the cash side of a payment already
// recorded, so counting it as well would double-count one receipt.
func (s *rollupServiceImpl) ProjectRemaining(ctx context.Context, companyID string, projectID string) (*domain.ProjectRemaining, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	advancePaid, err := s.rollupRepo.GetProjectAdvancePaid(ctx, companyID, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute advance paid",
			slog.String("project_id", projectID))
		return nil, err
	}

	return &domain.ProjectRemaining{
		ProjectID:       projectID,
		AgreementAmount: project.AgreementAmount,
		AdvancePaid:     advancePaid,
		Remaining:       accounting.ClampNonNegative(project.AgreementAmount.Sub(advancePaid)),
	}, nil
}

// CounterpartyDebt derives the outstanding debt of a customer, or of the
// company itself when customerID is nil. Non-project income from the same
// counterparty counts as repayment. The figure is clamped at zero:
// overpayment does not flip the counterparty into a creditor.
func (s *rollupServiceImpl) CounterpartyDebt(ctx context.Context, companyID string, customerID *string) (*domain.CounterpartyDebt, error) {
	if customerID != nil {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer.CompanyID != companyID {
			return nil, apperrors.ErrNotFound
		}
	}

	agg, err := s.rollupRepo.GetDebtAggregates(ctx, companyID, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate counterparty debt",
			slog.String("company_id", companyID))
		return nil, err
	}

	repaid := agg.TotalRepaid.Add(agg.NonProjectIncome)
	return &domain.CounterpartyDebt{
		CustomerID:  customerID,
		TotalTaken:  agg.TotalTaken,
		TotalRepaid: repaid,
		Outstanding: accounting.ClampNonNegative(agg.TotalTaken.Sub(repaid)),
	}, nil
}

// CashBalance sums every cash-like account balance across all periods.
func (s *rollupServiceImpl) CashBalance(ctx context.Context, companyID string) (*domain.CashBalance, error) {
	byAccount, err := s.rollupRepo.GetCashBalances(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute cash balances",
			slog.String("company_id", companyID))
		return nil, err
	}

	total := decimal.Zero
	for _, a := range byAccount {
		total = total.Add(a.Amount)
	}
	return &domain.CashBalance{
		CompanyID: companyID,
		Total:     total,
		ByAccount: byAccount,
	}, nil
}

// FiscalYearSummary aggregates a period's activity without closing it.
func (s *rollupServiceImpl) FiscalYearSummary(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYearSummary, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	summary, err := s.rollupRepo.GetFiscalYearSummary(ctx, companyID, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize fiscal year",
			slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	return summary, nil
}
