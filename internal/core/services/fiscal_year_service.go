package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/apperrors"
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	portsrepo "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/fiscalledger/fiscal_ledger_app/internal/core/ports/services"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sentinels for the fiscal year lifecycle.
var (
	// ErrAlreadyClosed is returned when a close targets a fiscal year that
	// has already been closed. The first close won; its results stand.
	ErrAlreadyClosed = fmt.Errorf("%w: fiscal year is already closed", apperrors.ErrConflict)

	// ErrInvalidDateRange is returned when a fiscal year's end date does not
	// follow its start date.
	ErrInvalidDateRange = fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
)

// equityAccountName is the reserved account the close posts its entries
// against, materialized on first close.
const equityAccountName = "Retained Earnings"

const defaultEquityCurrency = "USD"

// fiscalYearServiceImpl implements the FiscalYearSvcFacade interface
type fiscalYearServiceImpl struct {
	BaseService
	fiscalYearRepo  portsrepo.FiscalYearRepositoryWithTx
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	companyRepo     portsrepo.CompanyRepository
}

// NewFiscalYearService creates a new fiscal year service
func NewFiscalYearService(
	fiscalYearRepo portsrepo.FiscalYearRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	companyRepo portsrepo.CompanyRepository,
) portssvc.FiscalYearSvcFacade {
	return &fiscalYearServiceImpl{
		fiscalYearRepo:  fiscalYearRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		companyRepo:     companyRepo,
	}
}

var _ portssvc.FiscalYearSvcFacade = (*fiscalYearServiceImpl)(nil)

func (s *fiscalYearServiceImpl) CreateFiscalYear(ctx context.Context, companyID string, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		s.LogError(ctx, err, "Failed to find company for fiscal year creation",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	now := time.Now()
	fy := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		CompanyID:    companyID,
		Year:         req.Year,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       domain.FiscalYearActive,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fiscalYearRepo.SaveFiscalYear(ctx, fy); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save fiscal year",
				slog.String("fiscal_year_id", fy.FiscalYearID),
				slog.Int("year", fy.Year))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal year created successfully",
		slog.String("fiscal_year_id", fy.FiscalYearID),
		slog.String("company_id", companyID),
		slog.Int("year", fy.Year))
	return &fy, nil
}

func (s *fiscalYearServiceImpl) GetFiscalYearByID(ctx context.Context, companyID string, fiscalYearID string) (*domain.FiscalYear, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fiscal year by ID",
				slog.String("fiscal_year_id", fiscalYearID))
		}
		return nil, err
	}
	if fy.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return fy, nil
}

func (s *fiscalYearServiceImpl) ListFiscalYears(ctx context.Context, companyID string) ([]domain.FiscalYear, error) {
	fys, err := s.fiscalYearRepo.ListFiscalYearsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal years",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list fiscal years for company %s: %w", companyID, err)
	}
	if fys == nil {
		return []domain.FiscalYear{}, nil
	}
	return fys, nil
}

// CloseFiscalYear performs the close as one database transaction. The fiscal
// year row is locked FOR UPDATE first, which serializes concurrent closes and
// waits out in-flight appends (appends hold FOR SHARE on the same row). After
// the lock, the status check decides exactly one winner; every later step
// reads a frozen period.
//
// Closing entries follow the period's result: a profit posts a TRANSFER_OUT
// of total income and a TRANSFER_IN of total expenses against the equity
// account; a loss posts a single EXPENSE of the absolute net. Zero-amount
// entries are skipped, so an empty period closes without posting anything.
func (s *fiscalYearServiceImpl) CloseFiscalYear(ctx context.Context, companyID string, fiscalYearID string, userID string) (*domain.CloseResult, error) {
	fy, err := s.GetFiscalYearByID(ctx, companyID, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.IsClosed() {
		return nil, ErrAlreadyClosed
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	equityCurrency := defaultEquityCurrency
	if company.DefaultCurrencyCode != nil {
		equityCurrency = *company.DefaultCurrencyCode
	}

	tx, err := s.fiscalYearRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin close transaction",
			slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}
	defer func() { _ = s.fiscalYearRepo.Rollback(ctx, tx) }()

	locked, err := s.fiscalYearRepo.FindFiscalYearForUpdate(ctx, tx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if locked.IsClosed() {
		// A concurrent close won the race.
		return nil, ErrAlreadyClosed
	}

	summary, err := s.fiscalYearRepo.SummarizeFiscalYearInTx(ctx, tx, fiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to summarize fiscal year for close",
			slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	now := time.Now()
	equityCandidate := domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		Name:         equityAccountName,
		AccountType:  domain.Equity,
		CurrencyCode: equityCurrency,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	equity, err := s.accountRepo.GetOrCreateAccountInTx(ctx, tx, equityCandidate)
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create equity account for close",
			slog.String("company_id", companyID))
		return nil, err
	}

	closingTxns := s.buildClosingEntries(fy, summary, equity, userID, now)
	if len(closingTxns) > 0 {
		if err := s.transactionRepo.InsertTransactionsInTx(ctx, tx, closingTxns); err != nil {
			s.LogError(ctx, err, "Failed to insert closing entries",
				slog.String("fiscal_year_id", fiscalYearID))
			return nil, err
		}
		if _, err := s.accountRepo.ApplyBalanceDeltaInTx(ctx, tx, equity.AccountID, summary.NetProfit, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to apply net result to equity account",
				slog.String("account_id", equity.AccountID))
			return nil, err
		}
	}

	if err := s.fiscalYearRepo.MarkFiscalYearClosedInTx(ctx, tx, fiscalYearID, userID, now); err != nil {
		return nil, err
	}

	if err := s.fiscalYearRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit close transaction",
			slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	ids := make([]string, len(closingTxns))
	for i, txn := range closingTxns {
		ids[i] = txn.TransactionID
	}
	s.LogInfo(ctx, "Fiscal year closed successfully",
		slog.String("fiscal_year_id", fiscalYearID),
		slog.String("net_profit", summary.NetProfit.String()),
		slog.Int("closing_entries", len(ids)))
	return &domain.CloseResult{
		FiscalYearSummary:     *summary,
		ClosingTransactionIDs: ids,
	}, nil
}

// buildClosingEntries synthesizes the equity-side entries for a period's
// result. Entries are dated at the period end and carry the closing marker in
// metadata; running balances are chained off the locked equity balance.
func (s *fiscalYearServiceImpl) buildClosingEntries(fy *domain.FiscalYear, summary *domain.FiscalYearSummary, equity *domain.Account, userID string, now time.Time) []domain.Transaction {
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	newEntry := func(txnType domain.TransactionType, amount, runningBalance decimal.Decimal, description string) domain.Transaction {
		return domain.Transaction{
			TransactionID:   uuid.NewString(),
			CompanyID:       fy.CompanyID,
			FiscalYearID:    fy.FiscalYearID,
			AccountID:       equity.AccountID,
			TransactionType: txnType,
			Amount:          amount,
			Description:     description,
			TransactionDate: fy.EndDate,
			Metadata:        map[string]string{domain.ClosingEntryMetadataKey: "true"},
			AuditFields:     audit,
			RunningBalance:  runningBalance,
		}
	}

	entries := []domain.Transaction{}
	balance := equity.Balance
	if summary.NetProfit.IsPositive() {
		if summary.TotalIncome.IsPositive() {
			balance = balance.Add(summary.TotalIncome)
			entries = append(entries, newEntry(domain.TransferOut, summary.TotalIncome, balance,
				fmt.Sprintf("Closing %d: transfer of period income to equity", fy.Year)))
		}
		if summary.TotalExpenses.IsPositive() {
			balance = balance.Sub(summary.TotalExpenses)
			entries = append(entries, newEntry(domain.TransferIn, summary.TotalExpenses, balance,
				fmt.Sprintf("Closing %d: transfer of period expenses from equity", fy.Year)))
		}
	} else if summary.NetProfit.IsNegative() {
		loss := summary.NetProfit.Abs()
		balance = balance.Sub(loss)
		entries = append(entries, newEntry(domain.Expense, loss, balance,
			fmt.Sprintf("Closing %d: period loss absorbed by equity", fy.Year)))
	}
	return entries
}
