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
	"github.com/fiscalledger/fiscal_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// Service-level sentinels for the journal. Wrapped over apperrors so both
// errors.Is checks work at the handler.
var (
	// ErrPeriodClosed is returned when an append targets a CLOSED fiscal year.
	ErrPeriodClosed = fmt.Errorf("%w: fiscal year is closed", apperrors.ErrConflict)
)

const defaultListLimit = 20

// ledgerServiceImpl implements the LedgerSvcFacade interface
type ledgerServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	fiscalYearRepo  portsrepo.FiscalYearReader
	accountRepo     portsrepo.AccountReader
	projectRepo     portsrepo.ProjectRepository
	customerRepo    portsrepo.CustomerRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	fiscalYearRepo portsrepo.FiscalYearReader,
	accountRepo portsrepo.AccountReader,
	projectRepo portsrepo.ProjectRepository,
	customerRepo portsrepo.CustomerRepository,
) portssvc.LedgerSvcFacade {
	return &ledgerServiceImpl{
		transactionRepo: transactionRepo,
		fiscalYearRepo:  fiscalYearRepo,
		accountRepo:     accountRepo,
		projectRepo:     projectRepo,
		customerRepo:    customerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerServiceImpl)(nil)

// AppendTransaction validates the request against the company's data and
// delegates the atomic insert-and-apply to the repository, which re-checks
// the fiscal year status under lock. The pre-checks here exist to return
// clean errors before a transaction is opened; they are not the guard.
func (s *ledgerServiceImpl) AppendTransaction(ctx context.Context, companyID string, req dto.AppendTransactionRequest, userID string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.Type)
	}
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if _, reserved := req.Metadata[domain.ClosingEntryMetadataKey]; reserved {
		return nil, fmt.Errorf("%w: metadata key '%s' is reserved", apperrors.ErrValidation, domain.ClosingEntryMetadataKey)
	}

	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, req.FiscalYearID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find fiscal year for append",
			slog.String("fiscal_year_id", req.FiscalYearID))
		return nil, err
	}
	if fy.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if fy.IsClosed() {
		return nil, ErrPeriodClosed
	}
	if req.TransactionDate.Before(fy.StartDate) || req.TransactionDate.After(fy.EndDate) {
		return nil, fmt.Errorf("%w: transaction date %s is outside fiscal year %d",
			apperrors.ErrValidation, req.TransactionDate.Format("2006-01-02"), fy.Year)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for append",
			slog.String("account_id", req.AccountID))
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, req.AccountID)
	}

	if req.ProjectID != nil {
		project, err := s.projectRepo.FindProjectByID(ctx, *req.ProjectID)
		if err != nil || project.CompanyID != companyID {
			return nil, fmt.Errorf("%w: invalid project reference", apperrors.ErrValidation)
		}
	}
	if req.CustomerID != nil {
		customer, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil || customer.CompanyID != companyID {
			return nil, fmt.Errorf("%w: invalid customer reference", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		CompanyID:       companyID,
		FiscalYearID:    req.FiscalYearID,
		AccountID:       req.AccountID,
		TransactionType: txnType,
		Amount:          req.Amount,
		Description:     req.Description,
		ProjectID:       req.ProjectID,
		CustomerID:      req.CustomerID,
		TransactionDate: req.TransactionDate,
		Metadata:        req.Metadata,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saved, err := s.transactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// The period closed between the pre-check and the insert.
			return nil, ErrPeriodClosed
		}
		s.LogError(ctx, err, "Failed to append transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("fiscal_year_id", txn.FiscalYearID),
			slog.String("account_id", txn.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction appended successfully",
		slog.String("transaction_id", saved.TransactionID),
		slog.String("account_id", saved.AccountID),
		slog.String("type", string(saved.TransactionType)),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

func (s *ledgerServiceImpl) GetTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	if txn.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

func (s *ledgerServiceImpl) ListTransactionsByFiscalYear(ctx context.Context, companyID string, fiscalYearID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	fy, err := s.fiscalYearRepo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	txns, nextToken, err := s.transactionRepo.ListTransactionsByFiscalYear(ctx, companyID, fiscalYearID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by fiscal year",
			slog.String("fiscal_year_id", fiscalYearID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *ledgerServiceImpl) ListTransactionsByAccount(ctx context.Context, companyID string, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	txns, nextToken, err := s.transactionRepo.ListTransactionsByAccount(ctx, companyID, accountID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account",
			slog.String("account_id", accountID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
