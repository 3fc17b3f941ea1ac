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
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepository
	companyRepo  portsrepo.CompanyRepository
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepository, companyRepo portsrepo.CompanyRepository) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		companyRepo:  companyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		s.LogError(ctx, err, "Failed to find company for account creation",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		s.LogError(ctx, err, "Invalid currency code",
			slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("invalid currency code: %w", err)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		AccountType:  domain.AccountType(req.AccountType),
		CurrencyCode: req.CurrencyCode,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("company_id", companyID))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other companies
	if account.CompanyID != companyID {
		s.LogDebug(ctx, "Account found but belongs to different company",
			slog.String("account_id", accountID),
			slog.String("account_company", account.CompanyID),
			slog.String("requested_company", companyID))
		return nil, apperrors.ErrNotFound
	}

	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountServiceImpl) GetOrCreateAccount(ctx context.Context, companyID string, name string, accountType domain.AccountType, currencyCode string, userID string) (*domain.Account, error) {
	now := time.Now()
	candidate := domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    companyID,
		Name:         name,
		AccountType:  accountType,
		CurrencyCode: currencyCode,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	account, err := s.accountRepo.GetOrCreateAccount(ctx, candidate)
	if err != nil {
		s.LogError(ctx, err, "Failed to get or create account",
			slog.String("company_id", companyID),
			slog.String("name", name),
			slog.String("account_type", string(accountType)))
		return nil, err
	}

	if account.AccountID == candidate.AccountID {
		s.LogInfo(ctx, "Account materialized on first use",
			slog.String("account_id", account.AccountID),
			slog.String("company_id", companyID),
			slog.String("account_type", string(accountType)))
	}
	return account, nil
}
