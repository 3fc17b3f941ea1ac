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

// companyServiceImpl implements the CompanySvcFacade interface
type companyServiceImpl struct {
	BaseService
	companyRepo  portsrepo.CompanyRepository
	currencyRepo portsrepo.CurrencyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo portsrepo.CompanyRepository, currencyRepo portsrepo.CurrencyRepository) portssvc.CompanySvcFacade {
	return &companyServiceImpl{
		companyRepo:  companyRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyServiceImpl)(nil)

func (s *companyServiceImpl) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	if req.DefaultCurrencyCode != nil {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, *req.DefaultCurrencyCode); err != nil {
			s.LogError(ctx, err, "Invalid default currency code",
				slog.String("currency_code", *req.DefaultCurrencyCode))
			return nil, fmt.Errorf("invalid default currency code: %w", err)
		}
	}

	now := time.Now()
	company := domain.Company{
		CompanyID:           uuid.NewString(),
		Name:                req.Name,
		DefaultCurrencyCode: req.DefaultCurrencyCode,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company",
			slog.String("company_id", company.CompanyID))
		return nil, err
	}

	s.LogInfo(ctx, "Company created successfully",
		slog.String("company_id", company.CompanyID),
		slog.String("name", company.Name))
	return &company, nil
}

func (s *companyServiceImpl) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID",
				slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func (s *companyServiceImpl) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}
