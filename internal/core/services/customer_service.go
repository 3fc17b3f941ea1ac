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

// customerServiceImpl implements the CustomerSvcFacade interface
type customerServiceImpl struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
	companyRepo  portsrepo.CompanyRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo portsrepo.CustomerRepository, companyRepo portsrepo.CompanyRepository) portssvc.CustomerSvcFacade {
	return &customerServiceImpl{
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerServiceImpl)(nil)

func (s *customerServiceImpl) CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("invalid company: %w", err)
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		CompanyID:  companyID,
		Name:       req.Name,
		Phone:      req.Phone,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer",
			slog.String("customer_id", customer.CustomerID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully",
		slog.String("customer_id", customer.CustomerID),
		slog.String("company_id", companyID))
	return &customer, nil
}

func (s *customerServiceImpl) GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID",
				slog.String("customer_id", customerID))
		}
		return nil, err
	}
	if customer.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return customer, nil
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context, companyID string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomersByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list customers for company %s: %w", companyID, err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}
