package services

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/dto"
)

// CompanySvcFacade manages companies, the isolation boundary of the ledger.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CustomerSvcFacade manages customers (debt counterparties).
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, companyID string) ([]domain.Customer, error)
}

// ProjectSvcFacade manages projects and their advance payments.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, companyID string, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, companyID string) ([]domain.Project, error)
	RecordPayment(ctx context.Context, companyID string, projectID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, error)
	ListPayments(ctx context.Context, companyID string, projectID string) ([]domain.Payment, error)
}

// CurrencySvcFacade exposes currency reference data.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
