package repositories

import (
	"context"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomersByCompany(ctx context.Context, companyID string) ([]domain.Customer, error)
}

// ProjectRepository defines persistence operations for projects and their payments.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjectsByCompany(ctx context.Context, companyID string) ([]domain.Project, error)
	SavePayment(ctx context.Context, payment domain.Payment) error
	ListPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)
}

// CurrencyRepository defines persistence operations for currency reference data.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error // Primarily for initial setup
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
