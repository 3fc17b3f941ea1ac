package dto

import (
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest defines the payload for creating a company.
type CreateCompanyRequest struct {
	Name                string  `json:"name" binding:"required"`
	DefaultCurrencyCode *string `json:"defaultCurrencyCode,omitempty" binding:"omitempty,len=3"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID           string    `json:"companyID"`
	Name                string    `json:"name"`
	DefaultCurrencyCode *string   `json:"defaultCurrencyCode,omitempty"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateCustomerRequest defines the payload for creating a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID string `json:"customerID"`
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name            string          `json:"name" binding:"required"`
	CustomerID      *string         `json:"customerID,omitempty"`
	AgreementAmount decimal.Decimal `json:"agreementAmount" binding:"required,gt=0"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID       string          `json:"projectID"`
	CompanyID       string          `json:"companyID"`
	CustomerID      *string         `json:"customerID,omitempty"`
	Name            string          `json:"name"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	IsActive        bool            `json:"isActive"`
}

// RecordPaymentRequest defines the payload for recording a project payment.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Notes       string          `json:"notes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:           c.CompanyID,
		Name:                c.Name,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
	}
}

func ToCompanyResponses(companies []domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(&c)
	}
	return responses
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		CompanyID:  c.CompanyID,
		Name:       c.Name,
		Phone:      c.Phone,
		IsActive:   c.IsActive,
	}
}

func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		responses[i] = ToCustomerResponse(&c)
	}
	return responses
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ProjectID,
		CompanyID:       p.CompanyID,
		CustomerID:      p.CustomerID,
		Name:            p.Name,
		AgreementAmount: p.AgreementAmount,
		IsActive:        p.IsActive,
	}
}

func ToProjectResponses(projects []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		responses[i] = ToProjectResponse(&p)
	}
	return responses
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		ProjectID:   p.ProjectID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Notes:       p.Notes,
	}
}

func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = ToCurrencyResponse(&c)
	}
	return responses
}
