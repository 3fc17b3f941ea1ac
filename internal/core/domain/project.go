package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a customer engagement with an agreed amount. The remaining
// balance is never stored; it is derived from the agreement amount and the
// payments recorded against the project.
type Project struct {
	ProjectID       string          `json:"projectID"` // Primary Key (UUID)
	CompanyID       string          `json:"companyID"` // FK -> companies.company_id (Not Null)
	CustomerID      *string         `json:"customerID,omitempty"`
	Name            string          `json:"name"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// Payment is an advance received against a project. Payments are the
// canonical source of a project's "advance paid" figure; project-scoped
// INCOME transactions are deliberately not counted to avoid double counting
// a single cash receipt.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	ProjectID   string          `json:"projectID"` // FK -> projects.project_id (Not Null)
	Amount      decimal.Decimal `json:"amount"`    // Positive value
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
	AuditFields
}
