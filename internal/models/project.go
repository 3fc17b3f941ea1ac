package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the DB representation of a project.
type Project struct {
	ProjectID       string          `db:"project_id"`
	CompanyID       string          `db:"company_id"`
	CustomerID      *string         `db:"customer_id"`
	Name            string          `db:"name"`
	AgreementAmount decimal.Decimal `db:"agreement_amount"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}

// Payment is the DB representation of an advance received against a project.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	CompanyID   string          `db:"company_id"`
	ProjectID   string          `db:"project_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Notes       string          `db:"notes"`
	AuditFields
}
