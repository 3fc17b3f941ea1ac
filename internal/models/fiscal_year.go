package models

import "time"

// FiscalYearStatus mirrors domain.FiscalYearStatus at the DB layer.
type FiscalYearStatus string

const (
	FiscalYearActive FiscalYearStatus = "ACTIVE"
	FiscalYearClosed FiscalYearStatus = "CLOSED"
)

// FiscalYear is the DB representation of an accounting period.
// Uniqueness: (company_id, year).
type FiscalYear struct {
	FiscalYearID string           `db:"fiscal_year_id"`
	CompanyID    string           `db:"company_id"`
	Year         int              `db:"year"`
	StartDate    time.Time        `db:"start_date"`
	EndDate      time.Time        `db:"end_date"`
	Status       FiscalYearStatus `db:"status"`
	Description  string           `db:"description"`
	ClosedAt     *time.Time       `db:"closed_at"`
	AuditFields
}
