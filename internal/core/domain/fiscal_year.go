package domain

import "time"

// FiscalYearStatus is the lifecycle state of a fiscal year.
// The only transition is ACTIVE -> CLOSED; CLOSED is terminal.
type FiscalYearStatus string

const (
	FiscalYearActive FiscalYearStatus = "ACTIVE"
	FiscalYearClosed FiscalYearStatus = "CLOSED"
)

// FiscalYear is a bounded accounting period owned by a company.
// Exactly one fiscal year may exist per (company, year) pair.
type FiscalYear struct {
	FiscalYearID string           `json:"fiscalYearID"` // Primary Key (UUID)
	CompanyID    string           `json:"companyID"`    // FK -> companies.company_id (Not Null)
	Year         int              `json:"year"`         // Calendar year, e.g. 2024
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	Status       FiscalYearStatus `json:"status"`
	Description  string           `json:"description"`
	ClosedAt     *time.Time       `json:"closedAt,omitempty"` // Set when status flips to CLOSED
	AuditFields
}

// IsClosed reports whether the period has been closed.
func (f FiscalYear) IsClosed() bool {
	return f.Status == FiscalYearClosed
}
