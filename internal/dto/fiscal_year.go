package dto

import (
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFiscalYearRequest defines the payload for opening a fiscal year.
type CreateFiscalYearRequest struct {
	Year        int       `json:"year" binding:"required,min=1900,max=2200"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	Description string    `json:"description"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string     `json:"fiscalYearID"`
	CompanyID    string     `json:"companyID"`
	Year         int        `json:"year"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      time.Time  `json:"endDate"`
	Status       string     `json:"status"`
	Description  string     `json:"description"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
}

// FiscalYearSummaryResponse carries a period's aggregate figures.
type FiscalYearSummaryResponse struct {
	FiscalYearID     string          `json:"fiscalYearID"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TransactionCount int             `json:"transactionCount"`
}

// CloseFiscalYearResponse is returned by a successful close.
type CloseFiscalYearResponse struct {
	FiscalYearSummaryResponse
	ClosingTransactionIDs []string `json:"closingTransactionIDs"`
}

// ToFiscalYearResponse converts a domain.FiscalYear to its response DTO.
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		CompanyID:    fy.CompanyID,
		Year:         fy.Year,
		StartDate:    fy.StartDate,
		EndDate:      fy.EndDate,
		Status:       string(fy.Status),
		Description:  fy.Description,
		ClosedAt:     fy.ClosedAt,
	}
}

// ToFiscalYearResponses converts a slice of domain fiscal years.
func ToFiscalYearResponses(fys []domain.FiscalYear) []FiscalYearResponse {
	responses := make([]FiscalYearResponse, len(fys))
	for i, fy := range fys {
		responses[i] = ToFiscalYearResponse(&fy)
	}
	return responses
}

// ToFiscalYearSummaryResponse converts a domain summary to its response DTO.
func ToFiscalYearSummaryResponse(s *domain.FiscalYearSummary) FiscalYearSummaryResponse {
	return FiscalYearSummaryResponse{
		FiscalYearID:     s.FiscalYearID,
		TotalIncome:      s.TotalIncome,
		TotalExpenses:    s.TotalExpenses,
		NetProfit:        s.NetProfit,
		TransactionCount: s.TransactionCount,
	}
}

// ToCloseFiscalYearResponse converts a domain close result to its response DTO.
func ToCloseFiscalYearResponse(r *domain.CloseResult) CloseFiscalYearResponse {
	return CloseFiscalYearResponse{
		FiscalYearSummaryResponse: ToFiscalYearSummaryResponse(&r.FiscalYearSummary),
		ClosingTransactionIDs:     r.ClosingTransactionIDs,
	}
}
