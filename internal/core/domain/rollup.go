package domain

import (
	"github.com/shopspring/decimal"
)

// FiscalYearSummary aggregates a period's journal activity. Derived on
// demand, never persisted.
type FiscalYearSummary struct {
	FiscalYearID     string          `json:"fiscalYearID"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"` // TotalIncome - TotalExpenses
	TransactionCount int             `json:"transactionCount"`
}

// CloseResult is returned by a successful fiscal-year close.
type CloseResult struct {
	FiscalYearSummary
	ClosingTransactionIDs []string `json:"closingTransactionIDs"`
}

// ProjectRemaining is the derived financial position of a project.
type ProjectRemaining struct {
	ProjectID       string          `json:"projectID"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	Remaining       decimal.Decimal `json:"remaining"` // max(0, AgreementAmount - AdvancePaid)
}

// CounterpartyDebt is the derived outstanding debt of a customer, or of the
// company itself when CustomerID is nil.
type CounterpartyDebt struct {
	CustomerID  *string         `json:"customerID,omitempty"`
	TotalTaken  decimal.Decimal `json:"totalTaken"`
	TotalRepaid decimal.Decimal `json:"totalRepaid"` // Repayments plus non-project income credited
	Outstanding decimal.Decimal `json:"outstanding"` // Clamped at zero
}

// CashBalance is the company's current cash position: the sum of all
// BANK, CASH and MOBILE_MONEY account balances across all periods.
type CashBalance struct {
	CompanyID string          `json:"companyID"`
	Total     decimal.Decimal `json:"total"`
	ByAccount []AccountAmount `json:"byAccount"`
}

// AccountAmount pairs an account with an amount for report rows.
type AccountAmount struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Amount      decimal.Decimal `json:"amount"`
}
