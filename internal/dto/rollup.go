package dto

import (
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectRemainingResponse is the derived financial position of a project.
type ProjectRemainingResponse struct {
	ProjectID       string          `json:"projectID"`
	AgreementAmount decimal.Decimal `json:"agreementAmount"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	Remaining       decimal.Decimal `json:"remaining"`
}

// CounterpartyDebtResponse is the derived outstanding debt of a counterparty.
type CounterpartyDebtResponse struct {
	CustomerID  *string         `json:"customerID,omitempty"`
	TotalTaken  decimal.Decimal `json:"totalTaken"`
	TotalRepaid decimal.Decimal `json:"totalRepaid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CashBalanceResponse is the company's current cash position.
type CashBalanceResponse struct {
	CompanyID string                  `json:"companyID"`
	Total     decimal.Decimal         `json:"total"`
	ByAccount []AccountAmountResponse `json:"byAccount"`
}

// AccountAmountResponse pairs an account with an amount in report rows.
type AccountAmountResponse struct {
	AccountID   string          `json:"accountID"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Amount      decimal.Decimal `json:"amount"`
}

// ToProjectRemainingResponse converts the domain rollup to its response DTO.
func ToProjectRemainingResponse(r *domain.ProjectRemaining) ProjectRemainingResponse {
	return ProjectRemainingResponse{
		ProjectID:       r.ProjectID,
		AgreementAmount: r.AgreementAmount,
		AdvancePaid:     r.AdvancePaid,
		Remaining:       r.Remaining,
	}
}

// ToCounterpartyDebtResponse converts the domain rollup to its response DTO.
func ToCounterpartyDebtResponse(d *domain.CounterpartyDebt) CounterpartyDebtResponse {
	return CounterpartyDebtResponse{
		CustomerID:  d.CustomerID,
		TotalTaken:  d.TotalTaken,
		TotalRepaid: d.TotalRepaid,
		Outstanding: d.Outstanding,
	}
}

// ToCashBalanceResponse converts the domain rollup to its response DTO.
func ToCashBalanceResponse(c *domain.CashBalance) CashBalanceResponse {
	byAccount := make([]AccountAmountResponse, len(c.ByAccount))
	for i, a := range c.ByAccount {
		byAccount[i] = AccountAmountResponse{
			AccountID:   a.AccountID,
			Name:        a.Name,
			AccountType: string(a.AccountType),
			Amount:      a.Amount,
		}
	}
	return CashBalanceResponse{
		CompanyID: c.CompanyID,
		Total:     c.Total,
		ByAccount: byAccount,
	}
}
