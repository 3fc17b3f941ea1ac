package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of monetary account.
type AccountType string

const (
	Bank        AccountType = "BANK"
	Cash        AccountType = "CASH"
	MobileMoney AccountType = "MOBILE_MONEY"
	Equity      AccountType = "EQUITY"
)

// IsCashLike reports whether balances on this account count toward the
// company's cash position.
func (t AccountType) IsCashLike() bool {
	return t == Bank || t == Cash || t == MobileMoney
}

// Account represents a monetary account within a company.
// Balance is the persisted running balance and always equals the signed sum
// of all transactions referencing the account.
type Account struct {
	AccountID    string          `json:"accountID"`    // Primary Key (UUID)
	CompanyID    string          `json:"companyID"`    // FK -> companies.company_id (Not Null)
	Name         string          `json:"name"`         // User-defined name
	AccountType  AccountType     `json:"accountType"`  // BANK, CASH, MOBILE_MONEY, EQUITY
	CurrencyCode string          `json:"currencyCode"` // FK -> currencies.code (Not Null)
	IsActive     bool            `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"`
}
