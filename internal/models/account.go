package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the DB layer.
type AccountType string

const (
	Bank        AccountType = "BANK"
	Cash        AccountType = "CASH"
	MobileMoney AccountType = "MOBILE_MONEY"
	Equity      AccountType = "EQUITY"
)

// Account is the DB representation of a monetary account.
// Uniqueness: (company_id, name, account_type).
type Account struct {
	AccountID    string      `db:"account_id"`
	CompanyID    string      `db:"company_id"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	CurrencyCode string      `db:"currency_code"`
	IsActive     bool        `db:"is_active"`
	AuditFields
	Balance decimal.Decimal `db:"balance"` // Persisted running balance
}
