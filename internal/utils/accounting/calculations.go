package accounting

import (
	"fmt"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the balance delta a transaction applies to its
// account. Amounts are stored positive; the (transaction type, account type)
// pair decides the direction. This is the single aggregation rule used by
// services, repositories and the fiscal-year close.
//
// For BANK/CASH/MOBILE_MONEY accounts:
//
//	INCOME, TRANSFER_IN, DEBT_TAKEN, OTHER -> Positive (+)
//	EXPENSE, TRANSFER_OUT, DEBT_REPAID     -> Negative (-)
//
// For EQUITY accounts the transfer directions invert: a TRANSFER_OUT moves
// activity out of the operating side into equity (+), a TRANSFER_IN moves it
// back out (-). INCOME and DEBT_TAKEN stay positive, EXPENSE and DEBT_REPAID
// stay negative.
func SignedAmount(txnType domain.TransactionType, amount decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Bank, domain.Cash, domain.MobileMoney:
		switch txnType {
		case domain.Income, domain.TransferIn, domain.DebtTaken, domain.Other:
			return amount, nil
		case domain.Expense, domain.TransferOut, domain.DebtRepaid:
			return amount.Neg(), nil
		}
	case domain.Equity:
		switch txnType {
		case domain.Income, domain.TransferOut, domain.DebtTaken, domain.Other:
			return amount, nil
		case domain.Expense, domain.TransferIn, domain.DebtRepaid:
			return amount.Neg(), nil
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
	return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txnType)
}

// ValidateAmount checks that a movement amount is usable: non-zero and
// positive (direction comes from the type, never from the sign).
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be a positive value, got %s", amount.String())
	}
	return nil
}

// ClampNonNegative floors a derived figure at zero. Used only on the read
// side; stored data is never clamped.
func ClampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
