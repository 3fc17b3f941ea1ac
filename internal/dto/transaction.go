package dto

import (
	"time"

	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppendTransactionRequest defines the payload for appending a journal entry.
// Amount is always positive; the type decides the direction.
type AppendTransactionRequest struct {
	FiscalYearID    string            `json:"fiscalYearID" binding:"required"`
	AccountID       string            `json:"accountID" binding:"required"`
	Type            string            `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER_IN TRANSFER_OUT DEBT_TAKEN DEBT_REPAID OTHER"`
	Amount          decimal.Decimal   `json:"amount" binding:"required,gt=0"`
	Description     string            `json:"description" binding:"required"`
	ProjectID       *string           `json:"projectID,omitempty"`
	CustomerID      *string           `json:"customerID,omitempty"`
	TransactionDate time.Time         `json:"transactionDate" binding:"required"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// ListTransactionsParams holds pagination parameters for journal listings.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a journal entry.
type TransactionResponse struct {
	TransactionID   string            `json:"transactionID"`
	FiscalYearID    string            `json:"fiscalYearID"`
	AccountID       string            `json:"accountID"`
	Type            string            `json:"type"`
	Amount          decimal.Decimal   `json:"amount"`
	Description     string            `json:"description"`
	ProjectID       *string           `json:"projectID,omitempty"`
	CustomerID      *string           `json:"customerID,omitempty"`
	TransactionDate time.Time         `json:"transactionDate"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	RunningBalance  decimal.Decimal   `json:"runningBalance"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// ListTransactionsResponse is a page of journal entries plus the cursor for
// the next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		FiscalYearID:    txn.FiscalYearID,
		AccountID:       txn.AccountID,
		Type:            string(txn.TransactionType),
		Amount:          txn.Amount,
		Description:     txn.Description,
		ProjectID:       txn.ProjectID,
		CustomerID:      txn.CustomerID,
		TransactionDate: txn.TransactionDate,
		Metadata:        txn.Metadata,
		RunningBalance:  txn.RunningBalance,
		CreatedAt:       txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
