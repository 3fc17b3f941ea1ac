package mapping

import (
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/models"
)

// ToModelTransaction converts a domain transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CompanyID:       d.CompanyID,
		FiscalYearID:    d.FiscalYearID,
		AccountID:       d.AccountID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		Description:     d.Description,
		ProjectID:       d.ProjectID,
		CustomerID:      d.CustomerID,
		TransactionDate: d.TransactionDate,
		Metadata:        d.Metadata,
		AuditFields:     ToModelAuditFields(d.AuditFields),
		RunningBalance:  d.RunningBalance,
	}
}

// ToDomainTransaction converts a DB transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CompanyID:       m.CompanyID,
		FiscalYearID:    m.FiscalYearID,
		AccountID:       m.AccountID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Description:     m.Description,
		ProjectID:       m.ProjectID,
		CustomerID:      m.CustomerID,
		TransactionDate: m.TransactionDate,
		Metadata:        m.Metadata,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		RunningBalance:  m.RunningBalance,
	}
}

// ToDomainTransactionSlice converts a slice of DB transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
