package mapping

import (
	"github.com/fiscalledger/fiscal_ledger_app/internal/core/domain"
	"github.com/fiscalledger/fiscal_ledger_app/internal/models"
)

// ToModelFiscalYear converts a domain fiscal year for DB storage.
func ToModelFiscalYear(d domain.FiscalYear) models.FiscalYear {
	return models.FiscalYear{
		FiscalYearID: d.FiscalYearID,
		CompanyID:    d.CompanyID,
		Year:         d.Year,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Status:       models.FiscalYearStatus(d.Status),
		Description:  d.Description,
		ClosedAt:     d.ClosedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFiscalYear converts a DB fiscal year row to the domain representation.
func ToDomainFiscalYear(m models.FiscalYear) domain.FiscalYear {
	return domain.FiscalYear{
		FiscalYearID: m.FiscalYearID,
		CompanyID:    m.CompanyID,
		Year:         m.Year,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       domain.FiscalYearStatus(m.Status),
		Description:  m.Description,
		ClosedAt:     m.ClosedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
