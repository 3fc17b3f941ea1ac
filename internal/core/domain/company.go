package domain

// Company is the isolation boundary for all ledger data. Every engine call
// takes an explicit company ID; nothing is resolved from ambient state.
type Company struct {
	CompanyID           string  `json:"companyID"` // Primary Key (UUID)
	Name                string  `json:"name"`
	DefaultCurrencyCode *string `json:"defaultCurrencyCode"` // e.g. "USD"
	IsActive            bool    `json:"isActive"`
	AuditFields
}
