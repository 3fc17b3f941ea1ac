package domain

// Customer is a counterparty that can owe or be owed money.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	CompanyID  string `json:"companyID"`  // FK -> companies.company_id (Not Null)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
