package models

// Customer is the DB representation of a customer.
type Customer struct {
	CustomerID string `db:"customer_id"`
	CompanyID  string `db:"company_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
