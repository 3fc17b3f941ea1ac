package domain

// Currency is reference data used to validate account creation.
// The engine does not convert between currencies.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217 code, Primary Key
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // Decimal places, e.g. 2 for USD
	AuditFields
}
