package domain

import "github.com/shopspring/decimal"

// Customer is a buyer the store can extend credit to.
// DueBalance is derived from pending receivables on every read and is never persisted.
type Customer struct {
	CustomerID string          `json:"customerID"`
	OwnerID    string          `json:"ownerID"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	DueBalance decimal.Decimal `json:"dueBalance"`
	AuditFields
}
