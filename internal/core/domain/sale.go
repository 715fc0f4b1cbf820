package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem is one line of a sale.
type SaleItem struct {
	BookID   string          `json:"bookID"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"` // unit selling price at sale time
}

// Subtotal returns quantity * price.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}

// Sale records books leaving the store. A DUE sale is paid later through its receivable.
type Sale struct {
	SaleID        string          `json:"saleID"`
	OwnerID       string          `json:"ownerID"`
	Date          time.Time       `json:"date"`
	CustomerID    string          `json:"customerID,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []SaleItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	AuditFields
}

// ItemsTotal sums the item subtotals.
func (s Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate checks required fields and that Total equals the sum of item subtotals.
func (s Sale) Validate() error {
	if s.SaleID == "" {
		return validationErr("sale id is required")
	}
	if s.Date.IsZero() {
		return validationErr("sale %s: date is required", s.SaleID)
	}
	if !s.PaymentMethod.Valid() {
		return validationErr("sale %s: unknown payment method %q", s.SaleID, s.PaymentMethod)
	}
	if s.PaymentMethod == PaymentDue && s.CustomerID == "" {
		return validationErr("sale %s: a due sale requires a customer", s.SaleID)
	}
	if len(s.Items) == 0 {
		return validationErr("sale %s: at least one item is required", s.SaleID)
	}
	for i, item := range s.Items {
		if item.BookID == "" {
			return validationErr("sale %s: item %d has no book id", s.SaleID, i)
		}
		if item.Quantity <= 0 {
			return validationErr("sale %s: item %d quantity must be positive", s.SaleID, i)
		}
		if err := requireNonNegative("sale "+s.SaleID+": item price", item.Price); err != nil {
			return err
		}
	}
	if itemsTotal := s.ItemsTotal(); !itemsTotal.Equal(s.Total) {
		return validationErr("sale %s: total %s does not match items total %s", s.SaleID, s.Total.String(), itemsTotal.String())
	}
	return nil
}
