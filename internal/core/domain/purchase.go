package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is one restocked line of a purchase.
type PurchaseItem struct {
	BookID   string          `json:"bookID"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// Purchase records stock bought from a supplier.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	OwnerID       string          `json:"ownerID"`
	Date          time.Time       `json:"date"`
	Supplier      string          `json:"supplier"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []PurchaseItem  `json:"items,omitempty"`
	Total         decimal.Decimal `json:"total"`
	AuditFields
}

// ItemsTotal sums quantity * unit cost over the items.
func (p Purchase) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.UnitCost.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// Validate checks the invariants of a purchase record.
func (p Purchase) Validate() error {
	if p.PurchaseID == "" {
		return validationErr("purchase id is required")
	}
	if p.Date.IsZero() {
		return validationErr("purchase %s: date is required", p.PurchaseID)
	}
	if !p.PaymentMethod.Valid() {
		return validationErr("purchase %s: unknown payment method %q", p.PurchaseID, p.PaymentMethod)
	}
	for i, item := range p.Items {
		if item.BookID == "" || item.Quantity <= 0 {
			return validationErr("purchase %s: item %d needs a book id and a positive quantity", p.PurchaseID, i)
		}
		if err := requireNonNegative("purchase "+p.PurchaseID+": unit cost", item.UnitCost); err != nil {
			return err
		}
	}
	return requireNonNegative("purchase "+p.PurchaseID+": total", p.Total)
}
