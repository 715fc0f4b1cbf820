package domain

import "github.com/shopspring/decimal"

// Book is a catalog entry with its stock on hand.
type Book struct {
	BookID          string          `json:"bookID"`
	OwnerID         string          `json:"ownerID"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	ISBN            string          `json:"isbn"`
	Stock           int64           `json:"stock"`
	Price           decimal.Decimal `json:"price"`           // selling price
	ProductionPrice decimal.Decimal `json:"productionPrice"` // unit cost
	AuditFields
}

// Validate checks the invariants of a book record.
func (b Book) Validate() error {
	if b.BookID == "" {
		return validationErr("book id is required")
	}
	if b.Title == "" {
		return validationErr("book %s: title is required", b.BookID)
	}
	if b.Stock < 0 {
		return validationErr("book %s: stock must not be negative, got %d", b.BookID, b.Stock)
	}
	if err := requireNonNegative("book "+b.BookID+": price", b.Price); err != nil {
		return err
	}
	return requireNonNegative("book "+b.BookID+": productionPrice", b.ProductionPrice)
}
