package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one line of a purchase request.
type PurchaseItemRequest struct {
	BookID   string           `json:"bookID" binding:"required"`
	Quantity int64            `json:"quantity" binding:"required,min=1"`
	UnitCost *decimal.Decimal `json:"unitCost" binding:"required"`
}

// CreatePurchaseRequest defines the data needed to record a stock purchase.
type CreatePurchaseRequest struct {
	Date          *time.Time            `json:"date"`
	Supplier      string                `json:"supplier"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	DueDate       *time.Time            `json:"dueDate"`
}

// PurchaseDate returns the requested date or now.
func (r CreatePurchaseRequest) PurchaseDate(now time.Time) time.Time {
	return dateOrNow(r.Date, now)
}

// Method returns the requested payment method, CASH when omitted.
func (r CreatePurchaseRequest) Method() domain.PaymentMethod {
	return methodOrCash(r.PaymentMethod)
}

// CreatePurchaseResponse is a recorded purchase plus the payable a DUE purchase opened.
type CreatePurchaseResponse struct {
	Purchase domain.Purchase     `json:"purchase"`
	Payable  *domain.Transaction `json:"payable,omitempty"`
}

// ListPurchasesResponse is one page of purchases.
type ListPurchasesResponse struct {
	Purchases []domain.Purchase `json:"purchases"`
	NextToken *string           `json:"nextToken,omitempty"`
}
