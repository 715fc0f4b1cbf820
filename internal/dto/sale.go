package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale request. Price defaults to the
// book's current price.
type SaleItemRequest struct {
	BookID   string           `json:"bookID" binding:"required"`
	Quantity int64            `json:"quantity" binding:"required,min=1"`
	Price    *decimal.Decimal `json:"price"`
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	Date          *time.Time           `json:"date"`
	CustomerID    string               `json:"customerID"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,paymentmethod"`
	Items         []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	// Total is optional; when sent it must equal the sum of the items.
	Total   *decimal.Decimal `json:"total"`
	DueDate *time.Time       `json:"dueDate"`
}

// SaleDate returns the requested date or now.
func (r CreateSaleRequest) SaleDate(now time.Time) time.Time {
	return dateOrNow(r.Date, now)
}

// Method returns the requested payment method, CASH when omitted.
func (r CreateSaleRequest) Method() domain.PaymentMethod {
	return methodOrCash(r.PaymentMethod)
}

// CreateSaleResponse is a recorded sale plus the receivable a DUE sale opened.
type CreateSaleResponse struct {
	Sale       domain.Sale         `json:"sale"`
	Receivable *domain.Transaction `json:"receivable,omitempty"`
}

// ListSalesResponse is one page of sales.
type ListSalesResponse struct {
	Sales     []domain.Sale `json:"sales"`
	NextToken *string       `json:"nextToken,omitempty"`
}
