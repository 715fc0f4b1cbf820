package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines a manually entered receivable or payable.
// Receivables of DUE sales are opened by the sale itself.
type CreateTransactionRequest struct {
	Type          domain.TransactionType   `json:"type" binding:"required,oneof=RECEIVABLE PAYABLE"`
	Description   string                   `json:"description"`
	Amount        *decimal.Decimal         `json:"amount" binding:"required"`
	DueDate       *time.Time               `json:"dueDate"`
	Status        domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	CustomerID    string                   `json:"customerID"`
	SaleID        string                   `json:"saleID"`
	PurchaseID    string                   `json:"purchaseID"`
	PaymentMethod domain.PaymentMethod     `json:"paymentMethod" binding:"omitempty,settledmethod"`
	PaidAt        *time.Time               `json:"paidAt"`
}

// SettleTransactionRequest moves a pending transaction to PAID.
type SettleTransactionRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,settledmethod"`
	PaidAt        *time.Time           `json:"paidAt"`
}

// ListTransactionsParams holds the query parameters of a transaction listing.
type ListTransactionsParams struct {
	ListParams
	Type       domain.TransactionType   `form:"type" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	Status     domain.TransactionStatus `form:"status" binding:"omitempty,oneof=PENDING PAID"`
	CustomerID string                   `form:"customerID"`
}

// ListTransactionsResponse is one page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}
