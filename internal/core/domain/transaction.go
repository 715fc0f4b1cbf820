package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType says who owes whom.
type TransactionType string

const (
	Receivable TransactionType = "RECEIVABLE" // owed to the store
	Payable    TransactionType = "PAYABLE"    // owed by the store
)

// TransactionStatus tracks settlement.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "PENDING"
	StatusPaid    TransactionStatus = "PAID"
)

// Transaction is money owed to or by the store, distinct from the Sale or
// Purchase that may have produced it. A receivable created for a DUE sale
// always carries that sale's id.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	OwnerID       string            `json:"ownerID"`
	Type          TransactionType   `json:"type"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	DueDate       time.Time         `json:"dueDate"`
	Status        TransactionStatus `json:"status"`
	CustomerID    string            `json:"customerID,omitempty"`
	SaleID        string            `json:"saleID,omitempty"`
	PurchaseID    string            `json:"purchaseID,omitempty"`
	PaymentMethod PaymentMethod     `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time        `json:"paidAt,omitempty"`
	AuditFields
}

// EffectiveDate is the date the transaction moved money: PaidAt when known, DueDate otherwise.
func (t Transaction) EffectiveDate() time.Time {
	if t.PaidAt != nil && !t.PaidAt.IsZero() {
		return *t.PaidAt
	}
	return t.DueDate
}

// IsCustomerPayment reports whether t is a settled collection from a customer.
func (t Transaction) IsCustomerPayment() bool {
	return t.Type == Receivable && t.Status == StatusPaid && t.PaymentMethod.Settled() &&
		(t.CustomerID != "" || t.SaleID != "")
}

// Validate checks the invariants of a transaction record.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return validationErr("transaction id is required")
	}
	if t.Type != Receivable && t.Type != Payable {
		return validationErr("transaction %s: unknown type %q", t.TransactionID, t.Type)
	}
	if t.Status != StatusPending && t.Status != StatusPaid {
		return validationErr("transaction %s: unknown status %q", t.TransactionID, t.Status)
	}
	if t.PaymentMethod != "" && !t.PaymentMethod.Settled() {
		return validationErr("transaction %s: payment method must be CASH or BANK when set, got %q", t.TransactionID, t.PaymentMethod)
	}
	if t.Type == Payable && t.SaleID != "" {
		return validationErr("transaction %s: a payable cannot reference a sale", t.TransactionID)
	}
	if t.Type == Receivable && t.PurchaseID != "" {
		return validationErr("transaction %s: a receivable cannot reference a purchase", t.TransactionID)
	}
	return requirePositive("transaction "+t.TransactionID+": amount", t.Amount)
}
