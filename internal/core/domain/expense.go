package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operating cost paid from cash or bank.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	OwnerID       string          `json:"ownerID"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	AuditFields
}

func (e Expense) Validate() error {
	if e.ExpenseID == "" {
		return validationErr("expense id is required")
	}
	if e.Date.IsZero() {
		return validationErr("expense %s: date is required", e.ExpenseID)
	}
	if !e.PaymentMethod.Settled() {
		return validationErr("expense %s: payment method must be CASH or BANK, got %q", e.ExpenseID, e.PaymentMethod)
	}
	return requireNonNegative("expense "+e.ExpenseID+": amount", e.Amount)
}
