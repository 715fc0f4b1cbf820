package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// PaymentMethod says how money moved (or will move) for a record.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
	PaymentDue  PaymentMethod = "DUE"
)

// Valid reports whether m is one of the known payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentBank, PaymentDue:
		return true
	}
	return false
}

// Settled reports whether the money moved at record time (cash or bank).
func (m PaymentMethod) Settled() bool {
	return m == PaymentCash || m == PaymentBank
}

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

func requireNonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return validationErr("%s must not be negative, got %s", field, v.String())
	}
	return nil
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return validationErr("%s must be positive, got %s", field, v.String())
	}
	return nil
}
