package domain

import (
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validSale() Sale {
	return Sale{
		SaleID:        "S1",
		Date:          time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		PaymentMethod: PaymentCash,
		Items: []SaleItem{
			{BookID: "B1", Quantity: 2, Price: decimal.NewFromInt(150)},
			{BookID: "B2", Quantity: 1, Price: decimal.RequireFromString("99.50")},
		},
		Total: decimal.RequireFromString("399.50"),
	}
}

func TestSale_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Sale)
		wantErr bool
	}{
		{"valid", func(*Sale) {}, false},
		{"missing id", func(s *Sale) { s.SaleID = "" }, true},
		{"missing date", func(s *Sale) { s.Date = time.Time{} }, true},
		{"unknown method", func(s *Sale) { s.PaymentMethod = "CHEQUE" }, true},
		{"due without customer", func(s *Sale) { s.PaymentMethod = PaymentDue }, true},
		{"due with customer", func(s *Sale) { s.PaymentMethod = PaymentDue; s.CustomerID = "C1" }, false},
		{"no items", func(s *Sale) { s.Items = nil; s.Total = decimal.Zero }, true},
		{"zero quantity", func(s *Sale) { s.Items[0].Quantity = 0 }, true},
		{"negative price", func(s *Sale) { s.Items[0].Price = decimal.NewFromInt(-1) }, true},
		{"total mismatch", func(s *Sale) { s.Total = decimal.NewFromInt(400) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSale()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTransaction_IsCustomerPayment(t *testing.T) {
	paid := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	txn := Transaction{
		TransactionID: "T1",
		Type:          Receivable,
		Amount:        decimal.NewFromInt(100),
		Status:        StatusPaid,
		CustomerID:    "C1",
		PaymentMethod: PaymentCash,
		PaidAt:        &paid,
	}
	assert.True(t, txn.IsCustomerPayment())
	assert.Equal(t, paid, txn.EffectiveDate())

	pending := txn
	pending.Status = StatusPending
	assert.False(t, pending.IsCustomerPayment())

	payable := txn
	payable.Type = Payable
	assert.False(t, payable.IsCustomerPayment())

	anonymous := txn
	anonymous.CustomerID = ""
	assert.False(t, anonymous.IsCustomerPayment())
}

func TestTransaction_Validate(t *testing.T) {
	txn := Transaction{TransactionID: "T1", Type: Payable, Amount: decimal.NewFromInt(10), Status: StatusPending}
	assert.NoError(t, txn.Validate())

	withSale := txn
	withSale.SaleID = "S1"
	assert.ErrorIs(t, withSale.Validate(), apperrors.ErrValidation)

	zero := txn
	zero.Amount = decimal.Zero
	assert.ErrorIs(t, zero.Validate(), apperrors.ErrValidation)

	due := txn
	due.PaymentMethod = PaymentDue
	assert.ErrorIs(t, due.Validate(), apperrors.ErrValidation)
}
