package mapping

import (
	"math/big"
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numeric(v int64, exp int32) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(v), Exp: exp, Valid: true}
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    decimal.Decimal
		wantErr bool
	}{
		{"finite", numeric(12345, -2), decimal.RequireFromString("123.45"), false},
		{"zero int", pgtype.Numeric{Valid: true}, decimal.Zero, false},
		{"null", pgtype.Numeric{}, decimal.Zero, true},
		{"nan", pgtype.Numeric{NaN: true, Valid: true}, decimal.Zero, true},
		{"infinity", pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, decimal.Zero, true},
		{"negative infinity", pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity, Valid: true}, decimal.Zero, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimal("col", tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ledger.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestToDomainSale_RejectsNaNItemPrice(t *testing.T) {
	m := models.Sale{SaleID: "S1", SaleDate: time.Now(), PaymentMethod: "CASH", Total: numeric(100, 0)}
	items := []models.SaleItem{
		{SaleID: "S1", LineNo: 1, BookID: "B1", Quantity: 1, Price: pgtype.Numeric{NaN: true, Valid: true}},
	}
	_, err := ToDomainSale(m, items)
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestToDomainTransaction_Nullables(t *testing.T) {
	paid := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	m := models.Transaction{
		TransactionID:   "T1",
		TransactionType: "RECEIVABLE",
		Amount:          numeric(500, 0),
		Status:          "PAID",
		CustomerID:      pgtype.Text{String: "C1", Valid: true},
		PaymentMethod:   pgtype.Text{String: "CASH", Valid: true},
		PaidAt:          pgtype.Timestamptz{Time: paid, Valid: true},
	}
	txn, err := ToDomainTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, "C1", txn.CustomerID)
	assert.Empty(t, txn.SaleID)
	assert.Equal(t, domain.PaymentCash, txn.PaymentMethod)
	require.NotNil(t, txn.PaidAt)
	assert.Equal(t, paid, *txn.PaidAt)
	assert.False(t, TextOrNull("").Valid)
}
