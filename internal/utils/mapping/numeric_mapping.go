package mapping

import (
	"fmt"

	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ToDecimal converts a numeric column to a decimal. NULL, NaN and the
// infinities are rejected with ledger.ErrInvalidInput.
func ToDecimal(column string, n pgtype.Numeric) (decimal.Decimal, error) {
	switch {
	case !n.Valid:
		return decimal.Zero, fmt.Errorf("%w: %s is NULL", ledger.ErrInvalidInput, column)
	case n.NaN:
		return decimal.Zero, fmt.Errorf("%w: %s is NaN", ledger.ErrInvalidInput, column)
	case n.InfinityModifier != pgtype.Finite:
		return decimal.Zero, fmt.Errorf("%w: %s is infinite", ledger.ErrInvalidInput, column)
	case n.Int == nil:
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// decimals converts several columns at once, stopping at the first failure.
type decimals struct {
	err error
}

func (d *decimals) get(column string, n pgtype.Numeric) decimal.Decimal {
	if d.err != nil {
		return decimal.Zero
	}
	v, err := ToDecimal(column, n)
	if err != nil {
		d.err = err
	}
	return v
}

// NullableText returns the text or "" for NULL.
func NullableText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TextOrNull maps "" to NULL.
func TextOrNull(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
