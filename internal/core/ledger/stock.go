package ledger

import (
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeStockValue values the stock on hand at production price:
// Σ productionPrice * stock. Dashboard and balance sheet both call this.
func ComputeStockValue(books []domain.Book) (decimal.Decimal, error) {
	if err := validateBooks(books); err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, b := range books {
		total = total.Add(b.ProductionPrice.Mul(decimal.NewFromInt(b.Stock)))
	}
	return total, nil
}
