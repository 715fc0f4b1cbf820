package ledger

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSheetInput carries the already derived figures of a balance sheet.
type BalanceSheetInput struct {
	AsOf              time.Time
	Cash              decimal.Decimal
	Bank              decimal.Decimal
	Receivables       decimal.Decimal
	StockValue        decimal.Decimal
	OfficeAssetsValue decimal.Decimal
	Payables          decimal.Decimal
}

// ComputeBalanceSheet totals the assets and derives equity as the remainder,
// so TotalAssets == Payables + Equity holds by construction.
func ComputeBalanceSheet(in BalanceSheetInput) domain.BalanceSheet {
	totalAssets := in.Cash.Add(in.Bank).Add(in.Receivables).Add(in.StockValue).Add(in.OfficeAssetsValue)
	return domain.BalanceSheet{
		AsOf:         in.AsOf,
		Cash:         in.Cash,
		Bank:         in.Bank,
		Receivables:  in.Receivables,
		StockValue:   in.StockValue,
		OfficeAssets: in.OfficeAssetsValue,
		TotalAssets:  totalAssets,
		Payables:     in.Payables,
		Equity:       totalAssets.Sub(in.Payables),
	}
}

// BuildBalanceSheet derives every input of the balance sheet from s.
func (r Reconciler) BuildBalanceSheet(s domain.Snapshot) (domain.BalanceSheet, error) {
	cash, err := r.ComputeCashAndBank(s)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	receivables, err := ComputeOutstandingAsOf(s.Transactions, domain.Receivable, s.AsOf)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	payables, err := ComputeOutstandingAsOf(s.Transactions, domain.Payable, s.AsOf)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	stock, err := ComputeStockValue(s.Books)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	return ComputeBalanceSheet(BalanceSheetInput{
		AsOf:              s.AsOf,
		Cash:              cash.Cash,
		Bank:              cash.Bank,
		Receivables:       receivables.PendingAmount,
		StockValue:        stock,
		OfficeAssetsValue: s.Settings.OfficeAssetsValue,
		Payables:          payables.PendingAmount,
	}), nil
}
