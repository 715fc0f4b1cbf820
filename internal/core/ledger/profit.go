package ledger

import (
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeGrossProfit sums (item.price - book.productionPrice) * quantity over
// the items of sales dated in period. An item whose book is gone contributes
// zero and is reported in Misses; the rest of its sale still counts.
func ComputeGrossProfit(sales []domain.Sale, books []domain.Book, period domain.Period) (domain.GrossProfit, error) {
	if err := period.Validate(); err != nil {
		return domain.GrossProfit{}, invalid(err)
	}
	if err := validateSales(sales); err != nil {
		return domain.GrossProfit{}, err
	}
	if err := validateBooks(books); err != nil {
		return domain.GrossProfit{}, err
	}

	booksByID := make(map[string]domain.Book, len(books))
	for _, b := range books {
		booksByID[b.BookID] = b
	}

	gp := domain.GrossProfit{
		Period:      period,
		Revenue:     decimal.Zero,
		CostOfGoods: decimal.Zero,
		Amount:      decimal.Zero,
		Misses:      []domain.LookupMiss{},
	}
	for _, s := range sales {
		if !period.Contains(s.Date) {
			continue
		}
		for _, item := range s.Items {
			book, ok := booksByID[item.BookID]
			if !ok {
				gp.Misses = append(gp.Misses, domain.LookupMiss{
					Kind:     domain.LookupBook,
					ID:       item.BookID,
					SaleID:   s.SaleID,
					Quantity: item.Quantity,
					Revenue:  item.Subtotal(),
				})
				continue
			}
			qty := decimal.NewFromInt(item.Quantity)
			gp.Revenue = gp.Revenue.Add(item.Subtotal())
			gp.CostOfGoods = gp.CostOfGoods.Add(book.ProductionPrice.Mul(qty))
		}
	}
	gp.Amount = gp.Revenue.Sub(gp.CostOfGoods)
	return gp, nil
}

// ComputeNetProfit is gross profit minus the expenses dated in period.
// Donations are not part of it; see ComputeNetResult.
func ComputeNetProfit(grossProfit decimal.Decimal, expenses []domain.Expense, period domain.Period) (decimal.Decimal, error) {
	if err := period.Validate(); err != nil {
		return decimal.Zero, invalid(err)
	}
	if err := validateExpenses(expenses); err != nil {
		return decimal.Zero, err
	}
	return grossProfit.Sub(sumExpenses(expenses, period)), nil
}

// ComputeNetResult adds the donations dated in period back onto net profit.
func ComputeNetResult(netProfit decimal.Decimal, donations []domain.Donation, period domain.Period) (decimal.Decimal, error) {
	if err := period.Validate(); err != nil {
		return decimal.Zero, invalid(err)
	}
	if err := validateDonations(donations); err != nil {
		return decimal.Zero, err
	}
	return netProfit.Add(sumDonations(donations, period)), nil
}

// ComputeProfitReport chains gross profit, net profit and net result for period.
func ComputeProfitReport(s domain.Snapshot, period domain.Period) (domain.ProfitReport, error) {
	gross, err := ComputeGrossProfit(s.Sales, s.Books, period)
	if err != nil {
		return domain.ProfitReport{}, err
	}
	net, err := ComputeNetProfit(gross.Amount, s.Expenses, period)
	if err != nil {
		return domain.ProfitReport{}, err
	}
	result, err := ComputeNetResult(net, s.Donations, period)
	if err != nil {
		return domain.ProfitReport{}, err
	}
	return domain.ProfitReport{
		Period:    period,
		Gross:     gross,
		Expenses:  sumExpenses(s.Expenses, period),
		NetProfit: net,
		Donations: sumDonations(s.Donations, period),
		NetResult: result,
	}, nil
}

func sumExpenses(expenses []domain.Expense, period domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if period.Contains(e.Date) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func sumDonations(donations []domain.Donation, period domain.Period) decimal.Decimal {
	total := decimal.Zero
	for _, d := range donations {
		if period.Contains(d.Date) {
			total = total.Add(d.Amount)
		}
	}
	return total
}
