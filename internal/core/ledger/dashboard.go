package ledger

import (
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeMonthlyStats gathers the dashboard figures of one month.
func ComputeMonthlyStats(s domain.Snapshot, month domain.YearMonth) (domain.MonthlyStats, error) {
	period := domain.Period{From: month, To: month}
	report, err := ComputeProfitReport(s, period)
	if err != nil {
		return domain.MonthlyStats{}, err
	}
	if err := validatePurchases(s.Purchases); err != nil {
		return domain.MonthlyStats{}, err
	}

	stats := domain.MonthlyStats{
		Month:        month,
		SalesTotal:   decimal.Zero,
		Purchases:    decimal.Zero,
		GrossProfit:  report.Gross.Amount,
		Expenses:     report.Expenses,
		NetProfit:    report.NetProfit,
		Donations:    report.Donations,
		NetResult:    report.NetResult,
		LookupMisses: len(report.Gross.Misses),
	}
	for _, sale := range s.Sales {
		if !period.Contains(sale.Date) {
			continue
		}
		stats.SalesCount++
		stats.SalesTotal = stats.SalesTotal.Add(sale.Total)
		for _, item := range sale.Items {
			stats.ItemsSold += item.Quantity
		}
	}
	for _, p := range s.Purchases {
		if period.Contains(p.Date) {
			stats.Purchases = stats.Purchases.Add(p.Total)
		}
	}
	return stats, nil
}

// ComputeTrend returns the monthly stats of every month of period, in order.
func ComputeTrend(s domain.Snapshot, period domain.Period) ([]domain.MonthlyStats, error) {
	if err := period.Validate(); err != nil {
		return nil, invalid(err)
	}
	months := period.Months()
	trend := make([]domain.MonthlyStats, 0, len(months))
	for _, ym := range months {
		stats, err := ComputeMonthlyStats(s, ym)
		if err != nil {
			return nil, err
		}
		trend = append(trend, stats)
	}
	return trend, nil
}

// BuildDashboard computes the landing view for the month containing s.AsOf.
// trendMonths is the number of months, ending with the current one, in Trend.
func (r Reconciler) BuildDashboard(s domain.Snapshot, trendMonths int) (domain.Dashboard, error) {
	cash, err := r.ComputeCashAndBank(s)
	if err != nil {
		return domain.Dashboard{}, err
	}
	receivables, err := ComputeOutstandingAsOf(s.Transactions, domain.Receivable, s.AsOf)
	if err != nil {
		return domain.Dashboard{}, err
	}
	payables, err := ComputeOutstandingAsOf(s.Transactions, domain.Payable, s.AsOf)
	if err != nil {
		return domain.Dashboard{}, err
	}
	stock, err := ComputeStockValue(s.Books)
	if err != nil {
		return domain.Dashboard{}, err
	}

	current := domain.YearMonthOf(s.AsOf)
	if trendMonths < 1 {
		trendMonths = 1
	}
	from := current
	for i := 1; i < trendMonths; i++ {
		from = from.Prev()
	}
	trend, err := ComputeTrend(s, domain.Period{From: from, To: current})
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		AsOf:         s.AsOf,
		CashPosition: cash,
		Receivables:  receivables,
		Payables:     payables,
		StockValue:   stock,
		BookCount:    len(s.Books),
		CurrentMonth: trend[len(trend)-1],
		Trend:        trend,
	}, nil
}
