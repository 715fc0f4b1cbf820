package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrossProfit_EmptySales(t *testing.T) {
	gp, err := ledger.ComputeGrossProfit(nil, nil, domain.MonthPeriod(2025, time.March))
	require.NoError(t, err)
	assert.True(t, gp.Amount.IsZero())
	assert.Empty(t, gp.Misses)
}

func TestComputeGrossProfit_CalendarMonth(t *testing.T) {
	books := []domain.Book{book("B1", 10, 300, 200), book("B2", 4, 120, 50)}
	sales := []domain.Sale{
		sale("S1", "", domain.PaymentCash, day(2025, 3, 1), "B1", 2, 300),
		sale("S2", "", domain.PaymentCash, time.Date(2025, 3, 31, 23, 59, 0, 0, time.UTC), "B2", 1, 120),
		sale("S3", "", domain.PaymentCash, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "B1", 5, 300),
		sale("S4", "", domain.PaymentCash, day(2025, 2, 28), "B1", 5, 300),
	}

	gp, err := ledger.ComputeGrossProfit(sales, books, domain.MonthPeriod(2025, time.March))
	require.NoError(t, err)
	// (300-200)*2 + (120-50)*1
	assert.True(t, gp.Amount.Equal(dec(270)), "gross = %s", gp.Amount)
	assert.True(t, gp.Revenue.Equal(dec(720)))
	assert.True(t, gp.CostOfGoods.Equal(dec(450)))
}

func TestComputeGrossProfit_DeletedBook(t *testing.T) {
	books := []domain.Book{book("B1", 10, 300, 200)}
	s := domain.Sale{
		SaleID:        "S1",
		Date:          day(2025, 3, 10),
		PaymentMethod: domain.PaymentCash,
		Items: []domain.SaleItem{
			{BookID: "B1", Quantity: 1, Price: dec(300)},
			{BookID: "gone", Quantity: 3, Price: dec(100)},
		},
		Total: dec(600),
	}

	gp, err := ledger.ComputeGrossProfit([]domain.Sale{s}, books, domain.MonthPeriod(2025, time.March))
	require.NoError(t, err)
	assert.True(t, gp.Amount.Equal(dec(100)), "gross = %s", gp.Amount)
	require.Len(t, gp.Misses, 1)
	assert.Equal(t, domain.LookupBook, gp.Misses[0].Kind)
	assert.Equal(t, "gone", gp.Misses[0].ID)
	assert.Equal(t, "S1", gp.Misses[0].SaleID)
	assert.True(t, gp.Misses[0].Revenue.Equal(dec(300)))
}

func TestComputeGrossProfit_InvalidPeriod(t *testing.T) {
	p := domain.Period{From: domain.YearMonth{Year: 2025, Month: time.May}, To: domain.YearMonth{Year: 2025, Month: time.March}}
	_, err := ledger.ComputeGrossProfit(nil, nil, p)
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestNetProfitAndNetResult(t *testing.T) {
	march := domain.MonthPeriod(2025, time.March)
	expenses := []domain.Expense{
		{ExpenseID: "E1", Date: day(2025, 3, 2), Amount: dec(40), PaymentMethod: domain.PaymentCash, Category: "rent"},
		{ExpenseID: "E2", Date: day(2025, 4, 2), Amount: dec(999), PaymentMethod: domain.PaymentCash},
	}
	donations := []domain.Donation{
		{DonationID: "D1", Date: day(2025, 3, 9), Amount: dec(25), PaymentMethod: domain.PaymentBank},
	}

	net, err := ledger.ComputeNetProfit(dec(270), expenses, march)
	require.NoError(t, err)
	assert.True(t, net.Equal(dec(230)))

	result, err := ledger.ComputeNetResult(net, donations, march)
	require.NoError(t, err)
	assert.True(t, result.Equal(dec(255)))

	report, err := ledger.ComputeProfitReport(domain.Snapshot{
		Books:     []domain.Book{book("B1", 10, 300, 200), book("B2", 4, 120, 50)},
		Sales:     []domain.Sale{sale("S1", "", domain.PaymentCash, day(2025, 3, 1), "B1", 2, 300), sale("S2", "", domain.PaymentCash, day(2025, 3, 3), "B2", 1, 120)},
		Expenses:  expenses,
		Donations: donations,
	}, march)
	require.NoError(t, err)
	assert.True(t, report.NetProfit.Equal(dec(230)))
	assert.True(t, report.NetResult.Equal(dec(255)))
	assert.True(t, report.Donations.Equal(dec(25)))
	assert.False(t, report.NetProfit.Equal(report.NetResult))
}

func TestComputeTrend(t *testing.T) {
	s := domain.Snapshot{
		Books: []domain.Book{book("B1", 10, 300, 200)},
		Sales: []domain.Sale{
			sale("S1", "", domain.PaymentCash, day(2025, 1, 5), "B1", 1, 300),
			sale("S2", "", domain.PaymentCash, day(2025, 3, 5), "B1", 2, 300),
		},
	}
	trend, err := ledger.ComputeTrend(s, domain.Period{
		From: domain.YearMonth{Year: 2024, Month: time.December},
		To:   domain.YearMonth{Year: 2025, Month: time.March},
	})
	require.NoError(t, err)
	require.Len(t, trend, 4)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.December}, trend[0].Month)
	assert.Equal(t, 1, trend[1].SalesCount)
	assert.Equal(t, 0, trend[2].SalesCount)
	assert.Equal(t, int64(2), trend[3].ItemsSold)
	assert.True(t, trend[3].GrossProfit.Equal(dec(200)))
}
