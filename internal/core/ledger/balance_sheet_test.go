package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestComputeStockValue(t *testing.T) {
	v, err := ledger.ComputeStockValue([]domain.Book{book("B1", 3, 300, 200), book("B2", 0, 50, 10), book("B3", 2, 80, 35)})
	require.NoError(t, err)
	assert.True(t, v.Equal(dec(670)))

	_, err = ledger.ComputeStockValue([]domain.Book{book("B1", -1, 300, 200)})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestStockValue_SameOnDashboardAndBalanceSheet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(t, "books")
		books := make([]domain.Book, n)
		for i := range books {
			books[i] = domain.Book{
				BookID:          "B" + string(rune('a'+i)),
				Title:           "t",
				Stock:           rapid.Int64Range(0, 500).Draw(t, "stock"),
				Price:           decimal.New(rapid.Int64Range(0, 100000).Draw(t, "price"), -2),
				ProductionPrice: decimal.New(rapid.Int64Range(0, 100000).Draw(t, "cost"), -2),
			}
		}
		s := domain.Snapshot{Books: books, AsOf: day(2025, 3, 15)}

		dash, err := ledger.Reconciler{}.BuildDashboard(s, 1)
		if err != nil {
			t.Fatalf("dashboard: %v", err)
		}
		sheet, err := ledger.Reconciler{}.BuildBalanceSheet(s)
		if err != nil {
			t.Fatalf("balance sheet: %v", err)
		}
		if dash.StockValue.String() != sheet.StockValue.String() {
			t.Fatalf("stock value differs: %s vs %s", dash.StockValue, sheet.StockValue)
		}
	})
}

func TestComputeBalanceSheet_Identity(t *testing.T) {
	amount := func(t *rapid.T, label string) decimal.Decimal {
		return decimal.New(rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, label), -2)
	}
	rapid.Check(t, func(t *rapid.T) {
		sheet := ledger.ComputeBalanceSheet(ledger.BalanceSheetInput{
			Cash:              amount(t, "cash"),
			Bank:              amount(t, "bank"),
			Receivables:       amount(t, "receivables").Abs(),
			StockValue:        amount(t, "stock").Abs(),
			OfficeAssetsValue: amount(t, "office").Abs(),
			Payables:          amount(t, "payables").Abs(),
		})
		if !sheet.TotalAssets.Equal(sheet.Payables.Add(sheet.Equity)) {
			t.Fatalf("assets %s != payables %s + equity %s", sheet.TotalAssets, sheet.Payables, sheet.Equity)
		}
	})
}

func TestBuildBalanceSheet(t *testing.T) {
	settings := opening(1000, 2000)
	settings.OfficeAssetsValue = dec(500)
	s := domain.Snapshot{
		AsOf:     day(2025, 3, 31),
		Settings: settings,
		Books:    []domain.Book{book("B1", 4, 300, 200)},
		Sales: []domain.Sale{
			sale("S1", "C1", domain.PaymentDue, day(2025, 3, 2), "B1", 1, 300),
		},
		Transactions: []domain.Transaction{
			receivable("R1", "C1", "S1", 300, domain.StatusPending, ""),
			{TransactionID: "P1", Type: domain.Payable, Amount: dec(150), Status: domain.StatusPending, PurchaseID: "U1"},
		},
	}
	sheet, err := ledger.Reconciler{}.BuildBalanceSheet(s)
	require.NoError(t, err)
	assert.True(t, sheet.Cash.Equal(dec(1000)))
	assert.True(t, sheet.Receivables.Equal(dec(300)))
	assert.True(t, sheet.StockValue.Equal(dec(800)))
	// 1000 + 2000 + 300 + 800 + 500
	assert.True(t, sheet.TotalAssets.Equal(dec(4600)))
	assert.True(t, sheet.Equity.Equal(dec(4450)))
	assert.True(t, sheet.TotalAssets.Equal(sheet.Payables.Add(sheet.Equity)))
}

func TestComputeReceivables_ByCustomer(t *testing.T) {
	txns := []domain.Transaction{
		receivable("R1", "C1", "S1", 300, domain.StatusPending, ""),
		receivable("R2", "C1", "S2", 200, domain.StatusPending, ""),
		receivable("R3", "C2", "S3", 50, domain.StatusPending, ""),
		receivable("R4", "C2", "S4", 70, domain.StatusPaid, domain.PaymentCash),
		{TransactionID: "P1", Type: domain.Payable, Amount: dec(10), Status: domain.StatusPending},
	}
	sum, err := ledger.ComputeReceivables(txns)
	require.NoError(t, err)
	assert.True(t, sum.PendingAmount.Equal(dec(550)))
	assert.Equal(t, 3, sum.PendingCount)
	assert.True(t, sum.ByCustomer["C1"].Equal(dec(500)))
	assert.True(t, sum.ByCustomer["C2"].Equal(dec(50)))

	customers, misses := ledger.WithDueBalances([]domain.Customer{
		{CustomerID: "C1", DueBalance: dec(12345)},
		{CustomerID: "C3", DueBalance: dec(1)},
	}, sum)
	assert.True(t, customers[0].DueBalance.Equal(dec(500)))
	assert.True(t, customers[1].DueBalance.IsZero())
	require.Len(t, misses, 1)
	assert.Equal(t, domain.LookupCustomer, misses[0].Kind)
	assert.Equal(t, "C2", misses[0].ID)
	assert.True(t, misses[0].Revenue.Equal(dec(50)))

	pay, err := ledger.ComputePayables(txns)
	require.NoError(t, err)
	assert.True(t, pay.PendingAmount.Equal(dec(10)))
}

func TestBuildDashboard(t *testing.T) {
	s := domain.Snapshot{
		AsOf:  time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Books: []domain.Book{book("B1", 4, 300, 200)},
		Sales: []domain.Sale{sale("S1", "", domain.PaymentCash, day(2025, 3, 2), "B1", 1, 300)},
	}
	dash, err := ledger.Reconciler{}.BuildDashboard(s, 6)
	require.NoError(t, err)
	require.Len(t, dash.Trend, 6)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.October}, dash.Trend[0].Month)
	assert.Equal(t, domain.YearMonth{Year: 2025, Month: time.March}, dash.CurrentMonth.Month)
	assert.Equal(t, 1, dash.CurrentMonth.SalesCount)
	assert.True(t, dash.CashPosition.Cash.Equal(dec(300)))
	assert.Equal(t, 1, dash.BookCount)
}

func TestWithDueBalances_WalkInReceivableIsNotAMiss(t *testing.T) {
	sum, err := ledger.ComputeReceivables([]domain.Transaction{
		receivable("R1", "", "", 40, domain.StatusPending, ""),
		receivable("R2", "GONE", "", 60, domain.StatusPending, ""),
		receivable("R3", "ALSO-GONE", "", 10, domain.StatusPending, ""),
	})
	require.NoError(t, err)

	_, misses := ledger.WithDueBalances(nil, sum)

	require.Len(t, misses, 2)
	assert.Equal(t, "ALSO-GONE", misses[0].ID)
	assert.Equal(t, "GONE", misses[1].ID)
}

func TestBuildBalanceSheet_OutstandingAsOf(t *testing.T) {
	asOf := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	paidLater := receivable("R1", "C1", "S1", 500, domain.StatusPaid, domain.PaymentCash)
	paidLater.DueDate = day(2025, 1, 10)
	paidLater.PaidAt = timePtr(day(2025, 2, 15))
	openedLater := receivable("R2", "C2", "", 700, domain.StatusPending, "")
	openedLater.DueDate = day(2025, 3, 1)
	paidBefore := receivable("R3", "C1", "", 80, domain.StatusPaid, domain.PaymentBank)
	paidBefore.DueDate = day(2025, 1, 5)
	paidBefore.PaidAt = timePtr(day(2025, 1, 20))
	payable := domain.Transaction{
		TransactionID: "P1", Type: domain.Payable, Amount: dec(90), Status: domain.StatusPaid,
		DueDate: day(2025, 1, 12), PaidAt: timePtr(day(2025, 2, 2)), PaymentMethod: domain.PaymentCash,
	}
	payable.CreatedAt = day(2025, 1, 3)

	s := domain.Snapshot{
		AsOf:         asOf,
		Sales:        []domain.Sale{sale("S1", "C1", domain.PaymentDue, day(2025, 1, 10), "B1", 1, 500)},
		Transactions: []domain.Transaction{paidLater, openedLater, paidBefore, payable},
	}

	sheet, err := ledger.Reconciler{}.BuildBalanceSheet(s)
	require.NoError(t, err)
	assert.True(t, sheet.Cash.IsZero(), "cash %s", sheet.Cash)
	assert.True(t, sheet.Bank.Equal(dec(80)), "bank %s", sheet.Bank)
	assert.True(t, sheet.Receivables.Equal(dec(500)), "receivables %s", sheet.Receivables)
	assert.True(t, sheet.Payables.Equal(dec(90)), "payables %s", sheet.Payables)
	assert.True(t, sheet.TotalAssets.Equal(dec(580)))

	s.AsOf = time.Time{}
	now, err := ledger.Reconciler{}.BuildBalanceSheet(s)
	require.NoError(t, err)
	assert.True(t, now.Receivables.Equal(dec(700)))
	assert.True(t, now.Payables.IsZero())
}

func TestComputeOutstandingAsOf_CreatedAtBeforeDueDate(t *testing.T) {
	r := receivable("R1", "C1", "", 120, domain.StatusPending, "")
	r.CreatedAt = day(2025, 1, 5)
	r.DueDate = day(2025, 3, 1)

	sum, err := ledger.ComputeOutstandingAsOf([]domain.Transaction{r}, domain.Receivable, day(2025, 1, 31))
	require.NoError(t, err)
	assert.True(t, sum.PendingAmount.Equal(dec(120)))

	sum, err = ledger.ComputeOutstandingAsOf([]domain.Transaction{r}, domain.Receivable, day(2025, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 0, sum.PendingCount)
}
