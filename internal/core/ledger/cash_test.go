package ledger_test

import (
	"testing"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func opening(cash, bank int64) domain.Settings {
	return domain.Settings{Opening: domain.OpeningBalances{Cash: dec(cash), Bank: dec(bank)}}
}

func TestComputeCashAndBank_Movements(t *testing.T) {
	s := domain.Snapshot{
		Settings: opening(1000, 5000),
		Sales: []domain.Sale{
			sale("S1", "", domain.PaymentCash, day(2025, 3, 1), "B1", 2, 100),
			sale("S2", "", domain.PaymentBank, day(2025, 3, 2), "B1", 1, 300),
			sale("S3", "C1", domain.PaymentDue, day(2025, 3, 3), "B1", 1, 400),
		},
		Transactions: []domain.Transaction{
			{TransactionID: "P1", Type: domain.Payable, Amount: dec(250), Status: domain.StatusPaid, PaymentMethod: domain.PaymentBank},
			{TransactionID: "P2", Type: domain.Payable, Amount: dec(999), Status: domain.StatusPending},
		},
		Purchases: []domain.Purchase{
			{PurchaseID: "U1", Date: day(2025, 3, 4), PaymentMethod: domain.PaymentCash, Total: dec(150)},
			{PurchaseID: "U2", Date: day(2025, 3, 4), PaymentMethod: domain.PaymentDue, Total: dec(700)},
		},
		Expenses: []domain.Expense{
			{ExpenseID: "E1", Date: day(2025, 3, 5), Amount: dec(50), PaymentMethod: domain.PaymentCash},
			{ExpenseID: "E2", Date: day(2025, 3, 5), Amount: dec(80), PaymentMethod: domain.PaymentBank},
		},
		Donations: []domain.Donation{
			{DonationID: "D1", Date: day(2025, 3, 6), Amount: dec(75), PaymentMethod: domain.PaymentCash},
		},
	}

	got, err := ledger.ComputeCashAndBank(s)
	require.NoError(t, err)
	// cash: 1000 + 200 - 150 - 50 + 75
	assert.True(t, got.Cash.Equal(dec(1075)), "cash = %s", got.Cash)
	// bank: 5000 + 300 - 250 - 80
	assert.True(t, got.Bank.Equal(dec(4970)), "bank = %s", got.Bank)
	assert.Empty(t, got.ExcludedDuplicates)
}

func TestComputeCashAndBank_DuplicateCountedOnce(t *testing.T) {
	s := domain.Snapshot{
		Sales:        []domain.Sale{sale("S1", "C1", domain.PaymentCash, day(2025, 3, 1), "B1", 2, 900)},
		Transactions: []domain.Transaction{receivable("T1", "C1", "", 1800, domain.StatusPaid, domain.PaymentCash)},
	}

	pairs := ledger.FindDuplicateCashEvents(s.Sales, s.Transactions)
	require.Len(t, pairs, 1)

	got, err := ledger.ComputeCashAndBank(s)
	require.NoError(t, err)
	assert.True(t, got.Cash.Equal(dec(1800)), "cash = %s", got.Cash)
	require.Len(t, got.ExcludedDuplicates, 1)
	assert.Equal(t, "T1", got.ExcludedDuplicates[0].Transaction.TransactionID)
}

func TestComputeCashAndBank_DueSaleLifecycle(t *testing.T) {
	due := sale("S1", "C1", domain.PaymentDue, day(2025, 3, 1), "B1", 1, 500)
	pending := receivable("R1", "C1", "S1", 500, domain.StatusPending, "")
	pending.DueDate = day(2025, 4, 1)

	before := domain.Snapshot{Sales: []domain.Sale{due}, Transactions: []domain.Transaction{pending}}
	cashBefore, err := ledger.ComputeCashAndBank(before)
	require.NoError(t, err)
	assert.True(t, cashBefore.Total().IsZero())

	recBefore, err := ledger.ComputeReceivables(before.Transactions)
	require.NoError(t, err)
	assert.True(t, recBefore.PendingAmount.Equal(dec(500)))
	assert.Equal(t, 1, recBefore.PendingCount)

	paid := pending
	paid.Status = domain.StatusPaid
	paid.PaymentMethod = domain.PaymentCash
	paid.PaidAt = timePtr(day(2025, 3, 20))

	after := domain.Snapshot{Sales: []domain.Sale{due}, Transactions: []domain.Transaction{paid}}
	cashAfter, err := ledger.ComputeCashAndBank(after)
	require.NoError(t, err)
	assert.True(t, cashAfter.Cash.Equal(dec(500)), "cash = %s", cashAfter.Cash)
	assert.Empty(t, cashAfter.ExcludedDuplicates)

	recAfter, err := ledger.ComputeReceivables(after.Transactions)
	require.NoError(t, err)
	assert.True(t, recAfter.PendingAmount.IsZero())
	assert.Zero(t, recAfter.PendingCount)
}

func TestComputeCashAndBank_ReferenceDateAndAsOf(t *testing.T) {
	settings := opening(100, 0)
	settings.Opening.ReferenceDate = day(2025, 2, 1)
	s := domain.Snapshot{
		Settings: settings,
		AsOf:     day(2025, 3, 31),
		Sales: []domain.Sale{
			sale("old", "", domain.PaymentCash, day(2025, 1, 15), "B1", 1, 40),
			sale("in", "", domain.PaymentCash, day(2025, 2, 15), "B1", 1, 60),
			sale("future", "", domain.PaymentCash, day(2025, 4, 2), "B1", 1, 80),
		},
	}
	got, err := ledger.ComputeCashAndBank(s)
	require.NoError(t, err)
	assert.True(t, got.Cash.Equal(dec(160)), "cash = %s", got.Cash)
}

func TestComputeCashAndBank_DuplicateOfUncountedSaleStillCounts(t *testing.T) {
	paid := receivable("T1", "C1", "", 300, domain.StatusPaid, domain.PaymentCash)
	paid.PaidAt = timePtr(day(2025, 3, 20))
	s := domain.Snapshot{
		AsOf:         day(2025, 3, 31),
		Sales:        []domain.Sale{sale("S1", "C1", domain.PaymentCash, day(2025, 4, 2), "B1", 1, 300)},
		Transactions: []domain.Transaction{paid},
	}
	require.Len(t, ledger.FindDuplicateCashEvents(s.Sales, s.Transactions), 1)

	got, err := ledger.ComputeCashAndBank(s)
	require.NoError(t, err)
	assert.True(t, got.Cash.Equal(dec(300)), "cash = %s", got.Cash)
	assert.Empty(t, got.ExcludedDuplicates)
}

func TestComputeCashAndBank_DuplicateOfOpeningSaleExcluded(t *testing.T) {
	settings := opening(500, 0)
	settings.Opening.ReferenceDate = day(2025, 2, 1)
	paid := receivable("T1", "C1", "", 40, domain.StatusPaid, domain.PaymentCash)
	paid.PaidAt = timePtr(day(2025, 2, 10))
	s := domain.Snapshot{
		Settings:     settings,
		AsOf:         day(2025, 3, 31),
		Sales:        []domain.Sale{sale("S1", "C1", domain.PaymentCash, day(2025, 1, 15), "B1", 1, 40)},
		Transactions: []domain.Transaction{paid},
	}

	got, err := ledger.ComputeCashAndBank(s)
	require.NoError(t, err)
	assert.True(t, got.Cash.Equal(dec(500)), "cash = %s", got.Cash)
	require.Len(t, got.ExcludedDuplicates, 1)
}

func TestComputeCashAndBank_InvalidInput(t *testing.T) {
	bad := sale("S1", "", domain.PaymentCash, day(2025, 3, 1), "B1", 2, 100)
	bad.Total = dec(150)

	_, err := ledger.ComputeCashAndBank(domain.Snapshot{Sales: []domain.Sale{bad}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	noMethod := sale("S2", "", "", day(2025, 3, 1), "B1", 1, 100)
	_, err = ledger.ComputeCashAndBank(domain.Snapshot{Sales: []domain.Sale{noMethod}})
	assert.ErrorIs(t, err, ledger.ErrInvalidInput)
}

func TestComputeCashAndBank_OrderIndependent(t *testing.T) {
	methods := []domain.PaymentMethod{domain.PaymentCash, domain.PaymentBank, domain.PaymentDue}
	customers := []string{"C1", "C2", "C3"}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 25).Draw(t, "sales")
		sales := make([]domain.Sale, n)
		for i := range sales {
			sales[i] = sale(
				"S"+string(rune('a'+i)),
				rapid.SampledFrom(customers).Draw(t, "customer"),
				rapid.SampledFrom(methods).Draw(t, "method"),
				day(2025, 3, rapid.IntRange(1, 28).Draw(t, "day")),
				"B1",
				rapid.Int64Range(1, 5).Draw(t, "qty"),
				rapid.Int64Range(1, 1000).Draw(t, "price"),
			)
		}
		m := rapid.IntRange(0, 10).Draw(t, "payments")
		txns := make([]domain.Transaction, m)
		for i := range txns {
			txns[i] = receivable(
				"T"+string(rune('a'+i)),
				rapid.SampledFrom(customers).Draw(t, "payer"),
				"",
				rapid.Int64Range(1, 5000).Draw(t, "amount"),
				domain.StatusPaid,
				rapid.SampledFrom(methods[:2]).Draw(t, "payMethod"),
			)
		}

		base, err := ledger.ComputeCashAndBank(domain.Snapshot{Sales: sales, Transactions: txns})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		shuffled := rapid.Permutation(sales).Draw(t, "shuffledSales")
		shuffledTxns := rapid.Permutation(txns).Draw(t, "shuffledTxns")
		got, err := ledger.ComputeCashAndBank(domain.Snapshot{Sales: shuffled, Transactions: shuffledTxns})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !got.Cash.Equal(base.Cash) || !got.Bank.Equal(base.Bank) {
			t.Fatalf("order changed the result: %s/%s vs %s/%s", got.Cash, got.Bank, base.Cash, base.Bank)
		}
		if len(got.ExcludedDuplicates) != len(base.ExcludedDuplicates) {
			t.Fatalf("order changed the duplicates: %d vs %d", len(got.ExcludedDuplicates), len(base.ExcludedDuplicates))
		}
	})
}

func TestFiniteAmount(t *testing.T) {
	v, err := ledger.FiniteAmount("amount", 12.5)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.RequireFromString("12.5")))

	for _, f := range []float64{nan(), inf(1), inf(-1)} {
		_, err := ledger.FiniteAmount("amount", f)
		assert.ErrorIs(t, err, ledger.ErrInvalidInput)
	}
}
