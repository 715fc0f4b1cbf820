package ledger

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeCashAndBank uses a Reconciler without a date window.
func ComputeCashAndBank(s domain.Snapshot) (domain.CashPosition, error) {
	return Reconciler{}.ComputeCashAndBank(s)
}

// ComputeCashAndBank derives the cash and bank balances from the opening
// balances and every money movement dated from the reference date up to AsOf.
//
// Cash/bank sales count at sale time, DUE sales count only when their
// receivable is paid. Paid receivables that duplicate a cash/bank sale are
// left out and returned in ExcludedDuplicates.
func (r Reconciler) ComputeCashAndBank(s domain.Snapshot) (domain.CashPosition, error) {
	if err := validateSales(s.Sales); err != nil {
		return domain.CashPosition{}, err
	}
	if err := validateTransactions(s.Transactions); err != nil {
		return domain.CashPosition{}, err
	}
	if err := validatePurchases(s.Purchases); err != nil {
		return domain.CashPosition{}, err
	}
	if err := validateExpenses(s.Expenses); err != nil {
		return domain.CashPosition{}, err
	}
	if err := validateDonations(s.Donations); err != nil {
		return domain.CashPosition{}, err
	}

	w := window{from: s.Settings.Opening.ReferenceDate, to: s.AsOf}
	b := buckets{cash: s.Settings.Opening.Cash, bank: s.Settings.Opening.Bank}

	for _, sale := range s.Sales {
		if w.contains(sale.Date) {
			b.add(sale.PaymentMethod, sale.Total)
		}
	}

	// A payment is only a duplicate of money already counted: its sale lies in
	// the window or before it, inside the opening figures. A sale after AsOf
	// has not happened yet, so its paired payment still counts.
	excluded := make(map[string]bool)
	reported := make([]domain.DuplicateCashEvent, 0)
	for _, d := range r.FindDuplicateCashEvents(s.Sales, s.Transactions) {
		if !w.contains(d.Transaction.EffectiveDate()) || w.after(d.Sale.Date) {
			continue
		}
		excluded[d.Transaction.TransactionID] = true
		reported = append(reported, d)
	}
	for _, t := range s.Transactions {
		if t.Status != domain.StatusPaid || !t.PaymentMethod.Settled() || !w.contains(t.EffectiveDate()) {
			continue
		}
		switch t.Type {
		case domain.Receivable:
			if !excluded[t.TransactionID] {
				b.add(t.PaymentMethod, t.Amount)
			}
		case domain.Payable:
			b.add(t.PaymentMethod, t.Amount.Neg())
		}
	}

	for _, p := range s.Purchases {
		if w.contains(p.Date) {
			b.add(p.PaymentMethod, p.Total.Neg())
		}
	}
	for _, e := range s.Expenses {
		if w.contains(e.Date) {
			b.add(e.PaymentMethod, e.Amount.Neg())
		}
	}
	for _, d := range s.Donations {
		if w.contains(d.Date) {
			b.add(d.PaymentMethod, d.Amount)
		}
	}

	return domain.CashPosition{Cash: b.cash, Bank: b.bank, ExcludedDuplicates: reported}, nil
}

type buckets struct {
	cash decimal.Decimal
	bank decimal.Decimal
}

// add credits amount to the bucket of m. DUE moves no money.
func (b *buckets) add(m domain.PaymentMethod, amount decimal.Decimal) {
	switch m {
	case domain.PaymentCash:
		b.cash = b.cash.Add(amount)
	case domain.PaymentBank:
		b.bank = b.bank.Add(amount)
	}
}

// window bounds record dates: from is inclusive, to is inclusive, zero is open.
// An undated record is always inside.
type window struct {
	from time.Time
	to   time.Time
}

// after reports whether t is a dated record later than the window end.
func (w window) after(t time.Time) bool {
	return !t.IsZero() && !w.to.IsZero() && t.After(w.to)
}

func (w window) contains(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	if !w.from.IsZero() && t.Before(w.from) {
		return false
	}
	if !w.to.IsZero() && t.After(w.to) {
		return false
	}
	return true
}
