package ledger

import (
	"sort"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reconciler matches customer payments against sales that already carried
// the same money.
type Reconciler struct {
	// Window is the largest distance between the sale date and the payment
	// date for an unlinked pair to match. Zero matches any dates.
	Window time.Duration
}

// FindDuplicateCashEvents uses a Reconciler without a date window.
func FindDuplicateCashEvents(sales []domain.Sale, txns []domain.Transaction) []domain.DuplicateCashEvent {
	return Reconciler{}.FindDuplicateCashEvents(sales, txns)
}

// FindDuplicateCashEvents pairs every paid customer payment that repeats a
// cash/bank sale:
//   - a payment whose saleId points at a DUE sale is a legitimate collection;
//   - a payment whose saleId points at a cash/bank sale is always a duplicate;
//   - an unlinked payment is a duplicate of a cash/bank sale of the same
//     customer and amount (within Window).
//
// An unlinked payment consumes the sale it matched, so each sale pairs with at
// most one unlinked payment. Pairs are returned
// ordered by sale id then transaction id, whatever the input order.
func (r Reconciler) FindDuplicateCashEvents(sales []domain.Sale, txns []domain.Transaction) []domain.DuplicateCashEvent {
	salesByID := make(map[string]domain.Sale, len(sales))
	for _, s := range sales {
		salesByID[s.SaleID] = s
	}

	payments := make([]domain.Transaction, 0)
	for _, t := range txns {
		if t.IsCustomerPayment() {
			payments = append(payments, t)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		return lessByDateID(payments[i].EffectiveDate(), payments[i].TransactionID, payments[j].EffectiveDate(), payments[j].TransactionID)
	})

	usedSales := make(map[string]bool)
	var pairs []domain.DuplicateCashEvent
	unlinked := make([]domain.Transaction, 0, len(payments))

	for _, t := range payments {
		if t.SaleID == "" {
			unlinked = append(unlinked, t)
			continue
		}
		sale, ok := salesByID[t.SaleID]
		if !ok {
			// dangling link, fall back to matching by customer and amount
			unlinked = append(unlinked, t)
			continue
		}
		if sale.PaymentMethod.Settled() {
			usedSales[sale.SaleID] = true
			pairs = append(pairs, domain.DuplicateCashEvent{Sale: sale, Transaction: t, Linked: true})
		}
	}

	candidates := make([]domain.Sale, 0)
	for _, s := range sales {
		if s.PaymentMethod.Settled() && s.CustomerID != "" {
			candidates = append(candidates, s)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return lessByDateID(candidates[i].Date, candidates[i].SaleID, candidates[j].Date, candidates[j].SaleID)
	})

	for _, t := range unlinked {
		best := -1
		var bestGap time.Duration
		for i, s := range candidates {
			if usedSales[s.SaleID] || s.CustomerID != t.CustomerID || !s.Total.Equal(t.Amount) {
				continue
			}
			gap, ok := r.gap(s.Date, t.EffectiveDate())
			if !ok {
				continue
			}
			if best == -1 || gap < bestGap {
				best, bestGap = i, gap
			}
		}
		if best >= 0 {
			usedSales[candidates[best].SaleID] = true
			pairs = append(pairs, domain.DuplicateCashEvent{Sale: candidates[best], Transaction: t})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Sale.SaleID != pairs[j].Sale.SaleID {
			return pairs[i].Sale.SaleID < pairs[j].Sale.SaleID
		}
		return pairs[i].Transaction.TransactionID < pairs[j].Transaction.TransactionID
	})
	return pairs
}

// gap returns the absolute distance between two dates and whether it fits the
// window. Unknown dates fit any window.
func (r Reconciler) gap(a, b time.Time) (time.Duration, bool) {
	if a.IsZero() || b.IsZero() {
		return 0, true
	}
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	if r.Window > 0 && d > r.Window {
		return d, false
	}
	return d, true
}

func lessByDateID(ad time.Time, aid string, bd time.Time, bid string) bool {
	if !ad.Equal(bd) {
		return ad.Before(bd)
	}
	return aid < bid
}

// BuildDuplicateAudit totals the money the pairs would count twice.
func BuildDuplicateAudit(pairs []domain.DuplicateCashEvent) domain.DuplicateAudit {
	audit := domain.DuplicateAudit{Pairs: pairs, Amount: decimal.Zero}
	if audit.Pairs == nil {
		audit.Pairs = []domain.DuplicateCashEvent{}
	}
	for _, p := range pairs {
		audit.Amount = audit.Amount.Add(p.Transaction.Amount)
	}
	return audit
}
