package ledger

import (
	"sort"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeReceivables sums pending receivables, grouped by customer.
// A customer's due balance is always read from this result.
func ComputeReceivables(txns []domain.Transaction) (domain.OutstandingSummary, error) {
	return ComputeOutstandingAsOf(txns, domain.Receivable, time.Time{})
}

// ComputePayables sums pending payables, grouped by customer.
func ComputePayables(txns []domain.Transaction) (domain.OutstandingSummary, error) {
	return ComputeOutstandingAsOf(txns, domain.Payable, time.Time{})
}

// ComputeOutstandingAsOf sums the transactions of typ that were open at asOf:
// opened on or before asOf and not paid by then. A zero asOf reads the
// current status.
//
// A transaction opens at the earlier of its CreatedAt and DueDate; one with
// neither is always open. A paid transaction without PaidAt counts as paid on
// its DueDate.
func ComputeOutstandingAsOf(txns []domain.Transaction, typ domain.TransactionType, asOf time.Time) (domain.OutstandingSummary, error) {
	if err := validateTransactions(txns); err != nil {
		return domain.OutstandingSummary{}, err
	}
	summary := domain.OutstandingSummary{
		PendingAmount: decimal.Zero,
		ByCustomer:    make(map[string]decimal.Decimal),
	}
	for _, t := range txns {
		if t.Type != typ || !openAt(t, asOf) {
			continue
		}
		summary.PendingAmount = summary.PendingAmount.Add(t.Amount)
		summary.PendingCount++
		summary.ByCustomer[t.CustomerID] = summary.ByCustomer[t.CustomerID].Add(t.Amount)
	}
	return summary, nil
}

func openAt(t domain.Transaction, asOf time.Time) bool {
	if asOf.IsZero() {
		return t.Status == domain.StatusPending
	}
	if opened := openedAt(t); !opened.IsZero() && opened.After(asOf) {
		return false
	}
	if t.Status == domain.StatusPending {
		return true
	}
	paid := t.EffectiveDate()
	return !paid.IsZero() && paid.After(asOf)
}

func openedAt(t domain.Transaction) time.Time {
	switch {
	case t.CreatedAt.IsZero():
		return t.DueDate
	case t.DueDate.IsZero() || t.CreatedAt.Before(t.DueDate):
		return t.CreatedAt
	default:
		return t.DueDate
	}
}

// WithDueBalances returns copies of customers with DueBalance recomputed from
// receivables. Whatever DueBalance the input carried is discarded.
//
// Receivables owed by a customer id missing from customers are returned as
// LookupCustomer misses, ordered by id. Receivables without a customer are
// not misses.
func WithDueBalances(customers []domain.Customer, receivables domain.OutstandingSummary) ([]domain.Customer, []domain.LookupMiss) {
	out := make([]domain.Customer, len(customers))
	known := make(map[string]bool, len(customers))
	for i, c := range customers {
		c.DueBalance = receivables.ByCustomer[c.CustomerID]
		out[i] = c
		known[c.CustomerID] = true
	}

	var misses []domain.LookupMiss
	for id, amount := range receivables.ByCustomer {
		if id == "" || known[id] {
			continue
		}
		misses = append(misses, domain.LookupMiss{Kind: domain.LookupCustomer, ID: id, Revenue: amount})
	}
	sort.Slice(misses, func(i, j int) bool { return misses[i].ID < misses[j].ID })
	return out, misses
}
