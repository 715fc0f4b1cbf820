package mapping

import (
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/models"
)

// ToDomainSale converts a model Sale and its item rows to a domain Sale.
func ToDomainSale(m models.Sale, items []models.SaleItem) (domain.Sale, error) {
	var d decimals
	s := domain.Sale{
		SaleID:        m.SaleID,
		OwnerID:       m.OwnerID,
		Date:          m.SaleDate,
		CustomerID:    NullableText(m.CustomerID),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Total:         d.get("sales.total", m.Total),
		Items:         make([]domain.SaleItem, 0, len(items)),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
	for _, it := range items {
		s.Items = append(s.Items, domain.SaleItem{
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Price:    d.get("sale_items.price", it.Price),
		})
	}
	return s, d.err
}

// ToDomainPurchase converts a model Purchase and its item rows to a domain Purchase.
func ToDomainPurchase(m models.Purchase, items []models.PurchaseItem) (domain.Purchase, error) {
	var d decimals
	p := domain.Purchase{
		PurchaseID:    m.PurchaseID,
		OwnerID:       m.OwnerID,
		Date:          m.PurchaseDate,
		Supplier:      m.Supplier,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Total:         d.get("purchases.total", m.Total),
		Items:         make([]domain.PurchaseItem, 0, len(items)),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
	for _, it := range items {
		p.Items = append(p.Items, domain.PurchaseItem{
			BookID:   it.BookID,
			Quantity: it.Quantity,
			UnitCost: d.get("purchase_items.unit_cost", it.UnitCost),
		})
	}
	return p, d.err
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) (domain.Expense, error) {
	var d decimals
	e := domain.Expense{
		ExpenseID:     m.ExpenseID,
		OwnerID:       m.OwnerID,
		Date:          m.ExpenseDate,
		Amount:        d.get("expenses.amount", m.Amount),
		Category:      m.Category,
		Description:   m.Description,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
	return e, d.err
}

// ToDomainDonation converts a model Donation to a domain Donation
func ToDomainDonation(m models.Donation) (domain.Donation, error) {
	var d decimals
	dn := domain.Donation{
		DonationID:    m.DonationID,
		OwnerID:       m.OwnerID,
		Date:          m.DonationDate,
		Amount:        d.get("donations.amount", m.Amount),
		Donor:         m.Donor,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
	return dn, d.err
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	var d decimals
	t := domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Type:          domain.TransactionType(m.TransactionType),
		Description:   m.Description,
		Amount:        d.get("transactions.amount", m.Amount),
		DueDate:       m.DueDate,
		Status:        domain.TransactionStatus(m.Status),
		CustomerID:    NullableText(m.CustomerID),
		SaleID:        NullableText(m.SaleID),
		PurchaseID:    NullableText(m.PurchaseID),
		PaymentMethod: domain.PaymentMethod(NullableText(m.PaymentMethod)),
		AuditFields:   domain.AuditFields(m.AuditFields),
	}
	if m.PaidAt.Valid {
		paidAt := m.PaidAt.Time
		t.PaidAt = &paidAt
	}
	return t, d.err
}

// ToDomainTransactionSlice converts model transactions, failing on the first bad row.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0, len(ms))
	for _, m := range ms {
		t, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}
