package models

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Sale is a row of the sales table; items are loaded separately.
type Sale struct {
	SaleID        string         `db:"sale_id"`
	OwnerID       string         `db:"owner_id"`
	SaleDate      time.Time      `db:"sale_date"`
	CustomerID    pgtype.Text    `db:"customer_id"`
	PaymentMethod string         `db:"payment_method"`
	Total         pgtype.Numeric `db:"total"`
	AuditFields
}

// SaleItem is a row of the sale_items table.
type SaleItem struct {
	SaleID   string         `db:"sale_id"`
	LineNo   int32          `db:"line_no"`
	BookID   string         `db:"book_id"`
	Quantity int64          `db:"quantity"`
	Price    pgtype.Numeric `db:"price"`
}

// Purchase is a row of the purchases table.
type Purchase struct {
	PurchaseID    string         `db:"purchase_id"`
	OwnerID       string         `db:"owner_id"`
	PurchaseDate  time.Time      `db:"purchase_date"`
	Supplier      string         `db:"supplier"`
	PaymentMethod string         `db:"payment_method"`
	Total         pgtype.Numeric `db:"total"`
	AuditFields
}

// PurchaseItem is a row of the purchase_items table.
type PurchaseItem struct {
	PurchaseID string         `db:"purchase_id"`
	LineNo     int32          `db:"line_no"`
	BookID     string         `db:"book_id"`
	Quantity   int64          `db:"quantity"`
	UnitCost   pgtype.Numeric `db:"unit_cost"`
}

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID     string         `db:"expense_id"`
	OwnerID       string         `db:"owner_id"`
	ExpenseDate   time.Time      `db:"expense_date"`
	Amount        pgtype.Numeric `db:"amount"`
	Category      string         `db:"category"`
	Description   string         `db:"description"`
	PaymentMethod string         `db:"payment_method"`
	AuditFields
}

// Donation is a row of the donations table.
type Donation struct {
	DonationID    string         `db:"donation_id"`
	OwnerID       string         `db:"owner_id"`
	DonationDate  time.Time      `db:"donation_date"`
	Amount        pgtype.Numeric `db:"amount"`
	Donor         string         `db:"donor"`
	PaymentMethod string         `db:"payment_method"`
	AuditFields
}

// Transaction is a row of the transactions table.
type Transaction struct {
	TransactionID   string             `db:"transaction_id"`
	OwnerID         string             `db:"owner_id"`
	TransactionType string             `db:"transaction_type"`
	Description     string             `db:"description"`
	Amount          pgtype.Numeric     `db:"amount"`
	DueDate         time.Time          `db:"due_date"`
	Status          string             `db:"status"`
	CustomerID      pgtype.Text        `db:"customer_id"`
	SaleID          pgtype.Text        `db:"sale_id"`
	PurchaseID      pgtype.Text        `db:"purchase_id"`
	PaymentMethod   pgtype.Text        `db:"payment_method"`
	PaidAt          pgtype.Timestamptz `db:"paid_at"`
	AuditFields
}
