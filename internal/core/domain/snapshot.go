package domain

import "time"

// Snapshot holds every record collection of one owner, read at approximately
// the same instant. AsOf bounds the records considered by cash computations;
// the zero value means no bound.
type Snapshot struct {
	OwnerID      string
	AsOf         time.Time
	Books        []Book
	Customers    []Customer
	Sales        []Sale
	Purchases    []Purchase
	Expenses     []Expense
	Donations    []Donation
	Transactions []Transaction
	Settings     Settings
}
