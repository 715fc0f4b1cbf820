package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date          *time.Time           `json:"date"`
	Amount        *decimal.Decimal     `json:"amount" binding:"required"`
	Category      string               `json:"category" binding:"required"`
	Description   string               `json:"description"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,settledmethod"`
}

// ToDomain builds the expense record; the method defaults to CASH.
func (r CreateExpenseRequest) ToDomain(id, ownerID string, now time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID:     id,
		OwnerID:       ownerID,
		Date:          dateOrNow(r.Date, now),
		Amount:        *r.Amount,
		Category:      r.Category,
		Description:   r.Description,
		PaymentMethod: methodOrCash(r.PaymentMethod),
	}
}

// CreateDonationRequest defines the data needed to record a donation received.
type CreateDonationRequest struct {
	Date          *time.Time           `json:"date"`
	Amount        *decimal.Decimal     `json:"amount" binding:"required"`
	Donor         string               `json:"donor"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,settledmethod"`
}

// ToDomain builds the donation record; the method defaults to CASH.
func (r CreateDonationRequest) ToDomain(id, ownerID string, now time.Time) domain.Donation {
	return domain.Donation{
		DonationID:    id,
		OwnerID:       ownerID,
		Date:          dateOrNow(r.Date, now),
		Amount:        *r.Amount,
		Donor:         r.Donor,
		PaymentMethod: methodOrCash(r.PaymentMethod),
	}
}

// ListExpensesResponse is one page of expenses.
type ListExpensesResponse struct {
	Expenses  []domain.Expense `json:"expenses"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ListDonationsResponse is one page of donations.
type ListDonationsResponse struct {
	Donations []domain.Donation `json:"donations"`
	NextToken *string           `json:"nextToken,omitempty"`
}
