package repositories

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
)

// ExpenseRepositoryFacade defines persistence operations for expenses.
type ExpenseRepositoryFacade interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	ListExpenses(ctx context.Context, ownerID string, page Page) ([]domain.Expense, *string, error)
}

// DonationRepositoryFacade defines persistence operations for donations.
type DonationRepositoryFacade interface {
	SaveDonation(ctx context.Context, donation domain.Donation) error
	ListDonations(ctx context.Context, ownerID string, page Page) ([]domain.Donation, *string, error)
}
