package repositories

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
// DueBalance is never stored; callers recompute it from receivables.
type CustomerRepositoryFacade interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	FindCustomerByID(ctx context.Context, ownerID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)
}
