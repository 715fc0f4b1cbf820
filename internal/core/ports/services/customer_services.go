package services

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// CustomerSvcFacade defines customer operations. Every customer returned
// carries a DueBalance recomputed from pending receivables.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, ownerID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, ownerID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, ownerID, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)
}
