package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/core/ledger"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

// customerService implements customer management. Due balances are never
// read from storage; they are summed from pending receivables on every read.
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, txnRepo: txnRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, ownerID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	now := s.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		OwnerID:    ownerID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if customer.Name == "" {
		return nil, validationError("customer name is required")
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, ownerID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if customer.Name == "" {
		return nil, validationError("customer name is required")
	}
	customer.LastUpdatedAt = s.Now()
	customer.LastUpdatedBy = userID

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}
	return s.withDueBalance(ctx, ownerID, *customer)
}

// GetCustomer returns the customer with the sum of their pending receivables.
func (s *customerService) GetCustomer(ctx context.Context, ownerID, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	return s.withDueBalance(ctx, ownerID, *customer)
}

// ListCustomers returns every customer of the owner with due balances.
func (s *customerService) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.String("owner_id", ownerID))
		return nil, err
	}
	receivables, err := s.pendingReceivables(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out, misses := ledger.WithDueBalances(customers, receivables)
	if len(misses) > 0 {
		ids := make([]string, 0, len(misses))
		for _, m := range misses {
			ids = append(ids, m.ID)
		}
		s.LogWarn(ctx, "Pending receivables reference missing customers; not shown in any due balance",
			slog.Int("count", len(misses)),
			slog.Any("customer_ids", ids))
	}
	return out, nil
}

func (s *customerService) withDueBalance(ctx context.Context, ownerID string, customer domain.Customer) (*domain.Customer, error) {
	receivables, err := s.pendingReceivables(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	// Other customers' receivables are not misses here.
	out, _ := ledger.WithDueBalances([]domain.Customer{customer}, receivables)
	return &out[0], nil
}

func (s *customerService) pendingReceivables(ctx context.Context, ownerID string) (domain.OutstandingSummary, error) {
	pending, err := s.txnRepo.ListPendingTransactions(ctx, ownerID, domain.Receivable)
	if err != nil {
		s.LogError(ctx, err, "Failed to load pending receivables", slog.String("owner_id", ownerID))
		return domain.OutstandingSummary{}, err
	}
	return ledger.ComputeReceivables(pending)
}
