package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if req.Amount == nil {
		return nil, validationError("amount is required")
	}
	now := s.Now()
	expense := req.ToDomain(uuid.NewString(), ownerID, now)
	expense.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	if err := expense.Validate(); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListExpensesResponse, error) {
	expenses, next, err := s.expenseRepo.ListExpenses(ctx, ownerID, params.Page())
	if err != nil {
		return nil, err
	}
	return &dto.ListExpensesResponse{Expenses: expenses, NextToken: next}, nil
}

type donationService struct {
	BaseService
	donationRepo portsrepo.DonationRepositoryFacade
}

// NewDonationService creates a new DonationService.
func NewDonationService(repo portsrepo.DonationRepositoryFacade) portssvc.DonationSvcFacade {
	return &donationService{donationRepo: repo}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

func (s *donationService) CreateDonation(ctx context.Context, ownerID string, req dto.CreateDonationRequest, userID string) (*domain.Donation, error) {
	if req.Amount == nil {
		return nil, validationError("amount is required")
	}
	now := s.Now()
	donation := req.ToDomain(uuid.NewString(), ownerID, now)
	donation.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}
	if err := donation.Validate(); err != nil {
		return nil, err
	}
	if err := s.donationRepo.SaveDonation(ctx, donation); err != nil {
		s.LogError(ctx, err, "Failed to save donation", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &donation, nil
}

func (s *donationService) ListDonations(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListDonationsResponse, error) {
	donations, next, err := s.donationRepo.ListDonations(ctx, ownerID, params.Page())
	if err != nil {
		return nil, err
	}
	return &dto.ListDonationsResponse{Donations: donations, NextToken: next}, nil
}
