package services

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// SaleSvcFacade defines sale operations.
type SaleSvcFacade interface {
	// CreateSale records the sale and decrements stock. A DUE sale also opens
	// its pending receivable. All of it commits or none of it does.
	CreateSale(ctx context.Context, ownerID string, req dto.CreateSaleRequest, userID string) (*dto.CreateSaleResponse, error)
	GetSale(ctx context.Context, ownerID, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListSalesResponse, error)
}

// PurchaseSvcFacade defines purchase operations.
type PurchaseSvcFacade interface {
	// CreatePurchase records the purchase and increases stock. A DUE purchase
	// also opens its pending payable.
	CreatePurchase(ctx context.Context, ownerID string, req dto.CreatePurchaseRequest, userID string) (*dto.CreatePurchaseResponse, error)
	GetPurchase(ctx context.Context, ownerID, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListPurchasesResponse, error)
}

// ExpenseSvcFacade defines expense operations.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListExpensesResponse, error)
}

// DonationSvcFacade defines donation operations.
type DonationSvcFacade interface {
	CreateDonation(ctx context.Context, ownerID string, req dto.CreateDonationRequest, userID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListDonationsResponse, error)
}
