package repositories

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	// FindSaleByID retrieves a sale with its items.
	FindSaleByID(ctx context.Context, ownerID, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sales, newest first, with their items.
	ListSales(ctx context.Context, ownerID string, page Page) ([]domain.Sale, *string, error)
}

// SaleWriter defines write operations for sales. Sales are written together
// with stock changes and receivables, so only the in-transaction form exists.
type SaleWriter interface {
	SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error
}

// SaleRepositoryWithTx combines sale operations with transaction management.
type SaleRepositoryWithTx interface {
	SaleReader
	SaleWriter
	TransactionManager
}

// PurchaseRepositoryWithTx defines persistence operations for purchases.
type PurchaseRepositoryWithTx interface {
	SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error
	FindPurchaseByID(ctx context.Context, ownerID, purchaseID string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, ownerID string, page Page) ([]domain.Purchase, *string, error)
	TransactionManager
}
