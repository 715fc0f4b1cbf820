package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows a transaction listing. Empty fields match all.
type TransactionFilter struct {
	Type       domain.TransactionType
	Status     domain.TransactionStatus
	CustomerID string
}

// TransactionReader defines read operations for receivables and payables
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// FindTransactionsBySaleID returns every transaction referencing the sale.
	FindTransactionsBySaleID(ctx context.Context, ownerID, saleID string) ([]domain.Transaction, error)

	ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter, page Page) ([]domain.Transaction, *string, error)

	// ListPendingTransactions returns every pending transaction of the given type.
	ListPendingTransactions(ctx context.Context, ownerID string, typ domain.TransactionType) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for receivables and payables
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// SettleTransaction moves a pending transaction to PAID. It fails with
	// apperrors.ErrConflict when the transaction is already paid.
	SettleTransaction(ctx context.Context, ownerID, transactionID string, method domain.PaymentMethod, paidAt time.Time, userID string) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
