package services

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// TransactionSvcFacade defines receivable and payable operations.
type TransactionSvcFacade interface {
	// CreateTransaction records a manual receivable or payable. A receivable
	// that references a sale is rejected: a CASH or BANK sale was already
	// collected, and a DUE sale opened its own receivable.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// SettleTransaction performs the single PENDING to PAID transition.
	SettleTransaction(ctx context.Context, ownerID, transactionID string, req dto.SettleTransactionRequest, userID string) (*domain.Transaction, error)
}

// SettingsSvcFacade defines the opening balance operations.
type SettingsSvcFacade interface {
	// GetSettings returns stored settings, or zero defaults when none exist yet.
	GetSettings(ctx context.Context, ownerID string) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, ownerID string, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error)
}
