package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

// transactionService manages manually entered receivables and payables and
// their settlement.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	saleRepo     portsrepo.SaleRepositoryWithTx
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	saleRepo portsrepo.SaleRepositoryWithTx,
	purchaseRepo portsrepo.PurchaseRepositoryWithTx,
	customerRepo portsrepo.CustomerRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a manual receivable or payable.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Amount == nil {
		return nil, validationError("amount is required")
	}
	now := s.Now()

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Type:          req.Type,
		Description:   req.Description,
		Amount:        *req.Amount,
		Status:        status,
		CustomerID:    req.CustomerID,
		SaleID:        req.SaleID,
		PurchaseID:    req.PurchaseID,
		PaymentMethod: req.PaymentMethod,
		DueDate:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.DueDate != nil {
		txn.DueDate = *req.DueDate
	}

	switch status {
	case domain.StatusPaid:
		if !txn.PaymentMethod.Settled() {
			return nil, validationError("a paid transaction needs a CASH or BANK payment method")
		}
		paidAt := now
		if req.PaidAt != nil {
			paidAt = *req.PaidAt
		}
		txn.PaidAt = &paidAt
	case domain.StatusPending:
		if txn.PaymentMethod != "" || req.PaidAt != nil {
			return nil, validationError("a pending transaction has no payment yet; settle it instead")
		}
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if txn.CustomerID != "" {
		if err := requireCustomer(ctx, s.customerRepo, ownerID, txn.CustomerID); err != nil {
			return nil, err
		}
	}
	if err := s.guardLinkedRecord(ctx, ownerID, txn); err != nil {
		s.LogWarn(ctx, "Rejected transaction referencing a recorded sale or purchase",
			slog.String("type", string(txn.Type)),
			slog.String("sale_id", txn.SaleID),
			slog.String("purchase_id", txn.PurchaseID),
			slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("owner_id", ownerID))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("status", string(txn.Status)))
	return &txn, nil
}

// guardLinkedRecord rejects a manual transaction that points at a sale or a
// purchase. A CASH or BANK record was already paid at record time; a DUE
// record already opened its own transaction.
func (s *transactionService) guardLinkedRecord(ctx context.Context, ownerID string, txn domain.Transaction) error {
	if txn.SaleID != "" {
		sale, err := s.saleRepo.FindSaleByID(ctx, ownerID, txn.SaleID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return validationError("sale %s does not exist", txn.SaleID)
			}
			return err
		}
		if sale.PaymentMethod.Settled() {
			return fmt.Errorf("%w: sale %s was paid by %s at sale time", apperrors.ErrDuplicate, sale.SaleID, sale.PaymentMethod)
		}
		return fmt.Errorf("%w: due sale %s already has its receivable", apperrors.ErrDuplicate, sale.SaleID)
	}
	if txn.PurchaseID != "" {
		purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, ownerID, txn.PurchaseID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return validationError("purchase %s does not exist", txn.PurchaseID)
			}
			return err
		}
		if purchase.PaymentMethod.Settled() {
			return fmt.Errorf("%w: purchase %s was paid by %s", apperrors.ErrDuplicate, purchase.PurchaseID, purchase.PaymentMethod)
		}
		return fmt.Errorf("%w: due purchase %s already has its payable", apperrors.ErrDuplicate, purchase.PurchaseID)
	}
	return nil
}

func (s *transactionService) GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := portsrepo.TransactionFilter{Type: params.Type, Status: params.Status, CustomerID: params.CustomerID}
	txns, next, err := s.txnRepo.ListTransactions(ctx, ownerID, filter, params.Page())
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{Transactions: txns, NextToken: next}, nil
}

// SettleTransaction marks a pending transaction paid. Collecting a due sale
// is this transition on the sale's receivable; it is never a new record.
func (s *transactionService) SettleTransaction(ctx context.Context, ownerID, transactionID string, req dto.SettleTransactionRequest, userID string) (*domain.Transaction, error) {
	if !req.PaymentMethod.Settled() {
		return nil, validationError("payment method must be CASH or BANK")
	}
	paidAt := s.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	txn, err := s.txnRepo.SettleTransaction(ctx, ownerID, transactionID, req.PaymentMethod, paidAt, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Transaction already settled", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Transaction settled",
		slog.String("transaction_id", transactionID),
		slog.String("payment_method", string(req.PaymentMethod)),
		slog.String("amount", txn.Amount.String()))
	return txn, nil
}
