package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

// purchaseService records restocking. Stock increases and, for a DUE
// purchase, the payable are written with the purchase.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryWithTx
	bookRepo     portsrepo.BookRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryWithTx, bookRepo portsrepo.BookRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, bookRepo: bookRepo, txnRepo: txnRepo}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func (s *purchaseService) CreatePurchase(ctx context.Context, ownerID string, req dto.CreatePurchaseRequest, userID string) (*dto.CreatePurchaseResponse, error) {
	now := s.Now()
	method := req.Method()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: userID, LastUpdatedAt: now, LastUpdatedBy: userID}

	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		OwnerID:       ownerID,
		Date:          req.PurchaseDate(now),
		Supplier:      req.Supplier,
		PaymentMethod: method,
		Items:         make([]domain.PurchaseItem, 0, len(req.Items)),
		AuditFields:   audit,
	}
	stockChanges := make(map[string]int64, len(req.Items))
	for _, item := range req.Items {
		if item.UnitCost == nil {
			return nil, validationError("unitCost is required for book %s", item.BookID)
		}
		purchase.Items = append(purchase.Items, domain.PurchaseItem{BookID: item.BookID, Quantity: item.Quantity, UnitCost: *item.UnitCost})
		stockChanges[item.BookID] += item.Quantity
	}
	purchase.Total = purchase.ItemsTotal()
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	var payable *domain.Transaction
	if method == domain.PaymentDue {
		if !purchase.Total.IsPositive() {
			return nil, validationError("a due purchase must have a positive total")
		}
		dueDate := purchase.Date
		if req.DueDate != nil {
			dueDate = *req.DueDate
		}
		payable = &domain.Transaction{
			TransactionID: uuid.NewString(),
			OwnerID:       ownerID,
			Type:          domain.Payable,
			Description:   fmt.Sprintf("Due to %s for purchase %s", supplierName(purchase.Supplier), purchase.PurchaseID),
			Amount:        purchase.Total,
			DueDate:       dueDate,
			Status:        domain.StatusPending,
			PurchaseID:    purchase.PurchaseID,
			AuditFields:   audit,
		}
	}

	tx, err := s.purchaseRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.purchaseRepo.Rollback(ctx, tx)

	if err := s.bookRepo.AdjustStockInTx(ctx, tx, ownerID, stockChanges, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to increase stock", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}
	if err := s.purchaseRepo.SavePurchaseInTx(ctx, tx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}
	if payable != nil {
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, *payable); err != nil {
			s.LogError(ctx, err, "Failed to open payable", slog.String("purchase_id", purchase.PurchaseID))
			return nil, err
		}
	}
	if err := s.purchaseRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("total", purchase.Total.String()),
		slog.Bool("payable_opened", payable != nil))
	return &dto.CreatePurchaseResponse{Purchase: purchase, Payable: payable}, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, ownerID, purchaseID string) (*domain.Purchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, ownerID, purchaseID)
}

func (s *purchaseService) ListPurchases(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListPurchasesResponse, error) {
	purchases, next, err := s.purchaseRepo.ListPurchases(ctx, ownerID, params.Page())
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &dto.ListPurchasesResponse{Purchases: purchases, NextToken: next}, nil
}

func supplierName(s string) string {
	if s == "" {
		return "supplier"
	}
	return s
}
