package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

// saleService records sales. A sale, its stock decrement and, for a DUE
// sale, its receivable are written in one database transaction.
type saleService struct {
	BaseService
	saleRepo     portsrepo.SaleRepositoryWithTx
	bookRepo     portsrepo.BookRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewSaleService creates a new SaleService.
func NewSaleService(
	saleRepo portsrepo.SaleRepositoryWithTx,
	bookRepo portsrepo.BookRepositoryFacade,
	customerRepo portsrepo.CustomerRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:     saleRepo,
		bookRepo:     bookRepo,
		customerRepo: customerRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale validates and records a sale.
func (s *saleService) CreateSale(ctx context.Context, ownerID string, req dto.CreateSaleRequest, userID string) (*dto.CreateSaleResponse, error) {
	now := s.Now()
	method := req.Method()

	if req.CustomerID != "" {
		if err := requireCustomer(ctx, s.customerRepo, ownerID, req.CustomerID); err != nil {
			return nil, err
		}
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		OwnerID:       ownerID,
		Date:          req.SaleDate(now),
		CustomerID:    req.CustomerID,
		PaymentMethod: method,
		Items:         make([]domain.SaleItem, 0, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stockChanges := make(map[string]int64, len(req.Items))
	for _, item := range req.Items {
		line := domain.SaleItem{BookID: item.BookID, Quantity: item.Quantity}
		if item.Price != nil {
			line.Price = *item.Price
		} else {
			book, err := s.bookRepo.FindBookByID(ctx, ownerID, item.BookID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, validationError("book %s does not exist", item.BookID)
				}
				return nil, err
			}
			line.Price = book.Price
		}
		sale.Items = append(sale.Items, line)
		stockChanges[item.BookID] -= item.Quantity
	}

	sale.Total = sale.ItemsTotal()
	if req.Total != nil {
		sale.Total = *req.Total
	}
	if err := sale.Validate(); err != nil {
		return nil, err
	}

	var receivable *domain.Transaction
	if method == domain.PaymentDue {
		if !sale.Total.IsPositive() {
			return nil, validationError("a due sale must have a positive total")
		}
		dueDate := sale.Date
		if req.DueDate != nil {
			dueDate = *req.DueDate
		}
		receivable = &domain.Transaction{
			TransactionID: uuid.NewString(),
			OwnerID:       ownerID,
			Type:          domain.Receivable,
			Description:   fmt.Sprintf("Due for sale %s", sale.SaleID),
			Amount:        sale.Total,
			DueDate:       dueDate,
			Status:        domain.StatusPending,
			CustomerID:    sale.CustomerID,
			SaleID:        sale.SaleID,
			AuditFields:   sale.AuditFields,
		}
	}

	if err := s.saveSale(ctx, ownerID, sale, stockChanges, receivable, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to record sale",
			slog.String("owner_id", ownerID),
			slog.String("payment_method", string(method)))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.String("sale_id", sale.SaleID),
		slog.String("payment_method", string(method)),
		slog.String("total", sale.Total.String()),
		slog.Bool("receivable_opened", receivable != nil))
	return &dto.CreateSaleResponse{Sale: sale, Receivable: receivable}, nil
}

func (s *saleService) saveSale(ctx context.Context, ownerID string, sale domain.Sale, stockChanges map[string]int64, receivable *domain.Transaction, userID string, now time.Time) error {
	tx, err := s.saleRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.saleRepo.Rollback(ctx, tx) // no-op after commit

	if err := s.bookRepo.AdjustStockInTx(ctx, tx, ownerID, stockChanges, userID, now); err != nil {
		return err
	}
	if err := s.saleRepo.SaveSaleInTx(ctx, tx, sale); err != nil {
		return err
	}
	if receivable != nil {
		if err := s.txnRepo.SaveTransactionInTx(ctx, tx, *receivable); err != nil {
			return err
		}
	}
	return s.saleRepo.Commit(ctx, tx)
}

func (s *saleService) GetSale(ctx context.Context, ownerID, saleID string) (*domain.Sale, error) {
	return s.saleRepo.FindSaleByID(ctx, ownerID, saleID)
}

func (s *saleService) ListSales(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListSalesResponse, error) {
	sales, next, err := s.saleRepo.ListSales(ctx, ownerID, params.Page())
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &dto.ListSalesResponse{Sales: sales, NextToken: next}, nil
}

// requireCustomer turns a missing customer into a validation error.
func requireCustomer(ctx context.Context, repo portsrepo.CustomerRepositoryFacade, ownerID, customerID string) error {
	if _, err := repo.FindCustomerByID(ctx, ownerID, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return validationError("customer %s does not exist", customerID)
		}
		return err
	}
	return nil
}
