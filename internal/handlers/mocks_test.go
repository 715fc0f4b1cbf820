package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) GetBook(ctx context.Context, ownerID, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, ownerID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockInventoryService) ListBooks(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListBooksResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListBooksResponse), args.Error(1)
}
func (m *MockInventoryService) CreateBook(ctx context.Context, ownerID string, req dto.CreateBookRequest, userID string) (*domain.Book, error) {
	args := m.Called(ctx, ownerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockInventoryService) UpdateBook(ctx context.Context, ownerID, bookID string, req dto.UpdateBookRequest, userID string) (*domain.Book, error) {
	args := m.Called(ctx, ownerID, bookID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockInventoryService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	args := m.Called(ctx, ownerID, bookID)
	return args.Error(0)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, ownerID string, req dto.CreateSaleRequest, userID string) (*dto.CreateSaleResponse, error) {
	args := m.Called(ctx, ownerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateSaleResponse), args.Error(1)
}
func (m *MockSaleService) GetSale(ctx context.Context, ownerID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, ownerID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListSalesResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListSalesResponse), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}
func (m *MockTransactionService) SettleTransaction(ctx context.Context, ownerID, transactionID string, req dto.SettleTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) CashPosition(ctx context.Context, ownerID string, asOf time.Time) (*domain.CashPosition, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashPosition), args.Error(1)
}
func (m *MockReportingService) Receivables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingSummary), args.Error(1)
}
func (m *MockReportingService) Payables(ctx context.Context, ownerID string) (*domain.OutstandingSummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OutstandingSummary), args.Error(1)
}
func (m *MockReportingService) StockValue(ctx context.Context, ownerID string) (*dto.StockValueResponse, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StockValueResponse), args.Error(1)
}
func (m *MockReportingService) Profit(ctx context.Context, ownerID string, period domain.Period) (*domain.ProfitReport, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitReport), args.Error(1)
}
func (m *MockReportingService) BalanceSheet(ctx context.Context, ownerID string, asOf time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, ownerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}
func (m *MockReportingService) Dashboard(ctx context.Context, ownerID string, asOf time.Time, trendMonths int) (*domain.Dashboard, error) {
	args := m.Called(ctx, ownerID, asOf, trendMonths)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}
func (m *MockReportingService) DuplicateAudit(ctx context.Context, ownerID string) (*domain.DuplicateAudit, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DuplicateAudit), args.Error(1)
}
func (m *MockReportingService) FinancialSummary(ctx context.Context, ownerID string, period domain.Period, asOf time.Time, narrative bool) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, ownerID, period, asOf, narrative)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
