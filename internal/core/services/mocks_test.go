package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a database transaction; services only pass it through.
type fakeTx struct {
	pgx.Tx
}

// txManagerMock provides the TransactionManager part of the *WithTx mocks.
type txManagerMock struct {
	mock.Mock
}

func (m *txManagerMock) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *txManagerMock) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *txManagerMock) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock BookRepository ---
type MockBookRepository struct {
	mock.Mock
}

var _ portsrepo.BookRepositoryFacade = (*MockBookRepository)(nil)

func (m *MockBookRepository) FindBookByID(ctx context.Context, ownerID, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, ownerID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) ListBooks(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Book, *string, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.Book), next, args.Error(2)
}

func (m *MockBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockBookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockBookRepository) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	return m.Called(ctx, ownerID, bookID).Error(0)
}

func (m *MockBookRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, ownerID string, changes map[string]int64, userID string, now time.Time) error {
	return m.Called(ctx, tx, ownerID, changes, userID, now).Error(0)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, ownerID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, ownerID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	txManagerMock
}

var _ portsrepo.SaleRepositoryWithTx = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, ownerID, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, ownerID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Sale, *string, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Sale), nil, args.Error(2)
}

func (m *MockSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	return m.Called(ctx, tx, sale).Error(0)
}

// --- Mock PurchaseRepository ---
type MockPurchaseRepository struct {
	txManagerMock
}

var _ portsrepo.PurchaseRepositoryWithTx = (*MockPurchaseRepository)(nil)

func (m *MockPurchaseRepository) SavePurchaseInTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	return m.Called(ctx, tx, purchase).Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, ownerID, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, ownerID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Purchase, *string, error) {
	args := m.Called(ctx, ownerID, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Purchase), nil, args.Error(2)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsBySaleID(ctx context.Context, ownerID, saleID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter, page portsrepo.Page) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, ownerID, filter, page)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), nil, args.Error(2)
}

func (m *MockTransactionRepository) ListPendingTransactions(ctx context.Context, ownerID string, typ domain.TransactionType) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) SettleTransaction(ctx context.Context, ownerID, transactionID string, method domain.PaymentMethod, paidAt time.Time, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, method, paidAt, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsRepository = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

// --- Mock SnapshotRepository ---
type MockSnapshotRepository struct {
	mock.Mock
}

var _ portsrepo.SnapshotRepository = (*MockSnapshotRepository)(nil)

func (m *MockSnapshotRepository) LoadSnapshot(ctx context.Context, ownerID string, asOf time.Time) (domain.Snapshot, error) {
	args := m.Called(ctx, ownerID, asOf)
	return args.Get(0).(domain.Snapshot), args.Error(1)
}

// --- Mock Narrator ---
type MockNarrator struct {
	mock.Mock
}

var _ portssvc.Narrator = (*MockNarrator)(nil)

func (m *MockNarrator) Narrate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

// --- Mock Expense / Donation repositories ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, ownerID, page)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	return args.Get(0).([]domain.Expense), next, args.Error(2)
}

type MockDonationRepository struct {
	mock.Mock
}

var _ portsrepo.DonationRepositoryFacade = (*MockDonationRepository)(nil)

func (m *MockDonationRepository) SaveDonation(ctx context.Context, donation domain.Donation) error {
	return m.Called(ctx, donation).Error(0)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Donation, *string, error) {
	args := m.Called(ctx, ownerID, page)
	var next *string
	if v := args.Get(1); v != nil {
		next = v.(*string)
	}
	return args.Get(0).([]domain.Donation), next, args.Error(2)
}
