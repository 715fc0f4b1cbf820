package pgsql

import (
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookRepo:        newPgxBookRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		SaleRepo:        newPgxSaleRepository(dbPool),
		PurchaseRepo:    newPgxPurchaseRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		DonationRepo:    newPgxDonationRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
		SnapshotRepo:    newPgxSnapshotRepository(dbPool),
	}
}
