package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotRepository reads every collection of an owner inside one
// repeatable-read transaction, so all collections reflect the same instant.
type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepository = (*PgxSnapshotRepository)(nil)

func (r *PgxSnapshotRepository) LoadSnapshot(ctx context.Context, ownerID string, asOf time.Time) (domain.Snapshot, error) {
	snap := domain.Snapshot{OwnerID: ownerID, AsOf: asOf}

	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return snap, apperrors.NewAppError(500, "failed to begin snapshot transaction", err)
	}
	defer r.Rollback(ctx, tx)

	if snap.Books, err = r.loadBooks(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Customers, err = listCustomers(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Sales, err = r.loadSales(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Purchases, err = r.loadPurchases(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Expenses, err = r.loadExpenses(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Donations, err = r.loadDonations(ctx, tx, ownerID); err != nil {
		return snap, err
	}
	if snap.Transactions, err = r.loadTransactions(ctx, tx, ownerID); err != nil {
		return snap, err
	}

	settings, err := findSettings(ctx, tx, ownerID)
	switch {
	case err == nil:
		snap.Settings = *settings
	case errors.Is(err, apperrors.ErrNotFound):
		snap.Settings = domain.Settings{OwnerID: ownerID}
	default:
		return snap, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return snap, err
	}
	return snap, nil
}

func (r *PgxSnapshotRepository) loadBooks(ctx context.Context, q querier, ownerID string) ([]domain.Book, error) {
	ms, err := collectAll[models.Book](ctx, q, "failed to load books",
		`SELECT `+bookColumns+` FROM books WHERE owner_id = $1 ORDER BY book_id;`, ownerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBookSlice(ms)
}

func (r *PgxSnapshotRepository) loadSales(ctx context.Context, q querier, ownerID string) ([]domain.Sale, error) {
	ms, err := collectAll[models.Sale](ctx, q, "failed to load sales",
		`SELECT `+saleColumns+` FROM sales WHERE owner_id = $1 ORDER BY sale_date, created_at;`, ownerID)
	if err != nil {
		return nil, err
	}
	return withSaleItems(ctx, q, ms)
}

func (r *PgxSnapshotRepository) loadPurchases(ctx context.Context, q querier, ownerID string) ([]domain.Purchase, error) {
	ms, err := collectAll[models.Purchase](ctx, q, "failed to load purchases",
		`SELECT `+purchaseColumns+` FROM purchases WHERE owner_id = $1 ORDER BY purchase_date, created_at;`, ownerID)
	if err != nil {
		return nil, err
	}
	return withPurchaseItems(ctx, q, ms)
}

func (r *PgxSnapshotRepository) loadExpenses(ctx context.Context, q querier, ownerID string) ([]domain.Expense, error) {
	ms, err := collectAll[models.Expense](ctx, q, "failed to load expenses",
		`SELECT `+expenseColumns+` FROM expenses WHERE owner_id = $1 ORDER BY expense_date, created_at;`, ownerID)
	if err != nil {
		return nil, err
	}
	return toDomainExpenses(ms)
}

func (r *PgxSnapshotRepository) loadDonations(ctx context.Context, q querier, ownerID string) ([]domain.Donation, error) {
	ms, err := collectAll[models.Donation](ctx, q, "failed to load donations",
		`SELECT `+donationColumns+` FROM donations WHERE owner_id = $1 ORDER BY donation_date, created_at;`, ownerID)
	if err != nil {
		return nil, err
	}
	return toDomainDonations(ms)
}

func (r *PgxSnapshotRepository) loadTransactions(ctx context.Context, q querier, ownerID string) ([]domain.Transaction, error) {
	ms, err := collectAll[models.Transaction](ctx, q, "failed to load transactions",
		`SELECT `+transactionColumns+` FROM transactions WHERE owner_id = $1 ORDER BY due_date, created_at;`, ownerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms)
}
