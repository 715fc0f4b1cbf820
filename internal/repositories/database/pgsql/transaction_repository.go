package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, owner_id, transaction_type, description, amount, due_date, status,
	customer_id, sale_id, purchase_id, payment_method, paid_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return saveTransaction(ctx, r.Pool, txn)
}

// SaveTransactionInTx inserts txn as part of a sale or purchase write.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return saveTransaction(ctx, tx, txn)
}

func saveTransaction(ctx context.Context, q querier, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	var paidAt *time.Time
	if txn.PaidAt != nil && !txn.PaidAt.IsZero() {
		paidAt = txn.PaidAt
	}
	_, err := q.Exec(ctx, query,
		txn.TransactionID, txn.OwnerID, string(txn.Type), txn.Description, txn.Amount, txn.DueDate, string(txn.Status),
		mapping.TextOrNull(txn.CustomerID), mapping.TextOrNull(txn.SaleID), mapping.TextOrNull(txn.PurchaseID),
		mapping.TextOrNull(string(txn.PaymentMethod)), paidAt,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1 AND transaction_id = $2;`
	m, err := collectOne[models.Transaction](ctx, r.Pool, "transaction", transactionID, query, ownerID, transactionID)
	if err != nil {
		return nil, err
	}
	txn, err := mapping.ToDomainTransaction(*m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindTransactionsBySaleID(ctx context.Context, ownerID, saleID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1 AND sale_id = $2 ORDER BY created_at;`
	ms, err := collectAll[models.Transaction](ctx, r.Pool, "failed to find transactions for sale "+saleID, query, ownerID, saleID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms)
}

// ListTransactions pages through transactions by due date, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter, page portsrepo.Page) ([]domain.Transaction, *string, error) {
	listing := datedListing{
		selectFrom: `SELECT ` + transactionColumns + ` FROM transactions`,
		dateColumn: "due_date",
		where:      "owner_id = $1",
		args:       []any{ownerID},
	}
	if filter.Type != "" {
		listing.args = append(listing.args, string(filter.Type))
		listing.where += fmt.Sprintf(" AND transaction_type = $%d", len(listing.args))
	}
	if filter.Status != "" {
		listing.args = append(listing.args, string(filter.Status))
		listing.where += fmt.Sprintf(" AND status = $%d", len(listing.args))
	}
	if filter.CustomerID != "" {
		listing.args = append(listing.args, filter.CustomerID)
		listing.where += fmt.Sprintf(" AND customer_id = $%d", len(listing.args))
	}

	ms, next, err := listDated(ctx, r.Pool, listing, page, func(m models.Transaction) (time.Time, time.Time) {
		return m.DueDate, m.CreatedAt
	})
	if err != nil {
		return nil, nil, err
	}
	txns, err := mapping.ToDomainTransactionSlice(ms)
	if err != nil {
		return nil, nil, err
	}
	return txns, next, nil
}

func (r *PgxTransactionRepository) ListPendingTransactions(ctx context.Context, ownerID string, typ domain.TransactionType) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE owner_id = $1 AND transaction_type = $2 AND status = 'PENDING'
		ORDER BY due_date, created_at;`
	ms, err := collectAll[models.Transaction](ctx, r.Pool, "failed to list pending transactions", query, ownerID, string(typ))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms)
}

// SettleTransaction marks a pending transaction paid. The status guard in the
// UPDATE makes concurrent settles race safely: only one of them sees a row.
func (r *PgxTransactionRepository) SettleTransaction(ctx context.Context, ownerID, transactionID string, method domain.PaymentMethod, paidAt time.Time, userID string) (*domain.Transaction, error) {
	query := `
		UPDATE transactions
		SET status = 'PAID', payment_method = $1, paid_at = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE owner_id = $4 AND transaction_id = $5 AND status = 'PENDING'
		RETURNING ` + transactionColumns + `;`
	m, err := collectOne[models.Transaction](ctx, r.Pool, "transaction", transactionID, query,
		string(method), paidAt, userID, ownerID, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		var exists bool
		if err := r.Pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM transactions WHERE owner_id = $1 AND transaction_id = $2);`,
			ownerID, transactionID).Scan(&exists); err != nil {
			return nil, apperrors.NewAppError(500, "failed to check transaction "+transactionID, err)
		}
		if exists {
			return nil, fmt.Errorf("%w: transaction %s is already paid", apperrors.ErrConflict, transactionID)
		}
		return nil, notFound("transaction", transactionID)
	}
	txn, err := mapping.ToDomainTransaction(*m)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}
