package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseColumns = `purchase_id, owner_id, purchase_date, supplier, payment_method, total,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPurchaseRepository struct {
	BaseRepository
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

// SavePurchaseInTx inserts the purchase and its items inside tx.
func (r *PgxPurchaseRepository) SavePurchaseInTx(ctx context.Context, tx pgx.Tx, p domain.Purchase) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO purchases (`+purchaseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		p.PurchaseID, p.OwnerID, p.Date, p.Supplier, string(p.PaymentMethod), p.Total,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	for i, item := range p.Items {
		batch.Queue(`INSERT INTO purchase_items (purchase_id, line_no, book_id, quantity, unit_cost) VALUES ($1, $2, $3, $4, $5);`,
			p.PurchaseID, i+1, item.BookID, item.Quantity, item.UnitCost)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError("failed to insert purchase "+p.PurchaseID, err)
	}
	return nil
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, ownerID, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE owner_id = $1 AND purchase_id = $2;`
	m, err := collectOne[models.Purchase](ctx, r.Pool, "purchase", purchaseID, query, ownerID, purchaseID)
	if err != nil {
		return nil, err
	}
	purchases, err := withPurchaseItems(ctx, r.Pool, []models.Purchase{*m})
	if err != nil {
		return nil, err
	}
	return &purchases[0], nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Purchase, *string, error) {
	listing := datedListing{
		selectFrom: `SELECT ` + purchaseColumns + ` FROM purchases`,
		dateColumn: "purchase_date",
		where:      "owner_id = $1",
		args:       []any{ownerID},
	}
	ms, next, err := listDated(ctx, r.Pool, listing, page, func(m models.Purchase) (time.Time, time.Time) {
		return m.PurchaseDate, m.CreatedAt
	})
	if err != nil {
		return nil, nil, err
	}
	purchases, err := withPurchaseItems(ctx, r.Pool, ms)
	if err != nil {
		return nil, nil, err
	}
	return purchases, next, nil
}

func withPurchaseItems(ctx context.Context, q querier, ms []models.Purchase) ([]domain.Purchase, error) {
	if len(ms) == 0 {
		return []domain.Purchase{}, nil
	}
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.PurchaseID)
	}
	items, err := collectAll[models.PurchaseItem](ctx, q, "failed to load purchase items",
		`SELECT purchase_id, line_no, book_id, quantity, unit_cost FROM purchase_items WHERE purchase_id = ANY($1) ORDER BY purchase_id, line_no;`,
		ids)
	if err != nil {
		return nil, err
	}
	byPurchase := make(map[string][]models.PurchaseItem, len(ms))
	for _, it := range items {
		byPurchase[it.PurchaseID] = append(byPurchase[it.PurchaseID], it)
	}

	purchases := make([]domain.Purchase, 0, len(ms))
	for _, m := range ms {
		p, err := mapping.ToDomainPurchase(m, byPurchase[m.PurchaseID])
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}
