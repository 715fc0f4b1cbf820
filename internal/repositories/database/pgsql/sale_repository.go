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

const saleColumns = `sale_id, owner_id, sale_date, customer_id, payment_method, total,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

// SaveSaleInTx inserts the sale and its items inside tx.
func (r *PgxSaleRepository) SaveSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		sale.SaleID, sale.OwnerID, sale.Date, mapping.TextOrNull(sale.CustomerID), string(sale.PaymentMethod), sale.Total,
		sale.CreatedAt, sale.CreatedBy, sale.LastUpdatedAt, sale.LastUpdatedBy,
	)
	for i, item := range sale.Items {
		batch.Queue(`INSERT INTO sale_items (sale_id, line_no, book_id, quantity, price) VALUES ($1, $2, $3, $4, $5);`,
			sale.SaleID, i+1, item.BookID, item.Quantity, item.Price)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError("failed to insert sale "+sale.SaleID, err)
	}
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, ownerID, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE owner_id = $1 AND sale_id = $2;`
	m, err := collectOne[models.Sale](ctx, r.Pool, "sale", saleID, query, ownerID, saleID)
	if err != nil {
		return nil, err
	}
	sales, err := withSaleItems(ctx, r.Pool, []models.Sale{*m})
	if err != nil {
		return nil, err
	}
	return &sales[0], nil
}

// ListSales pages through sales newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Sale, *string, error) {
	listing := datedListing{
		selectFrom: `SELECT ` + saleColumns + ` FROM sales`,
		dateColumn: "sale_date",
		where:      "owner_id = $1",
		args:       []any{ownerID},
	}
	ms, next, err := listDated(ctx, r.Pool, listing, page, func(m models.Sale) (time.Time, time.Time) {
		return m.SaleDate, m.CreatedAt
	})
	if err != nil {
		return nil, nil, err
	}
	sales, err := withSaleItems(ctx, r.Pool, ms)
	if err != nil {
		return nil, nil, err
	}
	return sales, next, nil
}

// withSaleItems loads the items of the given sales and maps them to domain sales.
func withSaleItems(ctx context.Context, q querier, ms []models.Sale) ([]domain.Sale, error) {
	if len(ms) == 0 {
		return []domain.Sale{}, nil
	}
	saleIDs := make([]string, 0, len(ms))
	for _, m := range ms {
		saleIDs = append(saleIDs, m.SaleID)
	}
	items, err := collectAll[models.SaleItem](ctx, q, "failed to load sale items",
		`SELECT sale_id, line_no, book_id, quantity, price FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, line_no;`,
		saleIDs)
	if err != nil {
		return nil, err
	}
	bySale := make(map[string][]models.SaleItem, len(ms))
	for _, it := range items {
		bySale[it.SaleID] = append(bySale[it.SaleID], it)
	}

	sales := make([]domain.Sale, 0, len(ms))
	for _, m := range ms {
		s, err := mapping.ToDomainSale(m, bySale[m.SaleID])
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}
