package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/apperrors"
	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	"github.com/SscSPs/bookstore_manager/internal/models"
	"github.com/SscSPs/bookstore_manager/internal/utils/mapping"
	"github.com/SscSPs/bookstore_manager/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `book_id, owner_id, title, author, isbn, stock, price, production_price,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxBookRepository struct {
	BaseRepository
}

func newPgxBookRepository(pool *pgxpool.Pool) portsrepo.BookRepositoryFacade {
	return &PgxBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BookRepositoryFacade = (*PgxBookRepository)(nil)

// SaveBook inserts a new book.
func (r *PgxBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	query := `
		INSERT INTO books (` + bookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		book.BookID, book.OwnerID, book.Title, book.Author, book.ISBN, book.Stock,
		book.Price, book.ProductionPrice,
		book.CreatedAt, book.CreatedBy, book.LastUpdatedAt, book.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError("failed to insert book "+book.BookID, err)
	}
	return nil
}

// UpdateBook overwrites the editable fields of a book.
func (r *PgxBookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, stock = $4, price = $5, production_price = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE owner_id = $9 AND book_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		book.Title, book.Author, book.ISBN, book.Stock, book.Price, book.ProductionPrice,
		book.LastUpdatedAt, book.LastUpdatedBy, book.OwnerID, book.BookID,
	)
	if err != nil {
		return mapWriteError("failed to update book "+book.BookID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("book", book.BookID)
	}
	return nil
}

// DeleteBook removes a book. Past sale items keep their book id.
func (r *PgxBookRepository) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM books WHERE owner_id = $1 AND book_id = $2;`, ownerID, bookID)
	if err != nil {
		return mapWriteError("failed to delete book "+bookID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound("book", bookID)
	}
	return nil
}

func (r *PgxBookRepository) FindBookByID(ctx context.Context, ownerID, bookID string) (*domain.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE owner_id = $1 AND book_id = $2;`
	m, err := collectOne[models.Book](ctx, r.Pool, "book", bookID, query, ownerID, bookID)
	if err != nil {
		return nil, err
	}
	book, err := mapping.ToDomainBook(*m)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks pages through books ordered by title, then id.
// The token carries the last book id followed by its title.
func (r *PgxBookRepository) ListBooks(ctx context.Context, ownerID string, page portsrepo.Page) ([]domain.Book, *string, error) {
	limit := pageLimit(page)
	args := []any{ownerID}
	where := `WHERE owner_id = $1`

	if cursor := page.Cursor(); cursor != "" {
		parts, err := pagination.DecodeFieldsCursor(cursor, 2)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
		}
		args = append(args, parts[1], parts[0])
		where += ` AND (title, book_id) > ($2, $3)`
	}
	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM books %s ORDER BY title, book_id LIMIT $%d;`, bookColumns, where, len(args))

	ms, err := collectAll[models.Book](ctx, r.Pool, "failed to list books for owner "+ownerID, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeFieldsCursor(last.BookID, last.Title)
		next = &token
		ms = ms[:limit]
	}
	books, err := mapping.ToDomainBookSlice(ms)
	if err != nil {
		return nil, nil, err
	}
	return books, next, nil
}

// AdjustStockInTx locks the affected books in id order and applies the changes.
func (r *PgxBookRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, ownerID string, changes map[string]int64, userID string, now time.Time) error {
	if len(changes) == 0 {
		return nil
	}
	bookIDs := make([]string, 0, len(changes))
	for id := range changes {
		bookIDs = append(bookIDs, id)
	}
	sort.Strings(bookIDs)

	rows, err := tx.Query(ctx,
		`SELECT book_id, stock FROM books WHERE owner_id = $1 AND book_id = ANY($2) ORDER BY book_id FOR UPDATE;`,
		ownerID, bookIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock books for stock update", err)
	}
	stock := make(map[string]int64, len(bookIDs))
	var (
		id  string
		qty int64
	)
	_, err = pgx.ForEachRow(rows, []any{&id, &qty}, func() error {
		stock[id] = qty
		return nil
	})
	if err != nil {
		return apperrors.NewAppError(500, "failed to scan locked books", err)
	}

	batch := &pgx.Batch{}
	for _, bookID := range bookIDs {
		current, ok := stock[bookID]
		if !ok {
			return fmt.Errorf("%w: book %s does not exist", apperrors.ErrValidation, bookID)
		}
		if current+changes[bookID] < 0 {
			return fmt.Errorf("%w: insufficient stock for book %s: have %d, need %d",
				apperrors.ErrValidation, bookID, current, -changes[bookID])
		}
		batch.Queue(`UPDATE books SET stock = stock + $1, last_updated_at = $2, last_updated_by = $3 WHERE owner_id = $4 AND book_id = $5;`,
			changes[bookID], now, userID, ownerID, bookID)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapWriteError("failed to update book stock", err)
	}
	return nil
}
