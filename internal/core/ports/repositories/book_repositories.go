package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BookReader defines read operations for book data
type BookReader interface {
	// FindBookByID retrieves a book of the owner by its id.
	FindBookByID(ctx context.Context, ownerID, bookID string) (*domain.Book, error)

	// ListBooks retrieves a page of the owner's books ordered by title.
	ListBooks(ctx context.Context, ownerID string, page Page) ([]domain.Book, *string, error)
}

// BookWriter defines write operations for book data
type BookWriter interface {
	SaveBook(ctx context.Context, book domain.Book) error
	UpdateBook(ctx context.Context, book domain.Book) error
	DeleteBook(ctx context.Context, ownerID, bookID string) error
}

// BookStockSupport adjusts stock as part of a sale or purchase.
type BookStockSupport interface {
	// AdjustStockInTx locks the books and applies the signed quantity changes.
	// A change that would leave stock negative fails with apperrors.ErrValidation.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, ownerID string, changes map[string]int64, userID string, now time.Time) error
}

// BookRepositoryFacade combines all book-related repository interfaces
type BookRepositoryFacade interface {
	BookReader
	BookWriter
	BookStockSupport
}
