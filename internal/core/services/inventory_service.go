package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bookstore_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/google/uuid"
)

// inventoryService implements book management.
type inventoryService struct {
	BaseService
	bookRepo portsrepo.BookRepositoryFacade
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(bookRepo portsrepo.BookRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{bookRepo: bookRepo}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateBook adds a book to the owner's inventory.
func (s *inventoryService) CreateBook(ctx context.Context, ownerID string, req dto.CreateBookRequest, userID string) (*domain.Book, error) {
	if req.Price == nil || req.ProductionPrice == nil {
		return nil, validationError("price and productionPrice are required")
	}
	now := s.Now()
	book := domain.Book{
		BookID:          uuid.NewString(),
		OwnerID:         ownerID,
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Stock:           req.Stock,
		Price:           *req.Price,
		ProductionPrice: *req.ProductionPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}

	if err := s.bookRepo.SaveBook(ctx, book); err != nil {
		s.LogError(ctx, err, "Failed to save book", slog.String("owner_id", ownerID), slog.String("title", book.Title))
		return nil, err
	}

	s.LogInfo(ctx, "Book created", slog.String("book_id", book.BookID), slog.Int64("stock", book.Stock))
	return &book, nil
}

// GetBook retrieves one book of the owner.
func (s *inventoryService) GetBook(ctx context.Context, ownerID, bookID string) (*domain.Book, error) {
	return s.bookRepo.FindBookByID(ctx, ownerID, bookID)
}

// ListBooks retrieves a page of the owner's books.
func (s *inventoryService) ListBooks(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListBooksResponse, error) {
	books, next, err := s.bookRepo.ListBooks(ctx, ownerID, params.Page())
	if err != nil {
		s.LogError(ctx, err, "Failed to list books", slog.String("owner_id", ownerID))
		return nil, err
	}
	return &dto.ListBooksResponse{Books: dto.ToBookResponses(books), NextToken: next}, nil
}

// UpdateBook changes the provided fields of a book.
func (s *inventoryService) UpdateBook(ctx context.Context, ownerID, bookID string, req dto.UpdateBookRequest, userID string) (*domain.Book, error) {
	book, err := s.bookRepo.FindBookByID(ctx, ownerID, bookID)
	if err != nil {
		return nil, err
	}

	req.Apply(book)
	book.LastUpdatedAt = s.Now()
	book.LastUpdatedBy = userID
	if err := book.Validate(); err != nil {
		return nil, err
	}

	if err := s.bookRepo.UpdateBook(ctx, *book); err != nil {
		s.LogError(ctx, err, "Failed to update book", slog.String("book_id", bookID))
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book. Sales that sold it keep their lines; reports
// then list those lines as lookup misses.
func (s *inventoryService) DeleteBook(ctx context.Context, ownerID, bookID string) error {
	if err := s.bookRepo.DeleteBook(ctx, ownerID, bookID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Book deleted", slog.String("book_id", bookID))
	return nil
}
