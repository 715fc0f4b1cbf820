package services

import (
	"context"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/dto"
)

// InventoryReaderSvc defines read operations for books
type InventoryReaderSvc interface {
	GetBook(ctx context.Context, ownerID, bookID string) (*domain.Book, error)
	ListBooks(ctx context.Context, ownerID string, params dto.ListParams) (*dto.ListBooksResponse, error)
}

// InventoryWriterSvc defines write operations for books
type InventoryWriterSvc interface {
	CreateBook(ctx context.Context, ownerID string, req dto.CreateBookRequest, userID string) (*domain.Book, error)
	UpdateBook(ctx context.Context, ownerID, bookID string, req dto.UpdateBookRequest, userID string) (*domain.Book, error)
	DeleteBook(ctx context.Context, ownerID, bookID string) error
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
