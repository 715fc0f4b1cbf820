package dto

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBookRequest defines the data needed to add a book to the inventory.
type CreateBookRequest struct {
	Title           string           `json:"title" binding:"required"`
	Author          string           `json:"author"`
	ISBN            string           `json:"isbn"`
	Stock           int64            `json:"stock" binding:"min=0"`
	Price           *decimal.Decimal `json:"price" binding:"required"`
	ProductionPrice *decimal.Decimal `json:"productionPrice" binding:"required"`
}

// UpdateBookRequest defines the data allowed for updating a book.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBookRequest struct {
	Title           *string          `json:"title"`
	Author          *string          `json:"author"`
	ISBN            *string          `json:"isbn"`
	Stock           *int64           `json:"stock" binding:"omitempty,min=0"`
	Price           *decimal.Decimal `json:"price"`
	ProductionPrice *decimal.Decimal `json:"productionPrice"`
}

// Apply copies the provided fields onto b.
func (r UpdateBookRequest) Apply(b *domain.Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.ISBN != nil {
		b.ISBN = *r.ISBN
	}
	if r.Stock != nil {
		b.Stock = *r.Stock
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.ProductionPrice != nil {
		b.ProductionPrice = *r.ProductionPrice
	}
}

// BookResponse defines the data returned for a book.
type BookResponse struct {
	BookID          string          `json:"bookID"`
	Title           string          `json:"title"`
	Author          string          `json:"author,omitempty"`
	ISBN            string          `json:"isbn,omitempty"`
	Stock           int64           `json:"stock"`
	Price           decimal.Decimal `json:"price"`
	ProductionPrice decimal.Decimal `json:"productionPrice"`
	StockValue      decimal.Decimal `json:"stockValue"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListBooksResponse is one page of books.
type ListBooksResponse struct {
	Books     []BookResponse `json:"books"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToBookResponse converts a domain.Book to BookResponse DTO.
func ToBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		BookID:          b.BookID,
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Stock:           b.Stock,
		Price:           b.Price,
		ProductionPrice: b.ProductionPrice,
		StockValue:      b.ProductionPrice.Mul(decimal.NewFromInt(b.Stock)),
		CreatedAt:       b.CreatedAt,
		LastUpdatedAt:   b.LastUpdatedAt,
	}
}

// ToBookResponses converts a slice of domain.Book to []BookResponse.
func ToBookResponses(books []domain.Book) []BookResponse {
	responses := make([]BookResponse, len(books))
	for i := range books {
		responses[i] = ToBookResponse(&books[i])
	}
	return responses
}
