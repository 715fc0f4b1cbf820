package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookHandler handles HTTP requests related to the book inventory.
type bookHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newBookHandler(is portssvc.InventorySvcFacade) *bookHandler {
	return &bookHandler{inventoryService: is}
}

// registerBookRoutes registers routes related to books.
func registerBookRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newBookHandler(inventoryService)

	books := rg.Group("/books")
	{
		books.POST("", h.createBook)
		books.GET("", h.listBooks)
		books.GET("/:id", h.getBook)
		books.PUT("/:id", h.updateBook)
		books.DELETE("/:id", h.deleteBook)
	}
}

// createBook godoc
// @Summary Add a book
// @Description Adds a book to the inventory of the caller's store
// @Tags books
// @Accept  json
// @Produce  json
// @Param   book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create book"
// @Security BearerAuth
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create book", slog.String("title", req.Title))
	book, err := h.inventoryService.CreateBook(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "create book")
		return
	}

	logger.Info("Book created successfully", slog.String("book_id", book.BookID))
	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// listBooks godoc
// @Summary List books
// @Description Lists books ordered by title with cursor pagination
// @Tags books
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListBooksResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list books"
// @Security BearerAuth
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListBooks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.inventoryService.ListBooks(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "list books")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBook godoc
// @Summary Get a book
// @Tags books
// @Produce  json
// @Param   id path string true "Book ID"
// @Success 200 {object} dto.BookResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to retrieve book"
// @Security BearerAuth
// @Router /books/{id} [get]
func (h *bookHandler) getBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	book, err := h.inventoryService.GetBook(c.Request.Context(), ownerID, bookID)
	if err != nil {
		respondError(c, logger.With(slog.String("book_id", bookID)), err, "retrieve book")
		return
	}
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// updateBook godoc
// @Summary Update a book
// @Description Updates the provided fields of a book
// @Tags books
// @Accept  json
// @Produce  json
// @Param   id path string true "Book ID"
// @Param   book body dto.UpdateBookRequest true "Fields to update"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to update book"
// @Security BearerAuth
// @Router /books/{id} [put]
func (h *bookHandler) updateBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("book_id", bookID))
	book, err := h.inventoryService.UpdateBook(c.Request.Context(), ownerID, bookID, req, userID)
	if err != nil {
		respondError(c, logger, err, "update book")
		return
	}

	logger.Info("Book updated successfully")
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// deleteBook godoc
// @Summary Delete a book
// @Description Removes a book. Past sales keep referencing its id and count
// @Description zero gross profit for it.
// @Tags books
// @Param   id path string true "Book ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to delete book"
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *bookHandler) deleteBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("book_id", bookID))
	if err := h.inventoryService.DeleteBook(c.Request.Context(), ownerID, bookID); err != nil {
		respondError(c, logger, err, "delete book")
		return
	}

	logger.Info("Book deleted")
	c.Status(http.StatusNoContent)
}
