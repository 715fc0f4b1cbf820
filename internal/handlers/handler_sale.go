package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests related to sales.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

// registerSaleRoutes registers routes related to sales.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("", h.listSales)
		sales.GET("/:id", h.getSale)
	}
}

// createSale godoc
// @Summary Record a sale
// @Description Records a sale and takes the books out of stock. A DUE sale
// @Description needs a customer and opens a pending receivable for its total.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateSaleRequest true "Sale details"
// @Success 201 {object} dto.CreateSaleResponse
// @Failure 400 {object} map[string]string "Invalid input, unknown book or insufficient stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record sale"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) createSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to record sale",
		slog.String("payment_method", string(req.Method())),
		slog.Int("items", len(req.Items)))
	resp, err := h.saleService.CreateSale(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "record sale")
		return
	}

	logger.Info("Sale recorded successfully", slog.String("sale_id", resp.Sale.SaleID))
	c.JSON(http.StatusCreated, resp)
}

// listSales godoc
// @Summary List sales
// @Description Lists sales, newest first
// @Tags sales
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list sales"
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListSales", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} domain.Sale
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sale not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sale"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	saleID := c.Param("id")

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), ownerID, saleID)
	if err != nil {
		respondError(c, logger.With(slog.String("sale_id", saleID)), err, "retrieve sale")
		return
	}
	c.JSON(http.StatusOK, sale)
}
