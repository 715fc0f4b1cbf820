package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to stock purchases.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
	}
}

// createPurchase godoc
// @Summary Record a stock purchase
// @Description Records a purchase and adds the books to stock. A DUE purchase
// @Description opens a pending payable for its total.
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.CreatePurchaseResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown book"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.purchaseService.CreatePurchase(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "record purchase")
		return
	}

	logger.Info("Purchase recorded successfully", slog.String("purchase_id", resp.Purchase.PurchaseID))
	c.JSON(http.StatusCreated, resp)
}

// listPurchases godoc
// @Summary List purchases
// @Tags purchases
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListPurchases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.purchaseService.ListPurchases(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "list purchases")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPurchase godoc
// @Summary Get a purchase
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 200 {object} domain.Purchase
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Purchase not found"
// @Failure 500 {object} map[string]string "Failed to retrieve purchase"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), ownerID, purchaseID)
	if err != nil {
		respondError(c, logger.With(slog.String("purchase_id", purchaseID)), err, "retrieve purchase")
		return
	}
	c.JSON(http.StatusOK, purchase)
}
