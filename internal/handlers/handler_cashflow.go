package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashflowHandler handles expenses and donations: money leaving or entering
// the store outside of trading.
type cashflowHandler struct {
	expenseService  portssvc.ExpenseSvcFacade
	donationService portssvc.DonationSvcFacade
}

func newCashflowHandler(es portssvc.ExpenseSvcFacade, ds portssvc.DonationSvcFacade) *cashflowHandler {
	return &cashflowHandler{expenseService: es, donationService: ds}
}

// registerCashflowRoutes registers the expense and donation routes.
func registerCashflowRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade, donationService portssvc.DonationSvcFacade) {
	h := newCashflowHandler(expenseService, donationService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}

	donations := rg.Group("/donations")
	{
		donations.POST("", h.createDonation)
		donations.GET("", h.listDonations)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *cashflowHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("category", expense.Category))
	c.JSON(http.StatusCreated, expense)
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *cashflowHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "list expenses")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createDonation godoc
// @Summary Record a donation received
// @Description Donations are income but are kept out of net profit.
// @Tags donations
// @Accept  json
// @Produce  json
// @Param   donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} domain.Donation
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record donation"
// @Security BearerAuth
// @Router /donations [post]
func (h *cashflowHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDonation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ownerID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), ownerID, req, userID)
	if err != nil {
		respondError(c, logger, err, "record donation")
		return
	}

	logger.Info("Donation recorded", slog.String("donation_id", donation.DonationID))
	c.JSON(http.StatusCreated, donation)
}

// listDonations godoc
// @Summary List donations
// @Tags donations
// @Produce  json
// @Param   limit query int false "Page size (1-100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListDonationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list donations"
// @Security BearerAuth
// @Router /donations [get]
func (h *cashflowHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListDonations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.donationService.ListDonations(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, logger, err, "list donations")
		return
	}
	c.JSON(http.StatusOK, resp)
}
