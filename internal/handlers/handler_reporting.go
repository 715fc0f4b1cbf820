package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bookstore_manager/internal/core/ports/services"
	"github.com/SscSPs/bookstore_manager/internal/dto"
	"github.com/SscSPs/bookstore_manager/internal/middleware"
	"github.com/SscSPs/bookstore_manager/internal/utils/reportfmt"
	"github.com/gin-gonic/gin"
)

const defaultTrendMonths = 6

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/cash", h.getCashPosition)
		reportingGroup.GET("/receivables", h.getReceivables)
		reportingGroup.GET("/payables", h.getPayables)
		reportingGroup.GET("/stock-value", h.getStockValue)
		reportingGroup.GET("/profit", h.getProfit)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/duplicates", h.getDuplicateAudit)
		reportingGroup.GET("/summary", h.getFinancialSummary)
	}
}

// bindAsOf reads the asOf query parameter, answering 400 itself on failure.
func bindAsOf(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	var q dto.AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid asOf query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return time.Time{}, false
	}
	asOf, err := q.Time()
	if err != nil {
		logger.Warn("Invalid asOf date", slog.String("asOf", q.AsOf))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, false
	}
	return asOf, true
}

// getCashPosition godoc
// @Summary Cash and bank position
// @Description Derives cash and bank from opening balances and every dated
// @Description movement. Customer payments that duplicate a cash sale are
// @Description excluded and listed.
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD or RFC 3339)" default(now)
// @Success 200 {object} domain.CashPosition
// @Failure 400 {object} map[string]string "Invalid input or unusable records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/cash [get]
func (h *reportingHandler) getCashPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	pos, err := h.reportingService.CashPosition(c.Request.Context(), ownerID, asOf)
	if err != nil {
		respondError(c, logger, err, "generate cash position")
		return
	}
	c.JSON(http.StatusOK, pos)
}

// getReceivables godoc
// @Summary Outstanding receivables
// @Tags reports
// @Produce json
// @Success 200 {object} domain.OutstandingSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/receivables [get]
func (h *reportingHandler) getReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	sum, err := h.reportingService.Receivables(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "generate receivables")
		return
	}
	c.JSON(http.StatusOK, sum)
}

// getPayables godoc
// @Summary Outstanding payables
// @Tags reports
// @Produce json
// @Success 200 {object} domain.OutstandingSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/payables [get]
func (h *reportingHandler) getPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	sum, err := h.reportingService.Payables(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "generate payables")
		return
	}
	c.JSON(http.StatusOK, sum)
}

// getStockValue godoc
// @Summary Inventory value at production cost
// @Tags reports
// @Produce json
// @Success 200 {object} dto.StockValueResponse
// @Failure 400 {object} map[string]string "Unusable book records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/stock-value [get]
func (h *reportingHandler) getStockValue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.reportingService.StockValue(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "generate stock value")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getProfit godoc
// @Summary Gross profit, net profit and net result
// @Description Net profit leaves donations out; net result adds them back.
// @Tags reports
// @Produce json
// @Param month query string false "Single month (YYYY-MM)"
// @Param from query string false "First month (YYYY-MM)"
// @Param to query string false "Last month (YYYY-MM)"
// @Success 200 {object} domain.ProfitReport
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit [get]
func (h *reportingHandler) getProfit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	var q dto.ReportPeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid query parameters for profit report", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := q.Period(h.now())
	if err != nil {
		respondError(c, logger, err, "generate profit report")
		return
	}

	logger = logger.With(slog.String("period", period.String()))
	report, err := h.reportingService.Profit(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, logger, err, "generate profit report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, payables and equity, where equity = total assets - payables.
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD or RFC 3339)" default(now)
// @Success 200 {object} domain.BalanceSheet
// @Failure 400 {object} map[string]string "Invalid input or unusable records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}
	asOf, ok := bindAsOf(c, logger)
	if !ok {
		return
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), ownerID, asOf)
	if err != nil {
		respondError(c, logger, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// getDashboard godoc
// @Summary Dashboard
// @Description Current position, this month's figures and a monthly trend.
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD or RFC 3339)" default(now)
// @Param months query int false "Months in the trend (1-36)" default(6)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} map[string]string "Invalid input or unusable records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid query parameters for dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	asOf, err := q.Time()
	if err != nil {
		respondError(c, logger, err, "generate dashboard")
		return
	}
	months := q.Months
	if months == 0 {
		months = defaultTrendMonths
	}

	dash, err := h.reportingService.Dashboard(c.Request.Context(), ownerID, asOf, months)
	if err != nil {
		respondError(c, logger, err, "generate dashboard")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// getDuplicateAudit godoc
// @Summary Duplicate cash audit
// @Description Lists customer payments that represent the same money as a
// @Description cash or bank sale, for a person to resolve.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DuplicateAudit
// @Failure 400 {object} map[string]string "Unusable records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/duplicates [get]
func (h *reportingHandler) getDuplicateAudit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	audit, err := h.reportingService.DuplicateAudit(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "generate duplicate audit")
		return
	}
	c.JSON(http.StatusOK, audit)
}

// getFinancialSummary godoc
// @Summary Financial summary
// @Description Balance sheet, profit, outstanding amounts and the duplicate
// @Description audit in one report, as JSON, Markdown or HTML. With
// @Description narrative=true a written commentary is added when available.
// @Tags reports
// @Produce json
// @Produce text/markdown
// @Produce text/html
// @Param month query string false "Single month (YYYY-MM)"
// @Param from query string false "First month (YYYY-MM)"
// @Param to query string false "Last month (YYYY-MM)"
// @Param asOf query string false "Balance date (YYYY-MM-DD or RFC 3339)" default(now)
// @Param narrative query bool false "Add a written commentary"
// @Param format query string false "json, markdown or html" default(json)
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} map[string]string "Invalid input or unusable records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getFinancialSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	var q dto.SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid query parameters for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	period, err := q.Period(h.now())
	if err != nil {
		respondError(c, logger, err, "generate summary")
		return
	}
	asOf, err := q.Time()
	if err != nil {
		respondError(c, logger, err, "generate summary")
		return
	}

	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), ownerID, period, asOf, q.Narrative)
	if err != nil {
		respondError(c, logger, err, "generate summary")
		return
	}

	switch q.Format {
	case "markdown":
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(reportfmt.SummaryMarkdown(*summary)))
	case "html":
		page, err := reportfmt.SummaryHTML(*summary)
		if err != nil {
			respondError(c, logger, err, "render summary")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	default:
		c.JSON(http.StatusOK, summary)
	}
}
