package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// getTrialBalance generates a trial balance over an optional date range.
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date: " + err.Error()})
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date: " + err.Error()})
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": dto.ToTrialBalanceResponses(rows)})
}

// getProfitAndLoss generates a P&L report over an optional date range.
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date: " + err.Error()})
		return
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date: " + err.Error()})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet generates a balance sheet as of an optional date.
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := parseTimeParam(c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'asOf' date: " + err.Error()})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate balance sheet"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}
