package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
)

// transactionHandler handles HTTP requests related to raw transaction records.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transaction records.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvc) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.recordTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
	}
}

// recordTransaction records a new unprocessed transaction.
func (h *transactionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.Record(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to record transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction retrieves a transaction record by id.
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactions retrieves a filtered, paginated transaction listing.
// Filters come in as query parameters: from, to, minAmount, processed,
// limit and nextToken.
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListTransactionsParams{}

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date: " + err.Error()})
		return
	}
	params.From = from

	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date: " + err.Error()})
		return
	}
	params.To = to

	if raw := c.Query("minAmount"); raw != "" {
		minAmount, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'minAmount': " + err.Error()})
			return
		}
		params.MinAmount = &minAmount
	}

	if raw := c.Query("processed"); raw != "" {
		processed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'processed': " + err.Error()})
			return
		}
		params.Processed = &processed
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit': " + err.Error()})
			return
		}
		params.Limit = limit
	}

	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
