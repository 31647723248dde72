package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	"github.com/xylo-fin/xylo-backend/internal/core/domain"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	chartService portssvc.ChartOfAccountsSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(cs portssvc.ChartOfAccountsSvc) *accountHandler {
	return &accountHandler{chartService: cs}
}

// registerAccountRoutes registers routes related to the chart of accounts.
func registerAccountRoutes(rg *gin.RouterGroup, chartService portssvc.ChartOfAccountsSvc) {
	h := newAccountHandler(chartService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/seed", h.seedAccounts)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:code", h.getAccount)
	}
}

// seedAccounts inserts the chart entries from the request body, or the
// built-in default chart when the list is empty. Codes that already exist
// are left untouched.
func (h *accountHandler) seedAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SeedAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SeedAccounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var inserted int
	var err error
	if len(req.Accounts) == 0 {
		inserted, err = h.chartService.SeedDefaultAccounts(c.Request.Context())
	} else {
		accounts := make([]domain.Account, len(req.Accounts))
		for i, spec := range req.Accounts {
			accounts[i] = spec.ToDomainAccount()
		}
		inserted, err = h.chartService.SeedAccounts(c.Request.Context(), accounts)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error seeding accounts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to seed accounts", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed accounts"})
		}
		return
	}

	logger.Info("Accounts seeded", slog.Int("inserted", inserted))
	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}

// getAccount retrieves a single chart entry by code.
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	account, err := h.chartService.GetAccountByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("code", code), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts retrieves the full chart ordered by code.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.chartService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve accounts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountResponses(accounts)})
}
