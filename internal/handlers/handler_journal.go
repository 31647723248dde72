package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xylo-fin/xylo-backend/internal/apperrors"
	portssvc "github.com/xylo-fin/xylo-backend/internal/core/ports/services"
	"github.com/xylo-fin/xylo-backend/internal/core/services"
	"github.com/xylo-fin/xylo-backend/internal/dto"
	"github.com/xylo-fin/xylo-backend/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("/:id", h.getEntry)
		entries.POST("/:id/reverse", h.reverseEntry)
	}
}

// postEntry validates and commits a balanced journal entry.
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), req)
	if err != nil {
		respondPostEntryError(c, logger, err)
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// respondPostEntryError maps posting failures to HTTP responses. An
// unbalanced entry answers with both totals so the caller can see the
// exact discrepancy.
func respondPostEntryError(c *gin.Context, logger *slog.Logger, err error) {
	var unbalanced *apperrors.UnbalancedEntryError
	switch {
	case errors.As(err, &unbalanced):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       unbalanced.Error(),
			"totalDebit":  unbalanced.TotalDebit,
			"totalCredit": unbalanced.TotalCredit,
		})
	case errors.Is(err, services.ErrEntryNoLines),
		errors.Is(err, services.ErrNegativeAmount),
		errors.Is(err, services.ErrUnknownAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to post journal entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal entry"})
	}
}

// getEntry retrieves a journal entry with its lines.
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get journal entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntryRequest carries the date for a reversal posting. When
// omitted, the reversal is dated today.
type reverseEntryRequest struct {
	EntryDate *time.Time `json:"entryDate"`
}

// reverseEntry posts a new entry offsetting an existing one.
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	// An empty body is fine and means "reverse as of now".
	var req reverseEntryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ReverseEntry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	entryDate := time.Now().UTC()
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), entryID, entryDate)
	if err != nil {
		respondPostEntryError(c, logger, err)
		return
	}

	logger.Info("Journal entry reversed", slog.String("entry_id", entryID), slog.String("reversal_entry_id", reversal.EntryID))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(reversal))
}
