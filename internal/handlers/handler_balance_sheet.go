package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/core/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
)

// balanceSheetHandler handles HTTP requests related to balance sheet snapshots.
type balanceSheetHandler struct {
	balanceSheetSvc portssvc.BalanceSheetSvcFacade
}

// newBalanceSheetHandler creates a new balanceSheetHandler.
func newBalanceSheetHandler(balanceSheetSvc portssvc.BalanceSheetSvcFacade) *balanceSheetHandler {
	return &balanceSheetHandler{
		balanceSheetSvc: balanceSheetSvc,
	}
}

func (h *balanceSheetHandler) createSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createSnapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.balanceSheetSvc.CreateSnapshot(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, services.ErrSnapshotUnbalanced) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected balance sheet snapshot", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create balance sheet snapshot"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBalanceSheetResponse(snapshot))
}

func (h *balanceSheetHandler) getSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	snapshotID := c.Param("snapshotID")

	snapshot, err := h.balanceSheetSvc.GetSnapshotByID(c.Request.Context(), snapshotID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Balance sheet snapshot not found"})
			return
		}
		logger.Error("Failed to get snapshot", slog.String("error", err.Error()), slog.String("snapshot_id", snapshotID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance sheet snapshot"})
		return
	}

	summary := h.balanceSheetSvc.SummarizeLineItems(snapshot.LineItems)
	c.JSON(http.StatusOK, gin.H{
		"snapshot": dto.ToBalanceSheetResponse(snapshot),
		"summary":  summary,
	})
}

func (h *balanceSheetHandler) listSnapshots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	snapshots, err := h.balanceSheetSvc.ListSnapshots(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list snapshots", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balance sheet snapshots"})
		return
	}

	responses := make([]dto.BalanceSheetResponse, len(snapshots))
	for i := range snapshots {
		responses[i] = dto.ToBalanceSheetResponse(&snapshots[i])
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": responses})
}

// summarizeSnapshot evaluates the accounting equation for a set of line items
// without persisting anything.
func (h *balanceSheetHandler) summarizeSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SummarizeBalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for summarizeSnapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	summary := h.balanceSheetSvc.SummarizeLineItems(req.ToDomainLineItems())
	c.JSON(http.StatusOK, summary)
}

// registerBalanceSheetRoutes registers balance sheet specific routes.
func registerBalanceSheetRoutes(group *gin.RouterGroup, balanceSheetSvc portssvc.BalanceSheetSvcFacade) {
	h := newBalanceSheetHandler(balanceSheetSvc)

	balanceSheets := group.Group("/balance-sheets")
	{
		balanceSheets.POST("", h.createSnapshot)
		balanceSheets.GET("", h.listSnapshots)
		balanceSheets.POST("/summarize", h.summarizeSnapshot)
		balanceSheets.GET("/:snapshotID", h.getSnapshot)
	}
}
