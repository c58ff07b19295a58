package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
)

// counterpartyHandler handles HTTP requests related to counterparties.
type counterpartyHandler struct {
	counterpartySvc portssvc.CounterpartySvcFacade
}

// newCounterpartyHandler creates a new counterpartyHandler.
func newCounterpartyHandler(counterpartySvc portssvc.CounterpartySvcFacade) *counterpartyHandler {
	return &counterpartyHandler{
		counterpartySvc: counterpartySvc,
	}
}

func (h *counterpartyHandler) createCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCounterpartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCounterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cp, err := h.counterpartySvc.CreateCounterparty(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create counterparty", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create counterparty"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCounterpartyResponse(cp))
}

func (h *counterpartyHandler) getCounterparty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	counterpartyID := c.Param("counterpartyID")

	cp, err := h.counterpartySvc.GetCounterpartyByID(c.Request.Context(), counterpartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Counterparty not found"})
			return
		}
		logger.Error("Failed to get counterparty", slog.String("error", err.Error()), slog.String("counterparty_id", counterpartyID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve counterparty"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCounterpartyResponse(cp))
}

func (h *counterpartyHandler) listCounterparties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	cps, err := h.counterpartySvc.ListCounterparties(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list counterparties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list counterparties"})
		return
	}

	responses := make([]dto.CounterpartyResponse, len(cps))
	for i := range cps {
		responses[i] = dto.ToCounterpartyResponse(&cps[i])
	}
	c.JSON(http.StatusOK, gin.H{"counterparties": responses})
}

// registerCounterpartyRoutes registers counterparty specific routes.
func registerCounterpartyRoutes(group *gin.RouterGroup, counterpartySvc portssvc.CounterpartySvcFacade) {
	h := newCounterpartyHandler(counterpartySvc)

	counterparties := group.Group("/counterparties")
	{
		counterparties.POST("", h.createCounterparty)
		counterparties.GET("", h.listCounterparties)
		counterparties.GET("/:counterpartyID", h.getCounterparty)
	}
}
