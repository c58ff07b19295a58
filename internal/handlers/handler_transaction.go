package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barterbase/barter_books_app/internal/apperrors"
	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/core/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionSvc portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(transactionSvc portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionSvc: transactionSvc,
	}
}

// transactionErrorStatus maps service errors to HTTP status codes.
func transactionErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, services.ErrAlreadyPosted),
		errors.Is(err, services.ErrNotPosted),
		errors.Is(err, services.ErrImmutable):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, services.ErrMissingBarterDetail),
		errors.Is(err, services.ErrMissingCounterparty),
		errors.Is(err, services.ErrVoidReasonRequired),
		errors.Is(err, services.ErrFMVNotPositive),
		errors.Is(err, services.ErrMissingBarterAccounts),
		errors.Is(err, services.ErrAccountNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondTransactionError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := transactionErrorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, warning, err := h.transactionSvc.CreateTransaction(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondTransactionError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction":        dto.ToTransactionResponse(txn),
		"fmvMismatchWarning": warning,
	})
}

func (h *transactionHandler) getTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	txn, err := h.transactionSvc.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondTransactionError(c, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.transactionSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondTransactionError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, warning, err := h.transactionSvc.UpdateTransaction(c.Request.Context(), transactionID, req, userID)
	if err != nil {
		respondTransactionError(c, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction":        dto.ToTransactionResponse(txn),
		"fmvMismatchWarning": warning,
	})
}

func (h *transactionHandler) postTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionSvc.PostTransaction(c.Request.Context(), transactionID, userID)
	if err != nil {
		respondTransactionError(c, err, "Failed to post transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) voidTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.VoidTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for voidTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.transactionSvc.VoidTransaction(c.Request.Context(), transactionID, req.Reason, userID)
	if err != nil {
		respondTransactionError(c, err, "Failed to void transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) previewBarterEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BarterDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for previewBarterEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entries, warning, err := h.transactionSvc.PreviewBarterEntries(c.Request.Context(), req)
	if err != nil {
		respondTransactionError(c, err, "Failed to preview barter entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":            dto.ToEntryResponses(entries),
		"fmvMismatchWarning": warning,
	})
}

// registerTransactionRoutes registers transaction specific routes.
func registerTransactionRoutes(group *gin.RouterGroup, transactionSvc portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionSvc)

	transactions := group.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.POST("/barter/preview", h.previewBarterEntries)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.POST("/:transactionID/post", h.postTransaction)
		transactions.POST("/:transactionID/void", h.voidTransaction)
	}
}
