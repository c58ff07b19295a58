package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/barterbase/barter_books_app/internal/core/ports/services"
	"github.com/barterbase/barter_books_app/internal/dto"
	"github.com/barterbase/barter_books_app/internal/middleware"
)

// reportingHandler handles HTTP requests for barter reports.
type reportingHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingSvc portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingSvc: reportingSvc,
	}
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid year query parameter is required"})
		return 0, false
	}
	return year, true
}

func (h *reportingHandler) getBarterSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	report, err := h.reportingSvc.GetBarterSummary(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to build barter summary", slog.String("error", err.Error()), slog.Int("year", year))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build barter summary report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportingHandler) getBarterDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}
	params := dto.BarterDetailReportParams{
		Year:   year,
		SortBy: dto.DetailSortField(c.DefaultQuery("sortBy", string(dto.SortByDate))),
	}

	rows, err := h.reportingSvc.GetBarterDetail(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to build barter detail", slog.String("error", err.Error()), slog.Int("year", year))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build barter detail report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "rows": rows})
}

func (h *reportingHandler) getForm1099B(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, ok := yearParam(c)
	if !ok {
		return
	}

	rows, err := h.reportingSvc.GetForm1099B(c.Request.Context(), year)
	if err != nil {
		logger.Error("Failed to build 1099-B report", slog.String("error", err.Error()), slog.Int("year", year))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build 1099-B report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "rows": rows})
}

// registerReportingRoutes registers reporting specific routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingSvc)

	reports := group.Group("/reports")
	{
		reports.GET("/barter-summary", h.getBarterSummary)
		reports.GET("/barter-detail", h.getBarterDetail)
		reports.GET("/form-1099b", h.getForm1099B)
	}
}
