package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/middleware"
)

// periodHandler handles HTTP requests related to accounting periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// newPeriodHandler creates a new periodHandler.
func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)
	periods := rg.Group("/periods")
	{
		periods.GET("", h.listPeriods)
		periods.GET("/active", h.getActivePeriod)
		periods.POST("", h.openPeriod)
		periods.POST("/:periodID/close", h.closePeriod)
		periods.POST("/:periodID/reopen", h.reopenPeriod)
		periods.POST("/:periodID/activate", h.activatePeriod)
	}
}

func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periods, err := h.periodService.ListPeriods(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list periods", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to list periods")
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": dto.ToListPeriodResponse(periods)})
}

func (h *periodHandler) getActivePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	period, err := h.periodService.GetActivePeriod(c.Request.Context())
	if err != nil {
		logger.Warn("Failed to get active period", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to retrieve active period")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

func (h *periodHandler) openPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for OpenPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		userID = middleware.DefaultActor
	}

	period, err := h.periodService.OpenPeriod(c.Request.Context(), req.Year, time.Month(req.Month), userID)
	if err != nil {
		logger.Warn("Failed to open period", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to open period")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

func (h *periodHandler) closePeriod(c *gin.Context) {
	h.transition(c, "close", h.periodService.ClosePeriod)
}

func (h *periodHandler) reopenPeriod(c *gin.Context) {
	h.transition(c, "reopen", h.periodService.ReopenPeriod)
}

func (h *periodHandler) activatePeriod(c *gin.Context) {
	h.transition(c, "activate", h.periodService.ActivatePeriod)
}

func (h *periodHandler) transition(c *gin.Context, action string, fn func(ctx context.Context, periodID, userID string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		userID = middleware.DefaultActor
	}

	if err := fn(c.Request.Context(), periodID, userID); err != nil {
		logger.Warn("Failed to "+action+" period", slog.String("error", err.Error()), slog.String("period_id", periodID))
		respondWithError(c, err, "Failed to "+action+" period")
		return
	}

	c.Status(http.StatusNoContent)
}
