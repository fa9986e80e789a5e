package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/middleware"
)

// autoJournalHandler handles HTTP requests for auto-generated journal entries.
type autoJournalHandler struct {
	autoJournalService portssvc.AutoJournalSvcFacade
}

// newAutoJournalHandler creates a new autoJournalHandler.
func newAutoJournalHandler(autoJournalService portssvc.AutoJournalSvcFacade) *autoJournalHandler {
	return &autoJournalHandler{autoJournalService: autoJournalService}
}

func registerAutoJournalRoutes(rg *gin.RouterGroup, autoJournalService portssvc.AutoJournalSvcFacade) {
	h := newAutoJournalHandler(autoJournalService)
	rg.POST("/auto-journal", h.generateAndPost)
}

func (h *autoJournalHandler) generateAndPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AutoJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AutoJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		creatorUserID = middleware.DefaultActor
	}

	entry, err := h.autoJournalService.GenerateAndPost(c.Request.Context(), req.ToBusinessTransaction(creatorUserID))
	if err != nil {
		logger.Warn("Failed to auto-journal business transaction",
			slog.String("error", err.Error()),
			slog.String("transaction_type", req.TransactionType))
		respondWithError(c, err, "Failed to generate journal entry")
		return
	}

	logger.Info("Business transaction journaled",
		slog.String("transaction_type", req.TransactionType),
		slog.String("journal_number", entry.JournalNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
