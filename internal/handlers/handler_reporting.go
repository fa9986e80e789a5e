package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gilangriyanto/ksu-ajibarang-sub003/internal/core/ports/services"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/dto"
	"github.com/gilangriyanto/ksu-ajibarang-sub003/internal/middleware"
)

const queryDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService portssvc.ReportingSvcFacade, ledgerService portssvc.LedgerSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: reportingService, ledgerService: ledgerService}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newReportingHandler(reportingService, ledgerService)
	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/general-ledger", h.generalLedger)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
	}
}

// parseRange reads the required from/to query parameters as YYYY-MM-DD dates.
func parseRange(c *gin.Context, fromKey, toKey string) (time.Time, time.Time, bool) {
	from, err := time.Parse(queryDateLayout, c.Query(fromKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fromKey + " must be a YYYY-MM-DD date"})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(queryDateLayout, c.Query(toKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": toKey + " must be a YYYY-MM-DD date"})
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": toKey + " must not be before " + fromKey})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// parseOptionalRange reads an optional comparative range; both or neither of
// the two parameters must be present.
func parseOptionalRange(c *gin.Context, fromKey, toKey string) (time.Time, time.Time, bool) {
	fromStr, toStr := c.Query(fromKey), c.Query(toKey)
	if fromStr == "" && toStr == "" {
		return time.Time{}, time.Time{}, true
	}
	return parseRange(c, fromKey, toKey)
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseRange(c, "from", "to")
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), portssvc.ReportPeriod{From: from, To: to})
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to build trial balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, from, to))
}

func (h *reportingHandler) generalLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseRange(c, "from", "to")
	if !ok {
		return
	}

	var accountCodes []string
	if raw := c.Query("accounts"); raw != "" {
		accountCodes = strings.Split(raw, ",")
	}

	accounts, err := h.ledgerService.GeneralLedger(c.Request.Context(), portssvc.ReportPeriod{From: from, To: to}, accountCodes)
	if err != nil {
		logger.Error("Failed to build general ledger", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to build general ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(accounts, from, to))
}

func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, to, ok := parseRange(c, "from", "to")
	if !ok {
		return
	}
	prevFrom, prevTo, ok := parseOptionalRange(c, "prevFrom", "prevTo")
	if !ok {
		return
	}

	stmt, err := h.reportingService.IncomeStatement(c.Request.Context(),
		portssvc.ReportPeriod{From: from, To: to},
		portssvc.ReportPeriod{From: prevFrom, To: prevTo})
	if err != nil {
		logger.Error("Failed to build income statement", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to build income statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(stmt, from, to))
}

func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, err := time.Parse(queryDateLayout, c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be a YYYY-MM-DD date"})
		return
	}

	var prevAsOf time.Time
	if raw := c.Query("prevAsOf"); raw != "" {
		prevAsOf, err = time.Parse(queryDateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prevAsOf must be a YYYY-MM-DD date"})
			return
		}
	}

	sheet, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf, prevAsOf)
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		respondWithError(c, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(sheet, asOf))
}
