package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recentActivityLimit caps the unscoped dashboard feed.
const recentActivityLimit = 50

// historyHandler serves the audit trail views.
type historyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	historyService  portssvc.HistorySvcFacade
}

func newHistoryHandler(cs portssvc.CurrencySvcFacade, hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{
		currencyService: cs,
		historyService:  hs,
	}
}

// registerHistoryRoutes registers the authenticated audit views.
func registerHistoryRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(currencyService, historyService)

	rg.GET("/history", h.recentActivity)
	rg.GET("/currency_history/:id", h.currencyHistory)
}

// recentActivity renders the cross-currency recent changes feed.
func (h *historyHandler) recentActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyRows, noteRows, err := h.historyService.RecentActivity(c.Request.Context(), recentActivityLimit)
	if err != nil {
		logger.Error("Failed to load recent activity", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load history")
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"CurrencyHistory": currencyRows,
		"NoteHistory":     noteRows,
	})
}

// currencyHistory renders the full audit trail for one currency. The currency
// itself may already be hard-deleted; history rows outlive it, so a missing
// currency only suppresses the header context.
func (h *historyHandler) currencyHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid currency id")
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to load currency", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load history")
		return
	}

	currencyRows, err := h.historyService.CurrencyHistory(c.Request.Context(), currencyID)
	if err != nil {
		logger.Error("Failed to load currency history", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load history")
		return
	}

	noteRows, err := h.historyService.NoteHistory(c.Request.Context(), currencyID)
	if err != nil {
		logger.Error("Failed to load note history", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load history")
		return
	}

	c.HTML(http.StatusOK, "currency_history.html", gin.H{
		"Currency":        currency,
		"CurrencyHistory": currencyRows,
		"NoteHistory":     noteRows,
	})
}
