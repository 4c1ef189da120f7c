package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

const emptyNotesMessage = "No notes available for this currency."

// publicHandler serves the unauthenticated surface.
type publicHandler struct {
	currencyService portssvc.CurrencySvcFacade
	noteService     portssvc.NoteSvcFacade
}

func newPublicHandler(cs portssvc.CurrencySvcFacade, ns portssvc.NoteSvcFacade) *publicHandler {
	return &publicHandler{
		currencyService: cs,
		noteService:     ns,
	}
}

// buildCurrencyViews projects currencies plus their note-store facts into the
// display views used by both the public board and the dashboard.
func buildCurrencyViews(ctx context.Context, ns portssvc.NoteSvcFacade, currencies []domain.Currency) ([]dto.CurrencyView, error) {
	views := make([]dto.CurrencyView, 0, len(currencies))
	for _, currency := range currencies {
		hasNotes, err := ns.HasNotes(ctx, currency)
		if err != nil {
			return nil, err
		}
		latest, err := ns.LatestNoteTimestamp(ctx, currency)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.ToCurrencyView(currency, hasNotes, latest))
	}
	return views, nil
}

// ratesBoard renders the read-only public rates page, currencies ordered by
// symbol ascending.
func (h *publicHandler) ratesBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies for rates board", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load rates")
		return
	}

	views, err := buildCurrencyViews(c.Request.Context(), h.noteService, currencies)
	if err != nil {
		logger.Error("Failed to build currency views", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load rates")
		return
	}

	c.HTML(http.StatusOK, "public_rates.html", gin.H{
		"Currencies": views,
	})
}

// currencyNotes returns the notes, derived rate displays and active image
// metadata for one currency as JSON.
func (h *publicHandler) currencyNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid currency id"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
			return
		}
		logger.Error("Failed to load currency notes", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load currency notes"})
		return
	}

	images, err := h.noteService.ActiveImages(c.Request.Context(), currencyID)
	if err != nil {
		logger.Error("Failed to list currency images", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load currency notes"})
		return
	}

	notes := currency.AdminNotes
	if notes == "" {
		notes = emptyNotesMessage
	}

	c.JSON(http.StatusOK, dto.CurrencyNotesResponse{
		ID:                    currency.ID,
		Symbol:                currency.Symbol,
		Name:                  currency.Name,
		Notes:                 notes,
		HasExchangeRates:      currency.HasExchangeRates(),
		BuyingRateDisplay:     currency.BuyingRateDisplay(),
		SellingRateDisplay:    currency.SellingRateDisplay(),
		BuyingFromAEDDisplay:  currency.BuyingFromAEDDisplay(),
		SellingFromAEDDisplay: currency.SellingFromAEDDisplay(),
		Images:                dto.ToNoteImageViews(images),
	})
}

// serveUpload streams a stored image blob by its opaque filename.
func (h *publicHandler) serveUpload(c *gin.Context) {
	path, err := h.noteService.ImageFilePath(c.Param("filename"))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if _, err := os.Stat(path); err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.File(path)
}

// health reports store connectivity via a trivial count query.
func (h *publicHandler) health(c *gin.Context) {
	count, err := h.currencyService.CountCurrencies(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "currencies": count})
}
