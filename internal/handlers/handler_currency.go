package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles the operator currency CRUD surface.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	noteService     portssvc.NoteSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, ns portssvc.NoteSvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		noteService:     ns,
	}
}

// registerCurrencyRoutes registers the authenticated currency routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, noteService portssvc.NoteSvcFacade) {
	h := newCurrencyHandler(currencyService, noteService)

	rg.GET("/dashboard", h.dashboard)
	rg.POST("/add_currency", h.addCurrency)
	rg.POST("/update_currency/:id", h.updateCurrency)
	rg.POST("/delete_currency/:id", h.deleteCurrency)
	rg.GET("/from_aed", h.fromAED)
	rg.GET("/to_aed", h.toAED)
}

// redirectDashboard bounces back to the dashboard carrying a success or error
// banner as a query parameter.
func redirectDashboard(c *gin.Context, msg, errMsg string) {
	target := "/dashboard"
	switch {
	case errMsg != "":
		target += "?error=" + url.QueryEscape(errMsg)
	case msg != "":
		target += "?msg=" + url.QueryEscape(msg)
	}
	c.Redirect(http.StatusSeeOther, target)
}

// dashboard renders the operator currency list with edit forms.
func (h *currencyHandler) dashboard(c *gin.Context) {
	h.renderDashboard(c, http.StatusOK, c.Query("msg"), c.Query("error"), nil)
}

// renderDashboard renders the dashboard page, optionally echoing back a failed
// form submission so the operator does not lose their input.
func (h *currencyHandler) renderDashboard(c *gin.Context, status int, msg, errMsg string, form *dto.CurrencyFormRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies for dashboard", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	views, err := buildCurrencyViews(c.Request.Context(), h.noteService, currencies)
	if err != nil {
		logger.Error("Failed to build currency views", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.HTML(status, "dashboard.html", gin.H{
		"Currencies": views,
		"Msg":        msg,
		"Error":      errMsg,
		"Form":       form,
	})
}

// addCurrency handles the add-currency form submission.
func (h *currencyHandler) addCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	var req dto.CurrencyFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderDashboard(c, http.StatusBadRequest, "", "Currency name is required", &req)
		return
	}

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req, operator)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			h.renderDashboard(c, http.StatusBadRequest, "", validationMessage(err), &req)
		case errors.Is(err, apperrors.ErrDuplicate):
			h.renderDashboard(c, http.StatusConflict, "", "A currency with that symbol already exists", &req)
		default:
			logger.Error("Failed to create currency", slog.String("error", err.Error()))
			redirectDashboard(c, "", "Failed to add currency")
		}
		return
	}

	logger.Info("Currency created", slog.String("symbol", created.Symbol), slog.Int64("currency_id", created.ID))
	redirectDashboard(c, created.Symbol+" added successfully", "")
}

// updateCurrency handles the per-row update form submission.
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectDashboard(c, "", "Invalid currency id")
		return
	}

	var req dto.CurrencyFormRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderDashboard(c, http.StatusBadRequest, "", "Currency name is required", &req)
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req, operator)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			h.renderDashboard(c, http.StatusBadRequest, "", validationMessage(err), &req)
		case errors.Is(err, apperrors.ErrNotFound):
			redirectDashboard(c, "", "Currency not found")
		default:
			logger.Error("Failed to update currency", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
			redirectDashboard(c, "", "Failed to update currency")
		}
		return
	}

	logger.Info("Currency updated", slog.String("symbol", updated.Symbol), slog.Int64("currency_id", currencyID))
	redirectDashboard(c, updated.Symbol+" updated successfully", "")
}

// deleteCurrency handles the delete form submission.
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operator, _ := middleware.GetOperatorFromContext(c)

	currencyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectDashboard(c, "", "Invalid currency id")
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID, operator); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			redirectDashboard(c, "", "Currency not found")
			return
		}
		logger.Error("Failed to delete currency", slog.Int64("currency_id", currencyID), slog.String("error", err.Error()))
		redirectDashboard(c, "", "Failed to delete currency")
		return
	}

	logger.Info("Currency deleted", slog.Int64("currency_id", currencyID))
	redirectDashboard(c, "Currency deleted successfully", "")
}

// fromAED renders the AED-to-foreign conversion sheet.
func (h *currencyHandler) fromAED(c *gin.Context) {
	h.renderConversionSheet(c, "from_aed.html")
}

// toAED renders the foreign-to-AED conversion sheet.
func (h *currencyHandler) toAED(c *gin.Context) {
	h.renderConversionSheet(c, "to_aed.html")
}

func (h *currencyHandler) renderConversionSheet(c *gin.Context, template string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load page")
		return
	}

	views, err := buildCurrencyViews(c.Request.Context(), h.noteService, currencies)
	if err != nil {
		logger.Error("Failed to build currency views", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Failed to load page")
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"Currencies": views,
	})
}

// validationMessage strips the sentinel prefix so templates show only the
// human-readable part.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
