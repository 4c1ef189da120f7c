package dto

import (
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyFormRequest carries the add/update currency form. Rate bounds arrive
// as raw strings; empty means absent and the service parses/validates pairs.
type CurrencyFormRequest struct {
	Name           string `form:"name" binding:"required"`
	Symbol         string `form:"symbol"`
	MinBuyingRate  string `form:"min_buying_rate_to_aed"`
	MaxBuyingRate  string `form:"max_buying_rate_to_aed"`
	MinSellingRate string `form:"min_selling_rate_to_aed"`
	MaxSellingRate string `form:"max_selling_rate_to_aed"`
	AdminNotes     string `form:"admin_notes"`
	ChangeReason   string `form:"change_reason"`
}

// CurrencyView is the display projection of a currency used by templates and
// the public JSON endpoints. All derived fields are computed, never stored.
type CurrencyView struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Symbol               string     `json:"symbol"`
	MinBuyingRate        *string    `json:"min_buying_rate_to_aed"`
	MaxBuyingRate        *string    `json:"max_buying_rate_to_aed"`
	MinSellingRate       *string    `json:"min_selling_rate_to_aed"`
	MaxSellingRate       *string    `json:"max_selling_rate_to_aed"`
	AdminNotes           string     `json:"admin_notes"`
	HasExchangeRates     bool       `json:"has_exchange_rates"`
	HasBuyingRange       bool       `json:"has_buying_range"`
	HasSellingRange      bool       `json:"has_selling_range"`
	BuyingRateDisplay    string     `json:"buying_rate_display"`
	SellingRateDisplay   string     `json:"selling_rate_display"`
	BuyingFromAEDDisplay string     `json:"buying_from_aed_display"`
	SellingFromAEDDisplay string    `json:"selling_from_aed_display"`
	HasNotes             bool       `json:"has_notes"`
	LatestNoteTimestamp  *time.Time `json:"latest_note_timestamp"`
}

// ToCurrencyView projects a domain currency plus note-store facts into a view.
func ToCurrencyView(c domain.Currency, hasNotes bool, latestNote *time.Time) CurrencyView {
	return CurrencyView{
		ID:                    c.ID,
		Name:                  c.Name,
		Symbol:                c.Symbol,
		MinBuyingRate:         rateString(c.MinBuyingRate),
		MaxBuyingRate:         rateString(c.MaxBuyingRate),
		MinSellingRate:        rateString(c.MinSellingRate),
		MaxSellingRate:        rateString(c.MaxSellingRate),
		AdminNotes:            c.AdminNotes,
		HasExchangeRates:      c.HasExchangeRates(),
		HasBuyingRange:        c.HasBuyingRange(),
		HasSellingRange:       c.HasSellingRange(),
		BuyingRateDisplay:     c.BuyingRateDisplay(),
		SellingRateDisplay:    c.SellingRateDisplay(),
		BuyingFromAEDDisplay:  c.BuyingFromAEDDisplay(),
		SellingFromAEDDisplay: c.SellingFromAEDDisplay(),
		HasNotes:              hasNotes,
		LatestNoteTimestamp:   latestNote,
	}
}

func rateString(nd decimal.NullDecimal) *string {
	if !nd.Valid {
		return nil
	}
	s := nd.Decimal.String()
	return &s
}
