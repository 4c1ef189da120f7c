package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotSetDisplay is rendered for any rate range that has no bounds stored.
const NotSetDisplay = "Not set"

// Currency represents a currency tradable against AED, with optional
// buy/sell rate ranges maintained by operators.
type Currency struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"` // unique, stored uppercase

	// Buying range: the rate at which the exchange buys this currency from a customer.
	MinBuyingRate decimal.NullDecimal `json:"minBuyingRateToAED"`
	MaxBuyingRate decimal.NullDecimal `json:"maxBuyingRateToAED"`
	// Selling range: the rate at which the exchange sells this currency to a customer.
	MinSellingRate decimal.NullDecimal `json:"minSellingRateToAED"`
	MaxSellingRate decimal.NullDecimal `json:"maxSellingRateToAED"`

	AdminNotes     string     `json:"adminNotes"`
	NotesUpdatedAt *time.Time `json:"notesUpdatedAt"`
}

// HasBuyingRange reports whether both buying bounds are set.
func (c Currency) HasBuyingRange() bool {
	return c.MinBuyingRate.Valid && c.MaxBuyingRate.Valid
}

// HasSellingRange reports whether both selling bounds are set.
func (c Currency) HasSellingRange() bool {
	return c.MinSellingRate.Valid && c.MaxSellingRate.Valid
}

// HasExchangeRates reports whether any rate range is set.
func (c Currency) HasExchangeRates() bool {
	return c.HasBuyingRange() || c.HasSellingRange()
}

// BuyingRateDisplay formats the buying range as "{min} - {max}" with six
// decimal places, or NotSetDisplay when the range is absent.
func (c Currency) BuyingRateDisplay() string {
	if !c.HasBuyingRange() {
		return NotSetDisplay
	}
	return formatRateRange(c.MinBuyingRate.Decimal, c.MaxBuyingRate.Decimal)
}

// SellingRateDisplay formats the selling range, or NotSetDisplay.
func (c Currency) SellingRateDisplay() string {
	if !c.HasSellingRange() {
		return NotSetDisplay
	}
	return formatRateRange(c.MinSellingRate.Decimal, c.MaxSellingRate.Decimal)
}

// BuyingFromAEDDisplay is the range at which the exchange converts AED into
// this currency when a customer sells AED. It inverts the selling range; the
// bounds swap so the result stays ascending. Zero bounds are rejected at
// write time, so the inversion cannot divide by zero here.
func (c Currency) BuyingFromAEDDisplay() string {
	if !c.HasSellingRange() {
		return NotSetDisplay
	}
	return formatRateRange(invertRate(c.MaxSellingRate.Decimal), invertRate(c.MinSellingRate.Decimal))
}

// SellingFromAEDDisplay is the range at which the exchange sells AED for this
// currency, derived by inverting the buying range.
func (c Currency) SellingFromAEDDisplay() string {
	if !c.HasBuyingRange() {
		return NotSetDisplay
	}
	return formatRateRange(invertRate(c.MaxBuyingRate.Decimal), invertRate(c.MinBuyingRate.Decimal))
}

func formatRateRange(min, max decimal.Decimal) string {
	return min.StringFixed(6) + " - " + max.StringFixed(6)
}

func invertRate(d decimal.Decimal) decimal.Decimal {
	return decimal.New(1, 0).Div(d)
}
