package domain_test

import (
	"testing"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func nd(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func TestCurrency_RangePresence(t *testing.T) {
	c := domain.Currency{Symbol: "USD", Name: "US Dollar"}
	assert.False(t, c.HasBuyingRange())
	assert.False(t, c.HasSellingRange())
	assert.False(t, c.HasExchangeRates())

	c.MinBuyingRate = nd("3.65")
	assert.False(t, c.HasBuyingRange(), "a single bound is not a range")

	c.MaxBuyingRate = nd("3.67")
	assert.True(t, c.HasBuyingRange())
	assert.True(t, c.HasExchangeRates())
	assert.False(t, c.HasSellingRange())
}

func TestCurrency_RateDisplays(t *testing.T) {
	c := domain.Currency{
		Symbol:         "USD",
		MinBuyingRate:  nd("3.65"),
		MaxBuyingRate:  nd("3.67"),
		MinSellingRate: nd("3.68"),
		MaxSellingRate: nd("3.70"),
	}

	assert.Equal(t, "3.650000 - 3.670000", c.BuyingRateDisplay())
	assert.Equal(t, "3.680000 - 3.700000", c.SellingRateDisplay())
}

func TestCurrency_RateDisplays_NotSet(t *testing.T) {
	c := domain.Currency{Symbol: "JPY"}

	assert.Equal(t, domain.NotSetDisplay, c.BuyingRateDisplay())
	assert.Equal(t, domain.NotSetDisplay, c.SellingRateDisplay())
	assert.Equal(t, domain.NotSetDisplay, c.BuyingFromAEDDisplay())
	assert.Equal(t, domain.NotSetDisplay, c.SellingFromAEDDisplay())
}

func TestCurrency_InverseDisplays(t *testing.T) {
	c := domain.Currency{
		Symbol:         "USD",
		MinBuyingRate:  nd("3.65"),
		MaxBuyingRate:  nd("3.67"),
		MinSellingRate: nd("3.68"),
		MaxSellingRate: nd("3.70"),
	}

	// Inverting the selling range: 1/3.70 .. 1/3.68, ascending.
	assert.Equal(t, "0.270270 - 0.271739", c.BuyingFromAEDDisplay())
	// Inverting the buying range: 1/3.67 .. 1/3.65, ascending.
	assert.Equal(t, "0.272480 - 0.273973", c.SellingFromAEDDisplay())
}

func TestCurrency_InverseDisplays_OnlyOneRange(t *testing.T) {
	c := domain.Currency{
		Symbol:        "GBP",
		MinBuyingRate: nd("4.50"),
		MaxBuyingRate: nd("4.60"),
	}

	// Buying from AED needs the selling range, which is absent.
	assert.Equal(t, domain.NotSetDisplay, c.BuyingFromAEDDisplay())
	assert.NotEqual(t, domain.NotSetDisplay, c.SellingFromAEDDisplay())
}

func TestNoteImage_IsDeleted(t *testing.T) {
	img := domain.NoteImage{ID: 1, CurrencyID: 2, Filename: "abc.jpg"}
	assert.False(t, img.IsDeleted())
}

func TestNewCurrencyHistory_OperatorFallback(t *testing.T) {
	c := domain.Currency{ID: 7, Symbol: "USD", Name: "US Dollar"}

	h := domain.NewCurrencyHistory(c, domain.ChangeTypeCreated, "", "bootstrap", time.Now())
	assert.Equal(t, domain.SystemOperator, h.CreatedBy)
	assert.Equal(t, domain.ChangeTypeCreated, h.ChangeType)
	assert.Equal(t, int64(7), h.CurrencyID)
	assert.Equal(t, "USD", h.Symbol)
}
