package repositories

import (
	"context"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// CurrencyRepository defines persistence operations for currencies.
type CurrencyRepository interface {
	// SaveCurrency inserts a new currency and returns it with its assigned ID.
	SaveCurrency(ctx context.Context, currency domain.Currency) (domain.Currency, error)
	// UpdateCurrency persists changes to an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error
	// DeleteCurrency hard-deletes a currency row. Owned note_images rows
	// cascade; history rows are not foreign-keyed and survive.
	DeleteCurrency(ctx context.Context, currencyID int64) error
	FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)
	FindCurrencyBySymbol(ctx context.Context, symbol string) (*domain.Currency, error)
	// ListCurrencies returns all currencies ordered by symbol ascending.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	CountCurrencies(ctx context.Context) (int64, error)
}
