package services

import (
	"context"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
)

// CurrencySvcFacade defines the currency business operations exposed to handlers.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error)
	// DeleteCurrency snapshots the currency to history, soft-deletes its
	// active images (with history rows), records the terminal history rows,
	// then removes the currency row.
	DeleteCurrency(ctx context.Context, currencyID int64, operator string) error
	GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	CountCurrencies(ctx context.Context) (int64, error)
}
