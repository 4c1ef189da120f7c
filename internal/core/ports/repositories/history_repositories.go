package repositories

import (
	"context"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// HistoryRepository defines the append-only audit trail store.
// Rows are never updated or deleted.
type HistoryRepository interface {
	SaveCurrencyHistory(ctx context.Context, history domain.CurrencyHistory) error
	SaveNoteHistory(ctx context.Context, history domain.NoteHistory) error
	// ListCurrencyHistory returns all currency history rows for a currency, newest first.
	ListCurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error)
	// ListNoteHistory returns all note history rows for a currency, newest first.
	ListNoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error)
	// ListRecentCurrencyHistory returns the latest rows across all currencies.
	ListRecentCurrencyHistory(ctx context.Context, limit int) ([]domain.CurrencyHistory, error)
	// ListRecentNoteHistory returns the latest note rows across all currencies.
	ListRecentNoteHistory(ctx context.Context, limit int) ([]domain.NoteHistory, error)
}
