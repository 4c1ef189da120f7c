package services

import (
	"context"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// HistorySvcFacade is the audit trail. Record* calls are best-effort: failures
// are logged and never propagate to the triggering mutation.
type HistorySvcFacade interface {
	RecordCurrencyChange(ctx context.Context, currency domain.Currency, changeType domain.ChangeType, operator, reason string, at time.Time)
	RecordTextNoteChange(ctx context.Context, currencyID int64, content string, actionType domain.ChangeType, operator, reason string, at time.Time)
	RecordImageChange(ctx context.Context, image domain.NoteImage, actionType domain.ChangeType, operator, reason string, at time.Time)

	CurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error)
	NoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error)
	// RecentActivity returns the latest currency and note history rows across
	// all currencies, each capped at limit.
	RecentActivity(ctx context.Context, limit int) ([]domain.CurrencyHistory, []domain.NoteHistory, error)
}
