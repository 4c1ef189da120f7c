package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
)

// HistoryService writes and reads the append-only audit trail.
//
// Record* methods are deliberately best-effort: the primary mutation is
// authoritative and a failed history write must never roll it back, so
// failures are logged and swallowed here.
type HistoryService struct {
	historyRepo portsrepo.HistoryRepository
}

func NewHistoryService(historyRepo portsrepo.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// RecordCurrencyChange appends a currency snapshot row.
func (s *HistoryService) RecordCurrencyChange(ctx context.Context, currency domain.Currency, changeType domain.ChangeType, operator, reason string, at time.Time) {
	h := domain.NewCurrencyHistory(currency, changeType, operator, reason, at)
	if err := s.historyRepo.SaveCurrencyHistory(ctx, h); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write currency history",
			slog.Int64("currency_id", currency.ID),
			slog.String("change_type", string(changeType)),
			slog.String("error", err.Error()),
		)
	}
}

// RecordTextNoteChange appends a text note lifecycle row.
func (s *HistoryService) RecordTextNoteChange(ctx context.Context, currencyID int64, content string, actionType domain.ChangeType, operator, reason string, at time.Time) {
	h := domain.NewTextNoteHistory(currencyID, content, actionType, operator, reason, at)
	if err := s.historyRepo.SaveNoteHistory(ctx, h); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write note history",
			slog.Int64("currency_id", currencyID),
			slog.String("action_type", string(actionType)),
			slog.String("error", err.Error()),
		)
	}
}

// RecordImageChange appends an image lifecycle row.
func (s *HistoryService) RecordImageChange(ctx context.Context, image domain.NoteImage, actionType domain.ChangeType, operator, reason string, at time.Time) {
	h := domain.NewImageNoteHistory(image, actionType, operator, reason, at)
	if err := s.historyRepo.SaveNoteHistory(ctx, h); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write image history",
			slog.Int64("currency_id", image.CurrencyID),
			slog.Int64("image_id", image.ID),
			slog.String("action_type", string(actionType)),
			slog.String("error", err.Error()),
		)
	}
}

// CurrencyHistory returns the audit rows for one currency, newest first.
func (s *HistoryService) CurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error) {
	return s.historyRepo.ListCurrencyHistory(ctx, currencyID)
}

// NoteHistory returns the note/image audit rows for one currency, newest first.
func (s *HistoryService) NoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error) {
	return s.historyRepo.ListNoteHistory(ctx, currencyID)
}

// RecentActivity returns the latest rows across all currencies for the
// operator dashboard feed.
func (s *HistoryService) RecentActivity(ctx context.Context, limit int) ([]domain.CurrencyHistory, []domain.NoteHistory, error) {
	currencyRows, err := s.historyRepo.ListRecentCurrencyHistory(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	noteRows, err := s.historyRepo.ListRecentNoteHistory(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	return currencyRows, noteRows, nil
}
