package pgsql

import (
	"context"
	"fmt"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewPgxHistoryRepository creates a new repository for the audit trail.
func NewPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepository {
	return &PgxHistoryRepository{pool: pool}
}

const currencyHistoryColumns = `id, currency_id, name, symbol,
	min_buying_rate_to_aed, max_buying_rate_to_aed,
	min_selling_rate_to_aed, max_selling_rate_to_aed,
	COALESCE(admin_notes, ''), notes_updated_at,
	created_at, COALESCE(created_by, ''), change_type, COALESCE(change_reason, '')`

const noteHistoryColumns = `id, currency_id, note_type, COALESCE(content, ''),
	COALESCE(image_filename, ''), COALESCE(image_original_filename, ''), COALESCE(image_caption, ''),
	created_at, COALESCE(created_by, ''), action_type, COALESCE(action_reason, '')`

func scanCurrencyHistory(row pgx.Row) (domain.CurrencyHistory, error) {
	var h domain.CurrencyHistory
	err := row.Scan(
		&h.ID,
		&h.CurrencyID,
		&h.Name,
		&h.Symbol,
		&h.MinBuyingRate,
		&h.MaxBuyingRate,
		&h.MinSellingRate,
		&h.MaxSellingRate,
		&h.AdminNotes,
		&h.NotesUpdatedAt,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.ChangeType,
		&h.ChangeReason,
	)
	return h, err
}

func scanNoteHistory(row pgx.Row) (domain.NoteHistory, error) {
	var h domain.NoteHistory
	err := row.Scan(
		&h.ID,
		&h.CurrencyID,
		&h.NoteType,
		&h.Content,
		&h.ImageFilename,
		&h.ImageOriginalFilename,
		&h.ImageCaption,
		&h.CreatedAt,
		&h.CreatedBy,
		&h.ActionType,
		&h.ActionReason,
	)
	return h, err
}

// SaveCurrencyHistory appends an immutable currency snapshot row.
func (r *PgxHistoryRepository) SaveCurrencyHistory(ctx context.Context, history domain.CurrencyHistory) error {
	query := `
		INSERT INTO currency_history (currency_id, name, symbol,
			min_buying_rate_to_aed, max_buying_rate_to_aed,
			min_selling_rate_to_aed, max_selling_rate_to_aed,
			admin_notes, notes_updated_at, created_at, created_by, change_type, change_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, NULLIF($13, ''));
	`
	_, err := r.pool.Exec(ctx, query,
		history.CurrencyID,
		history.Name,
		history.Symbol,
		history.MinBuyingRate,
		history.MaxBuyingRate,
		history.MinSellingRate,
		history.MaxSellingRate,
		history.AdminNotes,
		history.NotesUpdatedAt,
		history.CreatedAt,
		history.CreatedBy,
		history.ChangeType,
		history.ChangeReason,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency history for currency %d: %w", history.CurrencyID, err)
	}
	return nil
}

// SaveNoteHistory appends an immutable note/image lifecycle row.
func (r *PgxHistoryRepository) SaveNoteHistory(ctx context.Context, history domain.NoteHistory) error {
	query := `
		INSERT INTO note_history (currency_id, note_type, content,
			image_filename, image_original_filename, image_caption,
			created_at, created_by, action_type, action_reason)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, NULLIF($10, ''));
	`
	_, err := r.pool.Exec(ctx, query,
		history.CurrencyID,
		history.NoteType,
		history.Content,
		history.ImageFilename,
		history.ImageOriginalFilename,
		history.ImageCaption,
		history.CreatedAt,
		history.CreatedBy,
		history.ActionType,
		history.ActionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to save note history for currency %d: %w", history.CurrencyID, err)
	}
	return nil
}

// ListCurrencyHistory returns all history rows for one currency, newest first.
func (r *PgxHistoryRepository) ListCurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error) {
	query := `SELECT ` + currencyHistoryColumns + `
		FROM currency_history WHERE currency_id = $1
		ORDER BY created_at DESC, id DESC;`
	rows, err := r.pool.Query(ctx, query, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency history for %d: %w", currencyID, err)
	}
	defer rows.Close()

	return collectCurrencyHistory(rows)
}

// ListNoteHistory returns all note history rows for one currency, newest first.
func (r *PgxHistoryRepository) ListNoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error) {
	query := `SELECT ` + noteHistoryColumns + `
		FROM note_history WHERE currency_id = $1
		ORDER BY created_at DESC, id DESC;`
	rows, err := r.pool.Query(ctx, query, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query note history for %d: %w", currencyID, err)
	}
	defer rows.Close()

	return collectNoteHistory(rows)
}

// ListRecentCurrencyHistory returns the latest rows across all currencies.
func (r *PgxHistoryRepository) ListRecentCurrencyHistory(ctx context.Context, limit int) ([]domain.CurrencyHistory, error) {
	query := `SELECT ` + currencyHistoryColumns + `
		FROM currency_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1;`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent currency history: %w", err)
	}
	defer rows.Close()

	return collectCurrencyHistory(rows)
}

// ListRecentNoteHistory returns the latest note rows across all currencies.
func (r *PgxHistoryRepository) ListRecentNoteHistory(ctx context.Context, limit int) ([]domain.NoteHistory, error) {
	query := `SELECT ` + noteHistoryColumns + `
		FROM note_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1;`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent note history: %w", err)
	}
	defer rows.Close()

	return collectNoteHistory(rows)
}

func collectCurrencyHistory(rows pgx.Rows) ([]domain.CurrencyHistory, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyHistory, error) {
		return scanCurrencyHistory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency history: %w", err)
	}
	if items == nil {
		items = []domain.CurrencyHistory{}
	}
	return items, nil
}

func collectNoteHistory(rows pgx.Rows) ([]domain.NoteHistory, error) {
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.NoteHistory, error) {
		return scanNoteHistory(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan note history: %w", err)
	}
	if items == nil {
		items = []domain.NoteHistory{}
	}
	return items, nil
}
