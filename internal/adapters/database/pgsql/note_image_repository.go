package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNoteImageRepository struct {
	pool *pgxpool.Pool
}

// NewPgxNoteImageRepository creates a new repository for note image metadata.
func NewPgxNoteImageRepository(pool *pgxpool.Pool) portsrepo.NoteImageRepository {
	return &PgxNoteImageRepository{pool: pool}
}

const noteImageColumns = `id, currency_id, filename, original_filename, file_size, mime_type,
	COALESCE(caption, ''), uploaded_at,
	deleted_at, COALESCE(deleted_by, ''), COALESCE(delete_reason, '')`

func scanNoteImage(row pgx.Row) (domain.NoteImage, error) {
	var img domain.NoteImage
	err := row.Scan(
		&img.ID,
		&img.CurrencyID,
		&img.Filename,
		&img.OriginalFilename,
		&img.FileSize,
		&img.MimeType,
		&img.Caption,
		&img.UploadedAt,
		&img.DeletedAt,
		&img.DeletedBy,
		&img.DeleteReason,
	)
	return img, err
}

// SaveNoteImage inserts image metadata and returns it with its assigned ID.
func (r *PgxNoteImageRepository) SaveNoteImage(ctx context.Context, image domain.NoteImage) (domain.NoteImage, error) {
	query := `
		INSERT INTO note_images (currency_id, filename, original_filename, file_size, mime_type, caption, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		image.CurrencyID,
		image.Filename,
		image.OriginalFilename,
		image.FileSize,
		image.MimeType,
		image.Caption,
		image.UploadedAt,
	).Scan(&image.ID)
	if err != nil {
		return domain.NoteImage{}, fmt.Errorf("failed to save note image for currency %d: %w", image.CurrencyID, err)
	}
	return image, nil
}

// FindNoteImageByID retrieves an image row, deleted or not.
func (r *PgxNoteImageRepository) FindNoteImageByID(ctx context.Context, imageID int64) (*domain.NoteImage, error) {
	query := `SELECT ` + noteImageColumns + ` FROM note_images WHERE id = $1;`
	img, err := scanNoteImage(r.pool.QueryRow(ctx, query, imageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find note image %d: %w", imageID, err)
	}
	return &img, nil
}

// ListActiveImages returns non-deleted images for a currency, newest first.
func (r *PgxNoteImageRepository) ListActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error) {
	query := `SELECT ` + noteImageColumns + `
		FROM note_images
		WHERE currency_id = $1 AND deleted_at IS NULL
		ORDER BY uploaded_at DESC, id DESC;`
	rows, err := r.pool.Query(ctx, query, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active images for currency %d: %w", currencyID, err)
	}
	defer rows.Close()

	images, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.NoteImage, error) {
		return scanNoteImage(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active images: %w", err)
	}
	if images == nil {
		images = []domain.NoteImage{}
	}
	return images, nil
}

// MarkImageDeleted sets the soft-delete fields. The deleted_at IS NULL guard
// makes concurrent double-deletes lose cleanly.
func (r *PgxNoteImageRepository) MarkImageDeleted(ctx context.Context, imageID int64, deletedAt time.Time, deletedBy, reason string) error {
	query := `
		UPDATE note_images
		SET deleted_at = $2, deleted_by = $3, delete_reason = NULLIF($4, '')
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, imageID, deletedAt, deletedBy, reason)
	if err != nil {
		return fmt.Errorf("failed to mark image %d deleted: %w", imageID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyDeleted
	}
	return nil
}
