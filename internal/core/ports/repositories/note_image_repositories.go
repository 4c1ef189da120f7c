package repositories

import (
	"context"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// NoteImageRepository defines persistence operations for currency note images.
type NoteImageRepository interface {
	// SaveNoteImage inserts image metadata and returns it with its assigned ID.
	SaveNoteImage(ctx context.Context, image domain.NoteImage) (domain.NoteImage, error)
	FindNoteImageByID(ctx context.Context, imageID int64) (*domain.NoteImage, error)
	// ListActiveImages returns non-deleted images for a currency, newest first.
	ListActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error)
	// MarkImageDeleted sets the soft-delete fields on a row that is not
	// already deleted.
	MarkImageDeleted(ctx context.Context, imageID int64, deletedAt time.Time, deletedBy, reason string) error
}
