package services

import (
	"context"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// NoteSvcFacade defines the note/image store operations exposed to handlers.
type NoteSvcFacade interface {
	// AttachImage validates, re-encodes and compresses the upload, stores the
	// blob under an opaque filename, persists metadata and records history.
	AttachImage(ctx context.Context, currencyID int64, data []byte, originalFilename, caption, operator string) (*domain.NoteImage, error)
	// SoftDeleteImage marks an image deleted. Deleting an already-deleted
	// image fails with apperrors.ErrAlreadyDeleted; the stored file remains.
	SoftDeleteImage(ctx context.Context, imageID int64, operator, reason string) error
	ActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error)
	// HasNotes reports whether the currency has a text note or any active image.
	HasNotes(ctx context.Context, currency domain.Currency) (bool, error)
	// LatestNoteTimestamp is the max of the note-updated timestamp and active
	// image upload times, or nil when neither exists.
	LatestNoteTimestamp(ctx context.Context, currency domain.Currency) (*time.Time, error)
	// ImageFilePath resolves an opaque stored filename to a servable path,
	// rejecting anything that is not a generated name.
	ImageFilePath(filename string) (string, error)
	// PurgeImageFile removes the stored blob of a soft-deleted image. Not
	// exposed over HTTP; intended for offline retention cleanup.
	PurgeImageFile(ctx context.Context, imageID int64) error
}
