package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/alnoorex/currency_exchange_admin/internal/utils"
	"github.com/alnoorex/currency_exchange_admin/internal/utils/images"
)

// storedNamePattern matches the opaque filenames this service generates:
// 16 random bytes hex-encoded plus the jpeg extension.
var storedNamePattern = regexp.MustCompile(`^[a-f0-9]{32}\.jpg$`)

// NoteService manages the note/image store: uploads, soft deletes and the
// derived note metadata the rates views need.
type NoteService struct {
	noteImageRepo  portsrepo.NoteImageRepository
	currencyRepo   portsrepo.CurrencyRepository
	history        portssvc.HistorySvcFacade
	uploadDir      string
	maxUploadBytes int64
}

func NewNoteService(
	noteImageRepo portsrepo.NoteImageRepository,
	currencyRepo portsrepo.CurrencyRepository,
	history portssvc.HistorySvcFacade,
	uploadDir string,
	maxUploadBytes int64,
) *NoteService {
	return &NoteService{
		noteImageRepo:  noteImageRepo,
		currencyRepo:   currencyRepo,
		history:        history,
		uploadDir:      uploadDir,
		maxUploadBytes: maxUploadBytes,
	}
}

// AttachImage validates the upload, re-encodes it to a compressed JPEG, writes
// the blob under an opaque name and persists the metadata row.
func (s *NoteService) AttachImage(ctx context.Context, currencyID int64, data []byte, originalFilename, caption, operator string) (*domain.NoteImage, error) {
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		return nil, err
	}

	if !images.AllowedExtension(originalFilename) {
		return nil, validationError(fmt.Sprintf("file type of %s is not allowed", originalFilename))
	}
	if len(data) == 0 {
		return nil, validationError("uploaded file is empty")
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, validationError(fmt.Sprintf("uploaded file exceeds the %d byte limit", s.maxUploadBytes))
	}

	compressed, err := images.Compress(data, int(s.maxUploadBytes))
	if err != nil {
		return nil, validationError("uploaded file could not be decoded as an image")
	}

	name, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image filename: %w", err)
	}
	storedName := name + images.OutputExtension

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	fullPath := filepath.Join(s.uploadDir, storedName)
	if err := os.WriteFile(fullPath, compressed, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store image file: %w", err)
	}

	now := time.Now().UTC()
	image := domain.NoteImage{
		CurrencyID:       currencyID,
		Filename:         storedName,
		OriginalFilename: originalFilename,
		FileSize:         int64(len(compressed)),
		MimeType:         images.OutputMIMEType,
		Caption:          caption,
		UploadedAt:       now,
	}

	saved, err := s.noteImageRepo.SaveNoteImage(ctx, image)
	if err != nil {
		if rmErr := os.Remove(fullPath); rmErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to remove orphaned image file",
				slog.String("path", fullPath),
				slog.String("error", rmErr.Error()),
			)
		}
		return nil, fmt.Errorf("failed to save image metadata: %w", err)
	}

	s.history.RecordImageChange(ctx, saved, domain.ChangeTypeCreated, operator, "Image uploaded", now)

	return &saved, nil
}

// SoftDeleteImage marks an image deleted. The stored file is kept so the
// audit trail can still reference it.
func (s *NoteService) SoftDeleteImage(ctx context.Context, imageID int64, operator, reason string) error {
	image, err := s.noteImageRepo.FindNoteImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if image.IsDeleted() {
		return fmt.Errorf("image %d: %w", imageID, apperrors.ErrAlreadyDeleted)
	}

	if reason == "" {
		reason = "Image deleted"
	}
	now := time.Now().UTC()
	if err := s.noteImageRepo.MarkImageDeleted(ctx, imageID, now, operator, reason); err != nil {
		return err
	}

	s.history.RecordImageChange(ctx, *image, domain.ChangeTypeDeleted, operator, reason, now)
	return nil
}

// ActiveImages returns the non-deleted images for a currency, newest first.
func (s *NoteService) ActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error) {
	imgs, err := s.noteImageRepo.ListActiveImages(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images for currency %d: %w", currencyID, err)
	}
	if imgs == nil {
		imgs = []domain.NoteImage{}
	}
	return imgs, nil
}

// HasNotes reports whether a currency has a text note or any active image.
func (s *NoteService) HasNotes(ctx context.Context, currency domain.Currency) (bool, error) {
	if currency.AdminNotes != "" {
		return true, nil
	}
	imgs, err := s.noteImageRepo.ListActiveImages(ctx, currency.ID)
	if err != nil {
		return false, fmt.Errorf("failed to list images for currency %d: %w", currency.ID, err)
	}
	return len(imgs) > 0, nil
}

// LatestNoteTimestamp returns the most recent note activity for the currency,
// considering both the text note timestamp and active image uploads.
func (s *NoteService) LatestNoteTimestamp(ctx context.Context, currency domain.Currency) (*time.Time, error) {
	var latest *time.Time
	if currency.NotesUpdatedAt != nil {
		t := *currency.NotesUpdatedAt
		latest = &t
	}

	imgs, err := s.noteImageRepo.ListActiveImages(ctx, currency.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images for currency %d: %w", currency.ID, err)
	}
	for _, img := range imgs {
		if latest == nil || img.UploadedAt.After(*latest) {
			t := img.UploadedAt
			latest = &t
		}
	}
	return latest, nil
}

// PurgeImageFile removes the stored blob of a soft-deleted image. The
// metadata row stays for the audit trail. Purging an active image is refused.
func (s *NoteService) PurgeImageFile(ctx context.Context, imageID int64) error {
	image, err := s.noteImageRepo.FindNoteImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if !image.IsDeleted() {
		return validationError("cannot purge the file of an active image")
	}

	path, err := s.ImageFilePath(image.Filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to purge image file %s: %w", image.Filename, err)
	}
	return nil
}

// ImageFilePath resolves a stored filename to its path under the upload
// directory. Anything that does not look like a generated name is rejected,
// which also rules out traversal.
func (s *NoteService) ImageFilePath(filename string) (string, error) {
	if !storedNamePattern.MatchString(filename) {
		return "", fmt.Errorf("image %s: %w", filename, apperrors.ErrNotFound)
	}
	return filepath.Join(s.uploadDir, filename), nil
}
