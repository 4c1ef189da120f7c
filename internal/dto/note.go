package dto

import (
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// NoteImageView is the public projection of an active note image.
type NoteImageView struct {
	ID               int64     `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	Caption          string    `json:"caption"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	UploadedAt       time.Time `json:"uploaded_at"`
	URL              string    `json:"url"`
}

// ToNoteImageView projects a domain image for JSON/templates.
func ToNoteImageView(img domain.NoteImage) NoteImageView {
	return NoteImageView{
		ID:               img.ID,
		Filename:         img.Filename,
		OriginalFilename: img.OriginalFilename,
		Caption:          img.Caption,
		FileSize:         img.FileSize,
		MimeType:         img.MimeType,
		UploadedAt:       img.UploadedAt,
		URL:              "/uploads/" + img.Filename,
	}
}

// ToNoteImageViews projects a slice of domain images.
func ToNoteImageViews(images []domain.NoteImage) []NoteImageView {
	views := make([]NoteImageView, len(images))
	for i, img := range images {
		views[i] = ToNoteImageView(img)
	}
	return views
}

// CurrencyNotesResponse is the payload of GET /currency_notes/{id}.
type CurrencyNotesResponse struct {
	ID                    int64           `json:"id"`
	Symbol                string          `json:"symbol"`
	Name                  string          `json:"name"`
	Notes                 string          `json:"notes"`
	HasExchangeRates      bool            `json:"has_exchange_rates"`
	BuyingRateDisplay     string          `json:"buying_rate_display"`
	SellingRateDisplay    string          `json:"selling_rate_display"`
	BuyingFromAEDDisplay  string          `json:"buying_from_aed_display"`
	SellingFromAEDDisplay string          `json:"selling_from_aed_display"`
	Images                []NoteImageView `json:"images"`
}
