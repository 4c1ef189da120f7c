package domain

import "time"

// NoteImage is an uploaded image attached to a currency as a visual note.
// Images are soft deleted: the row and the stored blob survive for the audit
// trail, but deleted images disappear from all active views.
type NoteImage struct {
	ID               int64     `json:"id"`
	CurrencyID       int64     `json:"currencyId"`
	Filename         string    `json:"filename"` // opaque generated storage name
	OriginalFilename string    `json:"originalFilename"`
	FileSize         int64     `json:"fileSize"` // bytes, after compression
	MimeType         string    `json:"mimeType"`
	Caption          string    `json:"caption"`
	UploadedAt       time.Time `json:"uploadedAt"`

	DeletedAt    *time.Time `json:"deletedAt"`
	DeletedBy    string     `json:"deletedBy"`
	DeleteReason string     `json:"deleteReason"`
}

// IsDeleted reports whether the image has been soft deleted.
func (n NoteImage) IsDeleted() bool {
	return n.DeletedAt != nil
}
