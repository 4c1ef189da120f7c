package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeType classifies a history row.
type ChangeType string

const (
	ChangeTypeCreated ChangeType = "created"
	ChangeTypeUpdated ChangeType = "updated"
	ChangeTypeDeleted ChangeType = "deleted"
)

// NoteType distinguishes text notes from image notes in the note history.
type NoteType string

const (
	NoteTypeText  NoteType = "text"
	NoteTypeImage NoteType = "image"
)

// SystemOperator is attributed when no authenticated session produced a change
// (bootstrap, seeding).
const SystemOperator = "system"

// CurrencyHistory is an immutable snapshot of a currency at the instant of a
// mutation. Rows are append-only and outlive the currency itself: CurrencyID
// is a plain reference that may no longer resolve after a hard delete.
type CurrencyHistory struct {
	ID         int64  `json:"id"`
	CurrencyID int64  `json:"currencyId"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`

	MinBuyingRate  decimal.NullDecimal `json:"minBuyingRateToAED"`
	MaxBuyingRate  decimal.NullDecimal `json:"maxBuyingRateToAED"`
	MinSellingRate decimal.NullDecimal `json:"minSellingRateToAED"`
	MaxSellingRate decimal.NullDecimal `json:"maxSellingRateToAED"`

	AdminNotes     string     `json:"adminNotes"`
	NotesUpdatedAt *time.Time `json:"notesUpdatedAt"`

	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
	ChangeType   ChangeType `json:"changeType"`
	ChangeReason string     `json:"changeReason"`
}

// NewCurrencyHistory snapshots a currency for the audit trail.
func NewCurrencyHistory(c Currency, changeType ChangeType, operator, reason string, at time.Time) CurrencyHistory {
	if operator == "" {
		operator = SystemOperator
	}
	return CurrencyHistory{
		CurrencyID:     c.ID,
		Name:           c.Name,
		Symbol:         c.Symbol,
		MinBuyingRate:  c.MinBuyingRate,
		MaxBuyingRate:  c.MaxBuyingRate,
		MinSellingRate: c.MinSellingRate,
		MaxSellingRate: c.MaxSellingRate,
		AdminNotes:     c.AdminNotes,
		NotesUpdatedAt: c.NotesUpdatedAt,
		CreatedAt:      at,
		CreatedBy:      operator,
		ChangeType:     changeType,
		ChangeReason:   reason,
	}
}

// NoteHistory is an immutable record of a note or image lifecycle event.
type NoteHistory struct {
	ID         int64    `json:"id"`
	CurrencyID int64    `json:"currencyId"`
	NoteType   NoteType `json:"noteType"`

	// Text notes
	Content string `json:"content"`
	// Image notes
	ImageFilename         string `json:"imageFilename"`
	ImageOriginalFilename string `json:"imageOriginalFilename"`
	ImageCaption          string `json:"imageCaption"`

	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
	ActionType   ChangeType `json:"actionType"`
	ActionReason string     `json:"actionReason"`
}

// NewTextNoteHistory records a text note lifecycle event.
func NewTextNoteHistory(currencyID int64, content string, actionType ChangeType, operator, reason string, at time.Time) NoteHistory {
	if operator == "" {
		operator = SystemOperator
	}
	return NoteHistory{
		CurrencyID:   currencyID,
		NoteType:     NoteTypeText,
		Content:      content,
		CreatedAt:    at,
		CreatedBy:    operator,
		ActionType:   actionType,
		ActionReason: reason,
	}
}

// NewImageNoteHistory records an image lifecycle event.
func NewImageNoteHistory(img NoteImage, actionType ChangeType, operator, reason string, at time.Time) NoteHistory {
	if operator == "" {
		operator = SystemOperator
	}
	return NoteHistory{
		CurrencyID:            img.CurrencyID,
		NoteType:              NoteTypeImage,
		ImageFilename:         img.Filename,
		ImageOriginalFilename: img.OriginalFilename,
		ImageCaption:          img.Caption,
		CreatedAt:             at,
		CreatedBy:             operator,
		ActionType:            actionType,
		ActionReason:          reason,
	}
}
