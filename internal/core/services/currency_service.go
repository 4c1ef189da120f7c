package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/alnoorex/currency_exchange_admin/internal/middleware"
	"github.com/shopspring/decimal"
)

// CurrencyService implements the currency business rules: rate pair
// validation, symbol uniqueness, and the ordered delete cascade.
type CurrencyService struct {
	currencyRepo  portsrepo.CurrencyRepository
	noteImageRepo portsrepo.NoteImageRepository
	history       portssvc.HistorySvcFacade

	// enforceRateSpread additionally rejects buying ranges that overlap the
	// selling range. Policy differs between deployments.
	enforceRateSpread bool
}

func NewCurrencyService(
	currencyRepo portsrepo.CurrencyRepository,
	noteImageRepo portsrepo.NoteImageRepository,
	history portssvc.HistorySvcFacade,
	enforceRateSpread bool,
) *CurrencyService {
	return &CurrencyService{
		currencyRepo:      currencyRepo,
		noteImageRepo:     noteImageRepo,
		history:           history,
		enforceRateSpread: enforceRateSpread,
	}
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
}

// parseRatePair parses a (min, max) form pair for one range. Empty strings on
// both sides mean the range is absent. Zero or negative bounds are rejected
// here so the inverse-rate displays can never divide by zero.
func parseRatePair(minStr, maxStr, label string) (decimal.NullDecimal, decimal.NullDecimal, error) {
	var none decimal.NullDecimal

	minStr = strings.TrimSpace(minStr)
	maxStr = strings.TrimSpace(maxStr)

	if minStr == "" && maxStr == "" {
		return none, none, nil
	}
	if minStr == "" || maxStr == "" {
		return none, none, validationError(fmt.Sprintf("both minimum and maximum %s rates must be provided together", label))
	}

	min, err := decimal.NewFromString(minStr)
	if err != nil {
		return none, none, validationError(fmt.Sprintf("invalid minimum %s rate", label))
	}
	max, err := decimal.NewFromString(maxStr)
	if err != nil {
		return none, none, validationError(fmt.Sprintf("invalid maximum %s rate", label))
	}

	if !min.IsPositive() || !max.IsPositive() {
		return none, none, validationError(fmt.Sprintf("%s rates must be greater than zero", label))
	}
	if min.GreaterThanOrEqual(max) {
		return none, none, validationError(fmt.Sprintf("minimum %s rate must be less than the maximum", label))
	}

	return decimal.NullDecimal{Decimal: min, Valid: true}, decimal.NullDecimal{Decimal: max, Valid: true}, nil
}

// applyRates parses both rate pairs from the form and applies them to the
// currency, enforcing the optional cross-pair spread policy.
func (s *CurrencyService) applyRates(c *domain.Currency, req dto.CurrencyFormRequest) error {
	minBuy, maxBuy, err := parseRatePair(req.MinBuyingRate, req.MaxBuyingRate, "buying")
	if err != nil {
		return err
	}
	minSell, maxSell, err := parseRatePair(req.MinSellingRate, req.MaxSellingRate, "selling")
	if err != nil {
		return err
	}

	if s.enforceRateSpread && maxBuy.Valid && minSell.Valid && maxBuy.Decimal.GreaterThanOrEqual(minSell.Decimal) {
		return validationError("buying rates must be lower than selling rates")
	}

	c.MinBuyingRate = minBuy
	c.MaxBuyingRate = maxBuy
	c.MinSellingRate = minSell
	c.MaxSellingRate = maxSell
	return nil
}

// CreateCurrency validates and persists a new currency, then records history.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if n := utf8.RuneCountInString(symbol); n < 3 || n > 10 {
		return nil, validationError("currency symbol must be 3 to 10 characters")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("currency name is required")
	}

	currency := domain.Currency{
		Name:   name,
		Symbol: symbol,
	}
	if err := s.applyRates(&currency, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	notes := strings.TrimSpace(req.AdminNotes)
	if notes != "" {
		currency.AdminNotes = notes
		currency.NotesUpdatedAt = &now
	}

	existing, err := s.currencyRepo.FindCurrencyBySymbol(ctx, symbol)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing symbol: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("currency with symbol %s already exists: %w", symbol, apperrors.ErrDuplicate)
	}

	saved, err := s.currencyRepo.SaveCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("currency with symbol %s already exists: %w", symbol, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	reason := strings.TrimSpace(req.ChangeReason)
	if reason == "" {
		reason = "Currency created"
	}
	s.history.RecordCurrencyChange(ctx, saved, domain.ChangeTypeCreated, operator, reason, now)
	if notes != "" {
		s.history.RecordTextNoteChange(ctx, saved.ID, notes, domain.ChangeTypeCreated, operator, reason, now)
	}

	return &saved, nil
}

// UpdateCurrency applies the form to an existing currency. The symbol is
// immutable; rate pairs are replaced wholesale (absent pair clears the range).
func (s *CurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error) {
	existing, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("currency name is required")
	}

	updated := *existing
	updated.Name = name
	if err := s.applyRates(&updated, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	newNotes := strings.TrimSpace(req.AdminNotes)
	notesChanged := newNotes != existing.AdminNotes
	if notesChanged {
		updated.AdminNotes = newNotes
		updated.NotesUpdatedAt = &now
	}

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update currency %d: %w", currencyID, err)
	}

	reason := strings.TrimSpace(req.ChangeReason)
	if reason == "" {
		reason = "Currency updated"
	}
	s.history.RecordCurrencyChange(ctx, updated, domain.ChangeTypeUpdated, operator, reason, now)

	if notesChanged {
		switch {
		case existing.AdminNotes == "":
			s.history.RecordTextNoteChange(ctx, currencyID, newNotes, domain.ChangeTypeCreated, operator, reason, now)
		case newNotes == "":
			s.history.RecordTextNoteChange(ctx, currencyID, existing.AdminNotes, domain.ChangeTypeDeleted, operator, reason, now)
		default:
			s.history.RecordTextNoteChange(ctx, currencyID, newNotes, domain.ChangeTypeUpdated, operator, reason, now)
		}
	}

	return &updated, nil
}

// DeleteCurrency removes a currency. Ordering matters: the terminal history
// snapshot and the image soft-deletes are written before the row disappears,
// so the audit trail survives the hard delete.
func (s *CurrencyService) DeleteCurrency(ctx context.Context, currencyID int64, operator string) error {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	reason := "Currency deleted"

	s.history.RecordCurrencyChange(ctx, *currency, domain.ChangeTypeDeleted, operator, reason, now)

	images, err := s.noteImageRepo.ListActiveImages(ctx, currencyID)
	if err != nil {
		return fmt.Errorf("failed to list images for currency %d: %w", currencyID, err)
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, img := range images {
		if err := s.noteImageRepo.MarkImageDeleted(ctx, img.ID, now, operator, reason); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyDeleted) {
				continue
			}
			logger.Error("Failed to soft-delete image during currency delete",
				slog.Int64("image_id", img.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		s.history.RecordImageChange(ctx, img, domain.ChangeTypeDeleted, operator, reason, now)
	}

	if currency.AdminNotes != "" {
		s.history.RecordTextNoteChange(ctx, currencyID, currency.AdminNotes, domain.ChangeTypeDeleted, operator, reason, now)
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	return nil
}

// GetCurrencyByID retrieves a single currency.
func (s *CurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByID(ctx, currencyID)
}

// ListCurrencies returns all currencies ordered by symbol.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// CountCurrencies returns the total number of currencies.
func (s *CurrencyService) CountCurrencies(ctx context.Context) (int64, error) {
	return s.currencyRepo.CountCurrencies(ctx)
}
