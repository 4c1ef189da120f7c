package services_test

import (
	"context"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (domain.Currency, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	args := m.Called(ctx, currencyID)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyBySymbol(ctx context.Context, symbol string) (*domain.Currency, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock NoteImageRepository ---
type MockNoteImageRepository struct {
	mock.Mock
}

func (m *MockNoteImageRepository) SaveNoteImage(ctx context.Context, image domain.NoteImage) (domain.NoteImage, error) {
	args := m.Called(ctx, image)
	return args.Get(0).(domain.NoteImage), args.Error(1)
}

func (m *MockNoteImageRepository) FindNoteImageByID(ctx context.Context, imageID int64) (*domain.NoteImage, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoteImage), args.Error(1)
}

func (m *MockNoteImageRepository) ListActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteImage), args.Error(1)
}

func (m *MockNoteImageRepository) MarkImageDeleted(ctx context.Context, imageID int64, deletedAt time.Time, deletedBy, reason string) error {
	args := m.Called(ctx, imageID, deletedAt, deletedBy, reason)
	return args.Error(0)
}

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveCurrencyHistory(ctx context.Context, history domain.CurrencyHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockHistoryRepository) SaveNoteHistory(ctx context.Context, history domain.NoteHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListCurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyHistory), args.Error(1)
}

func (m *MockHistoryRepository) ListNoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteHistory), args.Error(1)
}

func (m *MockHistoryRepository) ListRecentCurrencyHistory(ctx context.Context, limit int) ([]domain.CurrencyHistory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyHistory), args.Error(1)
}

func (m *MockHistoryRepository) ListRecentNoteHistory(ctx context.Context, limit int) ([]domain.NoteHistory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteHistory), args.Error(1)
}

// --- Mock AdminUserRepository ---
type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) UpsertAdminUser(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}
