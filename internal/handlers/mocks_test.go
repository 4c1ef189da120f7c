package handlers_test

import (
	"context"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portssvc "github.com/alnoorex/currency_exchange_admin/internal/core/ports/services"
	"github.com/alnoorex/currency_exchange_admin/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID int64, req dto.CurrencyFormRequest, operator string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, currencyID int64, operator string) error {
	args := m.Called(ctx, currencyID, operator)
	return args.Error(0)
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CountCurrencies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock NoteService ---
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) AttachImage(ctx context.Context, currencyID int64, data []byte, originalFilename, caption, operator string) (*domain.NoteImage, error) {
	args := m.Called(ctx, currencyID, data, originalFilename, caption, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoteImage), args.Error(1)
}

func (m *MockNoteService) SoftDeleteImage(ctx context.Context, imageID int64, operator, reason string) error {
	args := m.Called(ctx, imageID, operator, reason)
	return args.Error(0)
}

func (m *MockNoteService) ActiveImages(ctx context.Context, currencyID int64) ([]domain.NoteImage, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteImage), args.Error(1)
}

func (m *MockNoteService) HasNotes(ctx context.Context, currency domain.Currency) (bool, error) {
	args := m.Called(ctx, currency)
	return args.Bool(0), args.Error(1)
}

func (m *MockNoteService) LatestNoteTimestamp(ctx context.Context, currency domain.Currency) (*time.Time, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockNoteService) ImageFilePath(filename string) (string, error) {
	args := m.Called(filename)
	return args.String(0), args.Error(1)
}

func (m *MockNoteService) PurgeImageFile(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

var _ portssvc.NoteSvcFacade = (*MockNoteService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) RecordCurrencyChange(ctx context.Context, currency domain.Currency, changeType domain.ChangeType, operator, reason string, at time.Time) {
	m.Called(ctx, currency, changeType, operator, reason, at)
}

func (m *MockHistoryService) RecordTextNoteChange(ctx context.Context, currencyID int64, content string, actionType domain.ChangeType, operator, reason string, at time.Time) {
	m.Called(ctx, currencyID, content, actionType, operator, reason, at)
}

func (m *MockHistoryService) RecordImageChange(ctx context.Context, image domain.NoteImage, actionType domain.ChangeType, operator, reason string, at time.Time) {
	m.Called(ctx, image, actionType, operator, reason, at)
}

func (m *MockHistoryService) CurrencyHistory(ctx context.Context, currencyID int64) ([]domain.CurrencyHistory, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyHistory), args.Error(1)
}

func (m *MockHistoryService) NoteHistory(ctx context.Context, currencyID int64) ([]domain.NoteHistory, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteHistory), args.Error(1)
}

func (m *MockHistoryService) RecentActivity(ctx context.Context, limit int) ([]domain.CurrencyHistory, []domain.NoteHistory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.CurrencyHistory), args.Get(1).([]domain.NoteHistory), args.Error(2)
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *MockAuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
