package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCurrencyRepository creates a new repository for currency data.
func NewPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{pool: pool}
}

const currencyColumns = `id, name, symbol,
	min_buying_rate_to_aed, max_buying_rate_to_aed,
	min_selling_rate_to_aed, max_selling_rate_to_aed,
	COALESCE(admin_notes, ''), notes_updated_at`

func scanCurrency(row pgx.Row) (domain.Currency, error) {
	var c domain.Currency
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Symbol,
		&c.MinBuyingRate,
		&c.MaxBuyingRate,
		&c.MinSellingRate,
		&c.MaxSellingRate,
		&c.AdminNotes,
		&c.NotesUpdatedAt,
	)
	return c, err
}

// SaveCurrency inserts a new currency and returns it with its assigned ID.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (domain.Currency, error) {
	query := `
		INSERT INTO currency (name, symbol,
			min_buying_rate_to_aed, max_buying_rate_to_aed,
			min_selling_rate_to_aed, max_selling_rate_to_aed,
			admin_notes, notes_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)
		RETURNING id;
	`
	err := r.pool.QueryRow(ctx, query,
		currency.Name,
		currency.Symbol,
		currency.MinBuyingRate,
		currency.MaxBuyingRate,
		currency.MinSellingRate,
		currency.MaxSellingRate,
		currency.AdminNotes,
		currency.NotesUpdatedAt,
	).Scan(&currency.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Currency{}, apperrors.ErrDuplicate
		}
		return domain.Currency{}, fmt.Errorf("failed to save currency %s: %w", currency.Symbol, err)
	}
	return currency, nil
}

// UpdateCurrency persists changes to an existing currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		UPDATE currency SET
			name = $2,
			min_buying_rate_to_aed = $3,
			max_buying_rate_to_aed = $4,
			min_selling_rate_to_aed = $5,
			max_selling_rate_to_aed = $6,
			admin_notes = NULLIF($7, ''),
			notes_updated_at = $8
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		currency.ID,
		currency.Name,
		currency.MinBuyingRate,
		currency.MaxBuyingRate,
		currency.MinSellingRate,
		currency.MaxSellingRate,
		currency.AdminNotes,
		currency.NotesUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %d: %w", currency.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCurrency hard-deletes a currency row; note_images rows cascade.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM currency WHERE id = $1;`, currencyID)
	if err != nil {
		return fmt.Errorf("failed to delete currency %d: %w", currencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its surrogate id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE id = $1;`
	c, err := scanCurrency(r.pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", currencyID, err)
	}
	return &c, nil
}

// FindCurrencyBySymbol retrieves a currency by symbol, case-insensitively.
func (r *PgxCurrencyRepository) FindCurrencyBySymbol(ctx context.Context, symbol string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE symbol = UPPER($1);`
	c, err := scanCurrency(r.pool.QueryRow(ctx, query, symbol))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by symbol %s: %w", symbol, err)
	}
	return &c, nil
}

// ListCurrencies retrieves all currencies ordered by symbol.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency ORDER BY symbol ASC;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

// CountCurrencies returns the number of currency rows.
func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM currency;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return count, nil
}
