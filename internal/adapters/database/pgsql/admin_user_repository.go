package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAdminUserRepository creates a new repository for operator accounts.
func NewPgxAdminUserRepository(pool *pgxpool.Pool) portsrepo.AdminUserRepository {
	return &PgxAdminUserRepository{pool: pool}
}

// FindByUsername retrieves an operator by username.
func (r *PgxAdminUserRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1;`
	var user domain.AdminUser
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin user %s: %w", username, err)
	}
	return &user, nil
}

// UpsertAdminUser creates the operator or refreshes its password hash.
func (r *PgxAdminUserRepository) UpsertAdminUser(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO admin_users (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash;
	`
	_, err := r.pool.Exec(ctx, query, username, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert admin user %s: %w", username, err)
	}
	return nil
}
