package services

import (
	"context"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// AuthSvcFacade authenticates operators against stored bcrypt hashes.
type AuthSvcFacade interface {
	// Authenticate returns the operator on a valid username/password pair,
	// apperrors.ErrNotFound otherwise.
	Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error)
	// BootstrapAdmin upserts the configured operator account at startup.
	BootstrapAdmin(ctx context.Context, username, password string) error
}
