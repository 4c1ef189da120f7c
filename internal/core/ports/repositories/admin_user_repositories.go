package repositories

import (
	"context"

	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
)

// AdminUserRepository defines persistence operations for operator accounts.
type AdminUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	// UpsertAdminUser creates the operator or refreshes its password hash.
	// Only the startup bootstrap calls this.
	UpsertAdminUser(ctx context.Context, username, passwordHash string) error
}
