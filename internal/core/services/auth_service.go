package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnoorex/currency_exchange_admin/internal/apperrors"
	"github.com/alnoorex/currency_exchange_admin/internal/core/domain"
	portsrepo "github.com/alnoorex/currency_exchange_admin/internal/core/ports/repositories"
	"github.com/alnoorex/currency_exchange_admin/internal/utils"
)

// AuthService authenticates operators against bcrypt hashes in the database.
type AuthService struct {
	adminUserRepo portsrepo.AdminUserRepository
}

func NewAuthService(adminUserRepo portsrepo.AdminUserRepository) *AuthService {
	return &AuthService{adminUserRepo: adminUserRepo}
}

// Authenticate verifies a username/password pair. Unknown usernames and bad
// passwords both come back as ErrNotFound so callers cannot tell them apart.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	user, err := s.adminUserRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up operator: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrNotFound
	}

	return user, nil
}

// BootstrapAdmin ensures the configured operator account exists with the
// configured password. A blank password skips bootstrapping entirely.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	if err := s.adminUserRepo.UpsertAdminUser(ctx, username, hash); err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	return nil
}
