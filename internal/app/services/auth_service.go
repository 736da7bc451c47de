package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jmcastillo/faculty-locator/internal/app/models"
	"github.com/jmcastillo/faculty-locator/internal/app/repositories"
	"github.com/jmcastillo/faculty-locator/internal/pkg/apperrors"
	"github.com/jmcastillo/faculty-locator/internal/pkg/auth"
)

// UserStore is the user lookup surface the auth service depends on
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService handles credential verification
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users  UserStore
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:  users,
		logger: logger,
	}
}

// Login verifies the credentials and returns the matching user. Unknown
// username and wrong password both map to ErrInvalidCredentials so the
// caller cannot distinguish them.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Debug().Str("username", username).Msg("User authenticated")
	return user, nil
}
