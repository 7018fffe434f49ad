package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
	"github.com/sirpyerre/inventario-api/internal/core/security"
)

// AuthService implements registration, login and token-based identity
// resolution against the user store.
type AuthService struct {
	repo   ports.UserRepository
	tokens *security.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *security.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a user with the default lowest-privilege role and returns
// it together with a freshly issued token. Duplicate emails surface as
// domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse into the same ErrInvalidCredentials so responses cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// AuthenticateToken resolves the caller behind a bearer token. The token is
// verified statelessly, then the current record is re-read from the store so
// role changes since issuance take effect immediately.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
