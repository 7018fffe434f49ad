package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
	"github.com/sirpyerre/inventario-api/internal/core/security"
)

// UserService implements the administrative user operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. A role change is privileged: it is
// applied only when the actor is an administrator and the value belongs to
// the canonical enumeration, otherwise it is ignored. A password change is
// re-hashed; the hasher passes already-hashed values through unchanged.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		user.Email = strings.ToLower(email)
	}
	if input.Role != "" && input.Actor != nil && input.Actor.IsAdmin() && domain.ValidRole(input.Role) {
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := security.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user. An actor may never delete their own account
// through this operation, administrator or not.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor != nil && actor.ID == id {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
