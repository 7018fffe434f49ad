package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/inventario-api/internal/core/domain"
	"github.com/sirpyerre/inventario-api/internal/core/ports"
	"github.com/sirpyerre/inventario-api/internal/core/security"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, email, role string) *domain.User {
	t.Helper()
	hash, err := security.HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)
	employee := seedUser(t, repo, "Carl", "carl@x.com", domain.RoleEmployee)
	admin := seedUser(t, repo, "Root", "root@x.com", domain.RoleAdmin)

	// non-admin actor: rol silently ignored
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:    target.ID,
		Role:  domain.RoleAdmin,
		Actor: employee,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Fatalf("role changed by non-admin: %s", updated.Role)
	}

	// admin actor: rol applied
	updated, err = svc.Update(context.Background(), ports.UpdateUserInput{
		ID:    target.ID,
		Role:  domain.RoleManager,
		Actor: admin,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Fatalf("expected role %s, got %s", domain.RoleManager, updated.Role)
	}
}

func TestUserService_Update_InvalidRoleIgnored(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)
	admin := seedUser(t, repo, "Root", "root@x.com", domain.RoleAdmin)

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:    target.ID,
		Role:  "superuser",
		Actor: admin,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleEmployee {
		t.Fatalf("role set outside canonical enum: %s", updated.Role)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)
	oldHash := target.PasswordHash

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       target.ID,
		Password: "newpass7",
		Actor:    target,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash == "newpass7" {
		t.Fatalf("password stored as plaintext")
	}
	if updated.PasswordHash == oldHash {
		t.Fatalf("password hash unchanged")
	}
	if !security.CheckPassword("newpass7", updated.PasswordHash) {
		t.Fatalf("new password does not verify")
	}
}

func TestUserService_Update_NoDoubleHash(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)

	// an update path writing back the stored hash must not re-hash it
	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:       target.ID,
		Password: target.PasswordHash,
		Actor:    target,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash != target.PasswordHash {
		t.Fatalf("already-hashed password was re-hashed")
	}
	if !security.CheckPassword("secret1", updated.PasswordHash) {
		t.Fatalf("original password no longer verifies")
	}
}

func TestUserService_Update_LowercasesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID:    target.ID,
		Email: "Bob.New@X.com",
		Actor: target,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Email != "bob.new@x.com" {
		t.Fatalf("expected lowercased email, got %q", updated.Email)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateUserInput{ID: "missing", Name: "X"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_Self(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "Root", "root@x.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
	if _, err := repo.FindByID(context.Background(), admin.ID); err != nil {
		t.Fatalf("user was deleted despite guard: %v", err)
	}
}

func TestUserService_Delete_Other(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "Root", "root@x.com", domain.RoleAdmin)
	target := seedUser(t, repo, "Bob", "bob@x.com", domain.RoleEmployee)

	if err := svc.Delete(context.Background(), admin, target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	admin := seedUser(t, repo, "Root", "root@x.com", domain.RoleAdmin)

	if err := svc.Delete(context.Background(), admin, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
