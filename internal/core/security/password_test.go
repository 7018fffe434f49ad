package security

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("expected hash, got plaintext back")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")); err != nil {
		t.Fatalf("hash does not verify against original password: %v", err)
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("abc12"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestHashPassword_AlreadyHashedPassthrough(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	again, err := HashPassword(hash)
	if err != nil {
		t.Fatalf("re-hash returned error: %v", err)
	}
	if again != hash {
		t.Fatalf("expected passthrough of existing hash, got a new value")
	}
	if !CheckPassword("secret1", again) {
		t.Fatalf("passthrough hash no longer verifies")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, _ := HashPassword("goodpass")

	if !CheckPassword("goodpass", hash) {
		t.Fatalf("expected match")
	}
	if CheckPassword("badpass", hash) {
		t.Fatalf("expected mismatch")
	}
	if CheckPassword("goodpass", "not-a-hash") {
		t.Fatalf("expected mismatch on malformed hash")
	}
}

func TestIsHashed(t *testing.T) {
	hash, _ := HashPassword("secret1")
	if !IsHashed(hash) {
		t.Fatalf("expected bcrypt hash to be recognised")
	}
	if IsHashed("secret1") {
		t.Fatalf("plaintext recognised as hash")
	}
	if IsHashed("$2a$borked") {
		t.Fatalf("malformed prefix-only string recognised as hash")
	}
}
