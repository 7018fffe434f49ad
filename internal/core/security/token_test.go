package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1", "administrador")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("expected subject user_1, got %q", claims.UserID)
	}
	if claims.Role != "administrador" {
		t.Fatalf("expected role administrador, got %q", claims.Role)
	}
}

func TestTokenIssuer_OmitsEmptyRoleClaim(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user_1", "")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	raw := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, raw, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, present := raw["rol"]; present {
		t.Fatalf("expected rol claim to be absent, got %v", raw["rol"])
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Role != "" {
		t.Fatalf("expected empty role, got %q", claims.Role)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", time.Hour).Issue("user_1", "empleado")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("other", time.Hour).Verify(token); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenIssuer_RejectsUnexpectedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issuer := NewTokenIssuer("secret", time.Hour)
	if _, err := issuer.Verify(signed); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
