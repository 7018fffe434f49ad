// Package security provides the password hashing and token primitives the
// auth service is built on. Both are stateless: token validity is decided by
// signature and expiry alone, with no session storage.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the identity a verified token resolves to. Role is empty when
// the token carries no role claim; callers must tolerate that and fall back
// to the stored user record.
type Claims struct {
	UserID string
	Role   string
}

// TokenIssuer mints and verifies HS256 bearer tokens. Secret and TTL are
// fixed at construction, never per request.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given subject. The role claim is omitted
// entirely when role is empty rather than encoded as a null value.
func (t *TokenIssuer) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
	}
	if role != "" {
		claims["rol"] = role
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tkn.SignedString(t.secret)
}

// Verify parses and validates a token, returning the embedded claims.
// Expired tokens yield ErrTokenExpired; anything else that fails structural
// or signature checks yields ErrTokenMalformed.
func (t *TokenIssuer) Verify(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !tkn.Valid {
		return nil, ErrTokenMalformed
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrTokenMalformed
	}
	role, _ := claims["rol"].(string)

	return &Claims{UserID: sub, Role: role}, nil
}
