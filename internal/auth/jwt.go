package auth

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of a session token. Expiry is the only
// invalidation mechanism; there is no server-side revocation.
const TokenTTL = time.Hour

// Principal represents the authenticated caller extracted from a JWT.
type Principal struct {
	Name string // username embedded as the token's subject
}

// IssueToken signs an HS256 session token asserting the given username.
// The token carries issued-at and an absolute expiry of TokenTTL from now.
func IssueToken(username, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	if username == "" {
		return "", errors.New("username is empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseFromHeader extracts and validates a Bearer JWT from an Authorization
// header value and returns the Principal it asserts.
func ParseFromHeader(header, secret string) (*Principal, error) {
	if header == "" {
		return nil, errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization header")
	}
	return ParseToken(strings.TrimSpace(parts[1]), secret)
}

// ParseToken validates a session token and extracts its Principal.
// The signing method is pinned to HS256; expired tokens are rejected by the
// library's registered-claims validation.
func ParseToken(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	if claims.Subject == "" {
		return nil, errors.New("invalid claims")
	}
	return &Principal{Name: claims.Subject}, nil
}
