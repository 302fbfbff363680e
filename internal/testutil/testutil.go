package testutil

import (
	"database/sql"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"chatbotService/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// A shared-cache name keeps multiple connections on the same database.
// Closing is registered via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SignToken returns an HS256 session token for username whose expiry lies
// ttl from now. A negative ttl yields an already-expired token.
func SignToken(t *testing.T, secret, username string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return "Bearer " + token
}
