package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"chatbotService/internal/testutil"
)

const testSecret = "test-secret"

func TestIssueAndParse_RoundTrip(t *testing.T) {
	tok, err := IssueToken("alice", testSecret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	p, err := ParseToken(tok, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if p.Name != "alice" {
		t.Fatalf("identity mismatch: got %q, want alice", p.Name)
	}
}

func TestIssueToken_ExpiryIsOneHour(t *testing.T) {
	tok, err := IssueToken("alice", testSecret)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	got := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if got != TokenTTL {
		t.Fatalf("expiry window = %v, want %v", got, TokenTTL)
	}
}

func TestParseToken_Expired(t *testing.T) {
	tok := testutil.SignToken(t, testSecret, "alice", -time.Minute)
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, _ := IssueToken("alice", testSecret)
	if _, err := ParseToken(tok, "other-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseToken_EmptySubject(t *testing.T) {
	tok := testutil.SignToken(t, testSecret, "", time.Hour)
	if _, err := ParseToken(tok, testSecret); err == nil {
		t.Fatalf("expected invalid claims error")
	}
}

func TestParseFromHeader(t *testing.T) {
	tok, _ := IssueToken("bob", testSecret)

	p, err := ParseFromHeader(testutil.BearerHeader(tok), testSecret)
	if err != nil || p.Name != "bob" {
		t.Fatalf("valid bearer rejected: %v %+v", err, p)
	}
	if _, err := ParseFromHeader("", testSecret); err == nil {
		t.Fatalf("expected error for missing header")
	}
	if _, err := ParseFromHeader(tok, testSecret); err == nil {
		t.Fatalf("expected error for missing Bearer scheme")
	}
	if _, err := ParseFromHeader("Basic "+tok, testSecret); err == nil {
		t.Fatalf("expected error for wrong scheme")
	}
	// Scheme comparison is case-insensitive.
	if _, err := ParseFromHeader("bearer "+tok, testSecret); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}
