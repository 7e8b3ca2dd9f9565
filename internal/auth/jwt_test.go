package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "trip-planner")

	token, err := svc.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserName != "alice" {
		t.Errorf("user name = %q, want alice", claims.UserName)
	}
	if claims.Issuer != "trip-planner" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "trip-planner").GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := NewJWTService("secret-b", "trip-planner").ValidateToken(token); err == nil {
		t.Error("token signed with another secret should be rejected")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "trip-planner")
	svc.ttl = -time.Minute

	token, err := svc.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "trip-planner")
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) should fail", tok)
		}
	}
}

func TestTokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", "trip-planner")
	a, _ := svc.GenerateToken("alice")
	b, _ := svc.GenerateToken("alice")
	if a == b {
		t.Error("two tokens for the same user should differ")
	}
}
