package auth

import (
	"testing"
	"time"

	"github.com/erazemk/seznam/internal/model"
)

var testAccount = &model.Account{ID: 1, Email: "a@example.com", Name: "Alice"}

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, testAccount)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.AccountID != 1 {
		t.Errorf("expected account_id 1, got %d", claims.AccountID)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("expected email 'a@example.com', got %q", claims.Email)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}

	id := claims.Identity()
	if id.AccountID != 1 || id.Name != "Alice" {
		t.Errorf("unexpected identity %+v", id)
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	a, _ := GenerateToken("secret", testAccount)
	b, _ := GenerateToken("secret", testAccount)

	ca, _ := ValidateToken("secret", a)
	cb, _ := ValidateToken("secret", b)
	if ca.ID == cb.ID {
		t.Errorf("expected distinct token IDs, both %q", ca.ID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", testAccount)

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	secret := "test"
	token, _ := GenerateToken(secret, testAccount)
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
