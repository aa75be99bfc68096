package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/seznam/internal/db"
	"github.com/erazemk/seznam/internal/model"
)

func TestRegisterStoresHash(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	account, err := Register(ctx, database, " A@Example.com ", "Alice", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.Email != "a@example.com" {
		t.Errorf("expected normalized email, got %q", account.Email)
	}
	if account.PasswordHash == "pw123" || account.PasswordHash == "" {
		t.Errorf("expected a password hash, got %q", account.PasswordHash)
	}
	ok, err := CheckPassword(account.PasswordHash, "pw123")
	if err != nil || !ok {
		t.Errorf("expected stored hash to verify, ok=%v err=%v", ok, err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := Register(ctx, database, "a@example.com", "Alice", "pw123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := Register(ctx, database, "a@example.com", "Mallory", "other")
	if !errors.Is(err, model.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, err := Register(ctx, database, "b@example.com", "Bob", "pw"); err != nil {
		t.Errorf("different email should succeed: %v", err)
	}

	// The first account keeps its original password.
	account, err := Authenticate(ctx, database, "a@example.com", "pw123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if account.Name != "Alice" {
		t.Errorf("expected 'Alice', got %q", account.Name)
	}
	if _, err := Authenticate(ctx, database, "a@example.com", "other"); !errors.Is(err, model.ErrWrongPassword) {
		t.Errorf("expected second password to be rejected, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tests := []struct {
		email, name, password string
	}{
		{"", "Alice", "pw"},
		{"not-an-email", "Alice", "pw"},
		{"a@example.com", "", "pw"},
		{"a@example.com", "Alice", ""},
	}

	for _, tt := range tests {
		_, err := Register(ctx, database, tt.email, tt.name, tt.password)
		if !errors.Is(err, model.ErrValidation) {
			t.Errorf("Register(%q, %q, %q): expected ErrValidation, got %v", tt.email, tt.name, tt.password, err)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	registered, _ := Register(ctx, database, "a@example.com", "Alice", "pw123")

	account, err := Authenticate(ctx, database, "A@example.com", "pw123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if account.ID != registered.ID {
		t.Errorf("expected account %d, got %d", registered.ID, account.ID)
	}

	if _, err := Authenticate(ctx, database, "a@example.com", "wrong"); !errors.Is(err, model.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := Authenticate(ctx, database, "nobody@example.com", "pw123"); !errors.Is(err, model.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if _, err := CheckPassword("not-a-bcrypt-hash", "pw"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
