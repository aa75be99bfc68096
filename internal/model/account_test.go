package model

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"pw123", false},
		{"a-valid-password", false},
		{strings.Repeat("x", 72), false},
		{strings.Repeat("x", 73), true},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrValidation) {
			t.Errorf("ValidatePassword(%q) error %v is not ErrValidation", tt.password, err)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"", true},
		{"alice", true},
		{"@example.com", true},
		{"alice@", true},
		{"al ice@example.com", true},
		{"a@example.com", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Alice@Example.COM "); got != "alice@example.com" {
		t.Errorf("expected 'alice@example.com', got %q", got)
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("   "); err == nil {
		t.Error("expected error for blank name")
	}
	if err := ValidateName("Alice"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAccountIdentity(t *testing.T) {
	a := &Account{ID: 7, Email: "a@example.com", Name: "Alice"}
	id := a.Identity()
	if id.AccountID != 7 || id.Email != "a@example.com" || id.Name != "Alice" {
		t.Errorf("unexpected identity %+v", id)
	}
}
