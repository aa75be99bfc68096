package model

import (
	"strings"
	"time"
)

// Account is a registered user. Accounts own saved lists.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the caller acting on a request. A nil *Identity is an
// anonymous visitor.
type Identity struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// Identity returns the session identity for the account.
func (a *Account) Identity() *Identity {
	return &Identity{AccountID: a.ID, Email: a.Email, Name: a.Name}
}

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that an (already normalized) email looks like one.
func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email is required")
	}
	at := strings.IndexByte(email, '@')
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t\r\n") {
		return invalid("email is not valid")
	}
	return nil
}

// ValidateName checks a display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name is required")
	}
	return nil
}

// ValidatePassword checks password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return invalid("password is required")
	}
	if len(password) > maxPasswordBytes {
		return invalid("password must be at most 72 bytes")
	}
	return nil
}
