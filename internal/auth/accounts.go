package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

// Register validates the input and creates an account with a hashed
// password. The email is normalized before it is stored or compared.
func Register(ctx context.Context, db *sql.DB, email, name, password string) (*model.Account, error) {
	email = model.NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := model.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	if err := model.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := store.GetAccountByEmail(ctx, db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("registering %s: %w", email, model.ErrDuplicateEmail)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	// The unique index still catches a registration racing this one.
	return store.CreateAccount(ctx, db, email, name, hash)
}

// Authenticate returns the account matching email and password, or
// model.ErrAccountNotFound / model.ErrWrongPassword.
func Authenticate(ctx context.Context, db *sql.DB, email, password string) (*model.Account, error) {
	email = model.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", model.ErrValidation)
	}

	account, err := store.GetAccountByEmail(ctx, db, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, model.ErrAccountNotFound
	}

	ok, err := CheckPassword(account.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrWrongPassword
	}
	return account, nil
}
