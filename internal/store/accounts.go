package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/seznam/internal/model"
)

// CreateAccount creates a new account. A taken email yields
// model.ErrDuplicateEmail.
func CreateAccount(ctx context.Context, db *sql.DB, email, name, passwordHash string) (*model.Account, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO accounts (email, name, password_hash) VALUES (?, ?, ?)`,
		email, name, passwordHash,
	)
	if isUniqueViolation(err) {
		return nil, fmt.Errorf("creating account %s: %w", email, model.ErrDuplicateEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting account id: %w", err)
	}

	return GetAccount(ctx, db, id)
}

// GetAccount returns an account by ID.
func GetAccount(ctx context.Context, db *sql.DB, id int64) (*model.Account, error) {
	a := &model.Account{}
	err := db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}
	return a, nil
}

// GetAccountByEmail returns an account by email, ignoring case.
func GetAccountByEmail(ctx context.Context, db *sql.DB, email string) (*model.Account, error) {
	a := &model.Account{}
	err := db.QueryRowContext(ctx,
		`SELECT id, email, name, password_hash, created_at
		 FROM accounts WHERE email = ?`, email,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting account by email: %w", err)
	}
	return a, nil
}
