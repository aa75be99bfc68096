package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"
)

// SessionSecret returns the key sessions are signed with, generating and
// storing one on first use. INSERT OR IGNORE followed by a read keeps
// concurrent first starts consistent.
func SessionSecret(ctx context.Context, db *sql.DB) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session secret: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value) VALUES ('session_secret', ?)`,
		hex.EncodeToString(buf),
	)
	if err != nil {
		return "", fmt.Errorf("storing session secret: %w", err)
	}

	var secret string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = 'session_secret'`,
	).Scan(&secret)
	if err != nil {
		return "", fmt.Errorf("reading session secret: %w", err)
	}
	return secret, nil
}

// RevokeSession records a logged-out session's token ID until it expires,
// and drops revocations that have already expired.
func RevokeSession(ctx context.Context, db *sql.DB, jti string, expiresAt time.Time) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO revoked_tokens (jti, expires_at) VALUES (?, ?)`,
		jti, expiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}

	_, _ = db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, time.Now().Unix())
	return nil
}

// IsSessionRevoked reports whether a token ID was logged out.
func IsSessionRevoked(ctx context.Context, db *sql.DB, jti string) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens WHERE jti = ?`, jti,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking session revocation: %w", err)
	}
	return count > 0, nil
}
