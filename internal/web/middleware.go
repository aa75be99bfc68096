package web

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/seznam/internal/auth"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

type webContextKey string

const webClaimsKey webContextKey = "webclaims"

// SessionMiddleware resolves the session cookie into claims on the request
// context. Requests without a valid session pass through as anonymous; a
// bad, expired or revoked cookie is cleared.
func SessionMiddleware(secret string, db *sql.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ValidateToken(secret, cookie.Value)
			if err != nil {
				clearAuthCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			revoked, err := store.IsSessionRevoked(r.Context(), db, claims.ID)
			if err != nil {
				slog.Error("failed to check session revocation", "error", err)
				revoked = true
			}
			if revoked {
				clearAuthCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), webClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireAccount sends anonymous callers to the login page with a notice.
func requireAccount(msg string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetWebClaims(r.Context()) == nil {
			setFlash(w, msg)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	})
}

// setAuthCookie stores a session token in the browser.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})
}

// clearAuthCookie clears the authentication cookie with consistent attributes.
func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// GetWebClaims retrieves the session claims from web context.
func GetWebClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(webClaimsKey).(*auth.Claims)
	return claims
}

// currentIdentity returns the caller, or nil for an anonymous visitor.
func currentIdentity(r *http.Request) *model.Identity {
	if claims := GetWebClaims(r.Context()); claims != nil {
		return claims.Identity()
	}
	return nil
}
