package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/seznam/internal/auth"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	DB        *sql.DB
	JWTSecret string
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type registerResponse struct {
	Token   string         `json:"token"`
	Account *model.Account `json:"account"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register. The response carries a session
// token for the new account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := auth.Register(r.Context(), h.DB, req.Email, req.Name, req.Password)
	if err != nil {
		writeError(w, "register", err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, account)
	if err != nil {
		writeError(w, "issue token", err)
		return
	}

	slog.Info("account registered", "account", account.Email)
	jsonResponse(w, http.StatusCreated, registerResponse{Token: token, Account: account})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := auth.Authenticate(r.Context(), h.DB, req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "email", model.NormalizeEmail(req.Email), "remote", r.RemoteAddr)
		writeError(w, "login", err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, account)
	if err != nil {
		writeError(w, "issue token", err)
		return
	}

	slog.Info("account logged in", "account", account.Email)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token})
}

// Logout handles POST /api/auth/logout by revoking the bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := store.RevokeSession(r.Context(), h.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
		writeError(w, "logout", err)
		return
	}

	slog.Info("account logged out", "account", claims.Email)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "logged out"})
}
