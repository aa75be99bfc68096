package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/seznam/internal/auth"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

const wrongCredentials = "Wrong email or password. Please try again or register instead."

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "register.html", &struct {
		PageData
	}{
		PageData: s.pageData(w, r, "Register"),
	})
}

// RegisterSubmit handles POST /register. A new account is signed in
// straight away.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	account, err := auth.Register(r.Context(), s.DB, r.FormValue("email"), r.FormValue("name"), r.FormValue("password"))
	if errors.Is(err, model.ErrDuplicateEmail) {
		setFlash(w, "You've already signed up with that email, log in instead!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err != nil {
		setFlash(w, notice("register", err))
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	slog.Info("account registered", "account", account.Email)
	s.startSession(w, r, account)
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &struct {
		PageData
	}{
		PageData: s.pageData(w, r, "Log in"),
	})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	account, err := auth.Authenticate(r.Context(), s.DB, r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAccountNotFound), errors.Is(err, model.ErrWrongPassword):
			slog.Warn("login failed", "email", model.NormalizeEmail(r.FormValue("email")))
			setFlash(w, wrongCredentials)
		default:
			setFlash(w, notice("login", err))
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	slog.Info("account logged in", "account", account.Email)
	s.startSession(w, r, account)
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, account *model.Account) {
	token, err := auth.GenerateToken(s.JWTSecret, account)
	if err != nil {
		setFlash(w, notice("issue session", err))
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	setAuthCookie(w, token)
	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

// Logout handles GET /logout. The session is revoked server-side so the
// token stops working even if it was copied.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if claims := GetWebClaims(r.Context()); claims != nil {
		if err := store.RevokeSession(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
			slog.Error("failed to revoke session", "error", err)
		} else {
			slog.Info("account logged out", "account", claims.Email)
		}
	}
	clearAuthCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
