// Package visitor decides which scratch list a request works on.
package visitor

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Mode selects how scratch lists are partitioned between visitors.
type Mode string

const (
	// Global shares one scratch list between every visitor.
	Global Mode = "global"
	// Session gives each browser its own scratch list, keyed by a cookie.
	Session Mode = "session"
)

// CookieName is the cookie that carries the visitor ID in Session mode.
const CookieName = "visitor"

const cookieMaxAge = 30 * 24 * 60 * 60

// ParseMode validates a configured mode. The empty string means Global.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Global:
		return Global, nil
	case Session:
		return Session, nil
	default:
		return "", fmt.Errorf("unknown scratch scope %q (want %q or %q)", s, Global, Session)
	}
}

// Scope returns the scratch scope for the request. In Global mode it is
// always "". In Session mode it is the visitor cookie, which is issued when
// missing or malformed.
func Scope(w http.ResponseWriter, r *http.Request, mode Mode) string {
	if mode != Session {
		return ""
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	// Later reads in the same request see the new ID.
	cookies := r.Cookies()
	r.Header.Del("Cookie")
	for _, c := range cookies {
		if c.Name != CookieName {
			r.AddCookie(c)
		}
	}
	r.AddCookie(&http.Cookie{Name: CookieName, Value: id})
	return id
}
