package web

import (
	"errors"
	"log/slog"

	"github.com/erazemk/seznam/internal/model"
)

// notice turns an operation error into a message for the user. Unexpected
// errors are logged and reported generically.
func notice(op string, err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyScratch):
		return "Your list is empty. Add a task before saving."
	case errors.Is(err, model.ErrValidation):
		return capitalize(err.Error())
	case errors.Is(err, model.ErrAuthRequired):
		return "Please log in first."
	case errors.Is(err, model.ErrForbidden):
		return "That list belongs to someone else."
	case errors.Is(err, model.ErrNotFound):
		return "That list does not exist."
	default:
		slog.Error("request failed", "op", op, "error", err)
		return "Something went wrong. Please try again."
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
