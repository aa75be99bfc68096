package model

import (
	"errors"
	"fmt"
)

// Errors shared by the store, guard and HTTP layers. Callers match them
// with errors.Is.
var (
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrAuthRequired    = errors.New("login required")
	ErrForbidden       = errors.New("list belongs to another account")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("invalid input")

	// ErrEmptyScratch is returned when saving a scratch list with no items.
	ErrEmptyScratch = fmt.Errorf("%w: scratch list is empty", ErrValidation)
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
