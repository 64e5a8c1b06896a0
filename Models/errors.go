package Models

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrConstraint        = errors.New("database constraint violated")
	ErrNotFound          = errors.New("record not found")
	ErrUnauthorized      = errors.New("incorrect username or password")
)

// translateConstraint maps a unique-index violation reported by the driver
// onto the field-specific duplicate error, or returns nil when err is not a
// uniqueness failure. Postgres reports `duplicate key value violates unique
// constraint "idx_..."`, sqlite reports `UNIQUE constraint failed:
// table.column`; both carry the column name.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate key value violates unique constraint") &&
		!strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "username"):
		return ErrDuplicateUsername
	case strings.Contains(msg, "email"):
		return ErrDuplicateEmail
	}
	return ErrConstraint
}
