package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Request errors
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Auth / session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionActive      = errors.New("session already active on another device")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)

// ErrTransientConflict is surfaced when the retry coordinator exhausts its
// attempts on a deadlock or lock-wait timeout.
var ErrTransientConflict = errors.New("transient conflict")

// SQLState extracts the SQLSTATE code from a database error, covering both
// the pgdriver errors bun produces and pgconn errors.
func SQLState(err error) string {
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// MapPgError converts low-level postgres errors into the sentinel errors the
// handlers know how to present.
func MapPgError(err error) error {
	switch SQLState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "23503": // foreign_key_violation
		return ErrValidation
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is (or maps to) a duplicate-key error.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict) || SQLState(err) == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
