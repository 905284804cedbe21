package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSQLState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "40P01", SQLState(&pgconn.PgError{Code: "40P01"}))
	assert.Equal(t, "23505", SQLState(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.Equal(t, "", SQLState(errors.New("plain error")))
	assert.Equal(t, "", SQLState(nil))
}

func TestMapPgError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, MapPgError(&pgconn.PgError{Code: "23505"}), ErrConflict)
	assert.ErrorIs(t, MapPgError(&pgconn.PgError{Code: "23503"}), ErrValidation)
	assert.ErrorIs(t, MapPgError(&pgconn.PgError{Code: "P0002"}), ErrNotFound)

	// Unrecognized codes pass through untouched.
	serErr := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(serErr), MapPgError(serErr))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("user exists: %w", ErrConflict)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))
}
