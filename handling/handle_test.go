package handling

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"smorgas_server/lib"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: lib.ErrValidation, want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("quantity must be between 1 and 50: %w", lib.ErrValidation), want: http.StatusBadRequest},
		{name: "invalid credentials", err: lib.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "session invalid", err: lib.ErrSessionInvalid, want: http.StatusUnauthorized},
		{name: "forbidden", err: lib.ErrForbidden, want: http.StatusForbidden},
		{name: "not found", err: lib.ErrNotFound, want: http.StatusNotFound},
		{name: "session active", err: lib.ErrSessionActive, want: http.StatusConflict},
		{name: "conflict", err: lib.ErrConflict, want: http.StatusConflict},
		{name: "retries exhausted", err: fmt.Errorf("%w: giving up after 3 attempts", lib.ErrTransientConflict), want: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestRespondErrorWritesMatchingStatus(t *testing.T) {
	t.Parallel()

	logger := gecho.NewDefaultLogger()

	errs := []error{
		lib.ErrValidation,
		lib.ErrInvalidCredentials,
		lib.ErrSessionInvalid,
		lib.ErrForbidden,
		lib.ErrNotFound,
		lib.ErrSessionActive,
		lib.ErrConflict,
		lib.ErrTransientConflict,
		errors.New("boom"),
	}

	for _, err := range errs {
		rec := httptest.NewRecorder()
		RespondError(rec, logger, err, "Something went wrong")
		assert.Equal(t, StatusForError(err), rec.Code, "error: %v", err)
	}
}
