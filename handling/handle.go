package handling

import (
	"errors"
	"net/http"
	"smorgas_server/lib"

	"github.com/MonkyMars/gecho"
)

// RespondError translates a service error into the matching HTTP response.
// Domain sentinels map to client errors; an exhausted retry budget maps to
// 503 so the terminal can offer a retry; anything else is a masked 500.
func RespondError(w http.ResponseWriter, logger *gecho.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, lib.ErrValidation):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
	case errors.Is(err, lib.ErrSessionInvalid):
		gecho.Unauthorized(w, gecho.WithMessage("Your session is no longer valid. Please sign in again"), gecho.Send())
	case errors.Is(err, lib.ErrForbidden):
		gecho.Forbidden(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrSessionActive):
		gecho.Conflict(w, gecho.WithMessage("This account is already signed in on another device"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrTransientConflict):
		logger.Warn("Request gave up after repeated conflicts", gecho.Field("error", err))
		gecho.ServiceUnavailable(w, gecho.WithMessage("The order is busy right now, please try again"), gecho.Send())
	default:
		logger.Error("Unhandled error", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage(fallback), gecho.Send())
	}
}

// StatusForError returns the HTTP status RespondError would write.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, lib.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, lib.ErrInvalidCredentials), errors.Is(err, lib.ErrSessionInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, lib.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, lib.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lib.ErrSessionActive), errors.Is(err, lib.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, lib.ErrTransientConflict):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
