package middleware

import (
	"context"
	"errors"
	"net/http"
	"smorgas_server/lib"
	"smorgas_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const UserContextKey contextKey = "user"

// SessionAuthMiddleware resolves the session cookie to a user and keeps the
// session alive. Every authenticated request acts as a heartbeat.
func (mw *Middleware) SessionAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := lib.GetCookieValue(lib.SessionCookieName, r)
		if err != nil {
			gecho.Unauthorized(w, gecho.WithMessage("Sign in to continue"), gecho.Send())
			return
		}

		user, err := mw.authService.ValidateSession(r.Context(), token)
		if err != nil {
			lib.ClearCookie(lib.SessionCookieName, w)
			if errors.Is(err, lib.ErrSessionInvalid) {
				gecho.Unauthorized(w, gecho.WithMessage("Your session expired. Please sign in again"), gecho.Send())
				return
			}
			mw.logger.Error("Session validation failed", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to verify your session"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuthMiddleware restricts a route to admin users.
// Must be used after SessionAuthMiddleware.
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			if ok {
				mw.logger.Warn("Non-admin user attempted to access admin route",
					gecho.Field("username", user.Username),
					gecho.Field("role", user.Role))
			}
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext is a helper function to extract the user from request context
func GetUserFromContext(ctx context.Context) (*tables.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*tables.User)
	return user, ok
}
