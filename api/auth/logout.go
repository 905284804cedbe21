package auth

import (
	"net/http"
	"smorgas_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token, err := lib.GetCookieValue(lib.SessionCookieName, r)
	if err != nil {
		gecho.Success(w, gecho.WithMessage("No active session"), gecho.Send())
		return
	}

	// The cookie is cleared even if the database write fails; the stored
	// session then dies through staleness.
	if err := ar.authService.Logout(r.Context(), token); err != nil {
		ar.logger.Error("Failed to close session", gecho.Field("error", err))
	}

	lib.ClearCookie(lib.SessionCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
