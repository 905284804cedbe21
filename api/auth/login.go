package auth

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check your login information and try again"), gecho.Send())
		return
	}

	if body.Username == "" || body.Password == "" {
		gecho.BadRequest(w, gecho.WithMessage("Username and password are required"), gecho.Send())
		return
	}

	user, token, err := ar.authService.Login(r.Context(), body)
	if err != nil {
		handling.RespondError(w, ar.logger, err, "Unable to complete login. Please try again")
		return
	}

	lib.SetCookie(lib.SessionCookieName, token, *user.SessionExpiresAt, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
