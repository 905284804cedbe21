package auth

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		ar.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the account details and try again"), gecho.Send())
		return
	}

	user, err := ar.authService.Register(r.Context(), body)
	if err != nil {
		handling.RespondError(w, ar.logger, err, "Unable to create the account. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
