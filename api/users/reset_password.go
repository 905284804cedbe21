package users

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (urm *UserRoutesManager) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid user id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ResetPasswordRequest](r)
	if err != nil {
		urm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the password fields and try again"), gecho.Send())
		return
	}

	if err := urm.userService.ResetPassword(r.Context(), userID, body); err != nil {
		handling.RespondError(w, urm.logger, err, "Unable to reset the password. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Password reset"),
		gecho.Send(),
	)
}
