package users

import (
	"net/http"
	"smorgas_server/api/middleware"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (urm *UserRoutesManager) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid user id"), gecho.Send())
		return
	}

	actor, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Sign in to continue"), gecho.Send())
		return
	}

	if err := urm.userService.DeleteUser(r.Context(), actor, userID); err != nil {
		handling.RespondError(w, urm.logger, err, "Unable to delete the account. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account deleted"),
		gecho.Send(),
	)
}
