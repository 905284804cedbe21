package users

import (
	"net/http"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
)

func (urm *UserRoutesManager) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := urm.userService.ListUsers(r.Context())
	if err != nil {
		handling.RespondError(w, urm.logger, err, "Unable to load the accounts")
		return
	}

	gecho.Success(w,
		gecho.WithData(users),
		gecho.Send(),
	)
}
