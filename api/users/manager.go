package users

import (
	"smorgas_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// UserRoutesManager covers account administration. All routes are admin-only;
// the guard is applied by the parent router group.
type UserRoutesManager struct {
	logger      *gecho.Logger
	userService *services.UserService
}

func NewUserRoutesManager(logger *gecho.Logger, userService *services.UserService) *UserRoutesManager {
	return &UserRoutesManager{
		logger:      logger,
		userService: userService,
	}
}

func (urm *UserRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", urm.HandleListUsers)
		r.Put("/{id}/password", urm.HandleResetPassword)
		r.Delete("/{id}", urm.HandleDeleteUser)
	})
}
