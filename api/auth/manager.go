package auth

import (
	"smorgas_server/services"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	authService *services.AuthService
}

func NewAuthRoutesManager(logger *gecho.Logger, cfg *structs.Config, authService *services.AuthService) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		cfg:         cfg,
		authService: authService,
	}
}

func (ar *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", ar.HandleLogin)
	r.Post("/auth/logout", ar.HandleLogout)
}

// RegisterAdminRoutes holds the endpoints only admins may call.
// Account creation is an admin task; waiters never self-register.
func (ar *AuthRoutesManager) RegisterAdminRoutes(r chi.Router) {
	r.Post("/auth/register", ar.HandleRegister)
}
