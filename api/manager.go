package api

import (
	"smorgas_server/api/auth"
	"smorgas_server/api/health"
	"smorgas_server/api/middleware"
	"smorgas_server/api/orders"
	"smorgas_server/api/products"
	"smorgas_server/api/users"
	"smorgas_server/services"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes    *auth.AuthRoutesManager
	orderRoutes   *orders.OrderRoutesManager
	userRoutes    *users.UserRoutesManager
	productRoutes *products.ProductRoutesManager
	healthRoutes  *health.HealthRoutesManager
	mw            *middleware.Middleware
}

func NewRouterManager(logger *gecho.Logger, cfg *structs.Config, sm *services.ServiceManager, mw *middleware.Middleware) *routerManager {
	return &routerManager{
		authRoutes:    auth.NewAuthRoutesManager(logger, cfg, sm.AuthService),
		orderRoutes:   orders.NewOrderRoutesManager(logger, sm.OrderService, mw),
		userRoutes:    users.NewUserRoutesManager(logger, sm.UserService),
		productRoutes: products.NewProductRoutesManager(logger, sm.ProductService),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
		mw:            mw,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)

	// Everything below requires a live session.
	r.Group(func(r chi.Router) {
		r.Use(rm.mw.SessionAuthMiddleware)

		rm.orderRoutes.RegisterRoutes(r)
		rm.productRoutes.RegisterRoutes(r)

		// Admin-only surface.
		r.Group(func(r chi.Router) {
			r.Use(rm.mw.AdminAuthMiddleware)

			rm.authRoutes.RegisterAdminRoutes(r)
			rm.userRoutes.RegisterRoutes(r)
		})
	})
}
