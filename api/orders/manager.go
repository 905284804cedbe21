package orders

import (
	"smorgas_server/api/middleware"
	"smorgas_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(logger *gecho.Logger, orderService *services.OrderService, mw *middleware.Middleware) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orm.HandleListOrders)
		r.Post("/", orm.HandleCreateOrder)
		r.Get("/{folio}/items", orm.HandleGetOrderItems)
		r.Put("/{folio}", orm.HandleUpdateOrderHeader)
		r.Put("/items/{id}", orm.HandleUpdateOrderItem)

		// Destructive, admins only.
		r.With(orm.mw.AdminAuthMiddleware).Delete("/{folio}", orm.HandleDeleteOrder)
	})
}
