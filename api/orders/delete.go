package orders

import (
	"net/http"
	"smorgas_server/api/middleware"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathID(r, "folio")
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order number"), gecho.Send())
		return
	}

	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Sign in to continue"), gecho.Send())
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), user, folio); err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to delete the order. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted"),
		gecho.Send(),
	)
}
