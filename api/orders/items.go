package orders

import (
	"net/http"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleGetOrderItems(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathID(r, "folio")
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order number"), gecho.Send())
		return
	}

	items, err := orm.orderService.GetOrderItems(r.Context(), folio)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to load the order items")
		return
	}

	gecho.Success(w,
		gecho.WithData(items),
		gecho.Send(),
	)
}
