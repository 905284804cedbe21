package orders

import (
	"net/http"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	summaries, err := orm.orderService.ListOrders(r.Context())
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to load the orders")
		return
	}

	gecho.Success(w,
		gecho.WithData(summaries),
		gecho.Send(),
	)
}
