package orders

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateOrderRequest](r)
	if err != nil {
		orm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the order details and try again"), gecho.Send())
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to save the order. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order saved"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
