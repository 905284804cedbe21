package orders

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleUpdateOrderHeader(w http.ResponseWriter, r *http.Request) {
	folio, ok := pathID(r, "folio")
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid order number"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderHeaderRequest](r)
	if err != nil {
		orm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the order details and try again"), gecho.Send())
		return
	}

	err = orm.orderService.UpdateOrderHeader(r.Context(), folio, body.TableID, body.DeliveryModeID)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to update the order. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order updated"),
		gecho.Send(),
	)
}
