package orders

import (
	"net/http"
	"smorgas_server/handling"
	"smorgas_server/lib"
	"smorgas_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleUpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "id")
	if !ok {
		gecho.BadRequest(w, gecho.WithMessage("Invalid item id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderItemRequest](r)
	if err != nil {
		orm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the item details and try again"), gecho.Send())
		return
	}

	err = orm.orderService.UpdateOrderItem(r.Context(), itemID, body.Quantity, body.UnitPriceCents)
	if err != nil {
		handling.RespondError(w, orm.logger, err, "Unable to update the item. Please try again")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item updated"),
		gecho.Send(),
	)
}
