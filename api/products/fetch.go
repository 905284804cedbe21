package products

import (
	"net/http"
	"smorgas_server/handling"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := prm.productService.GetCatalog(r.Context())
	if err != nil {
		handling.RespondError(w, prm.logger, err, "Unable to load the menu")
		return
	}

	gecho.Success(w,
		gecho.WithData(catalog),
		gecho.Send(),
	)
}
