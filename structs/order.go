package structs

import "smorgas_server/structs/tables"

type OrderItemRequest struct {
	ProductID      int64 `json:"product_id"`
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

type CreateOrderRequest struct {
	TableID        int                `json:"table_id"`
	DeliveryModeID int                `json:"delivery_mode_id"`
	Items          []OrderItemRequest `json:"items"`
}

type UpdateOrderHeaderRequest struct {
	TableID        int `json:"table_id"`
	DeliveryModeID int `json:"delivery_mode_id"`
}

type UpdateOrderItemRequest struct {
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unit_price_cents"`
}

// OrderSummary is one row of the order index listing.
type OrderSummary struct {
	Folio            int64               `json:"folio"`
	TableID          tables.TableID      `json:"table_id"`
	DeliveryModeID   tables.DeliveryMode `json:"delivery_mode_id"`
	DeliveryMode     string              `json:"delivery_mode"`
	QuantityTotal    int                 `json:"quantity_total"`
	AmountTotalCents int64               `json:"amount_total_cents"`
}
