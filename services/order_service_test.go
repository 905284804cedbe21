package services

import (
	"context"
	"smorgas_server/lib"
	"smorgas_server/structs"
	"smorgas_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
)

// The service under test gets a nil database handle. Any path that reaches
// the store would panic, so these tests also prove validation happens before
// a transaction is started.
func newTestOrderService() *OrderService {
	return NewOrderService(gecho.NewDefaultLogger(), nil, nil)
}

func validCreateRequest() *structs.CreateOrderRequest {
	return &structs.CreateOrderRequest{
		TableID:        101,
		DeliveryModeID: int(tables.DeliveryDineIn),
		Items: []structs.OrderItemRequest{
			{ProductID: 1, Quantity: 2, UnitPriceCents: 350},
		},
	}
}

func TestCreateOrderValidation(t *testing.T) {
	t.Parallel()

	svc := newTestOrderService()

	tests := []struct {
		name   string
		mutate func(req *structs.CreateOrderRequest)
	}{
		{
			name:   "table below range",
			mutate: func(req *structs.CreateOrderRequest) { req.TableID = 99 },
		},
		{
			name:   "table above range",
			mutate: func(req *structs.CreateOrderRequest) { req.TableID = 109 },
		},
		{
			name:   "unknown delivery mode",
			mutate: func(req *structs.CreateOrderRequest) { req.DeliveryModeID = 3 },
		},
		{
			name:   "no items",
			mutate: func(req *structs.CreateOrderRequest) { req.Items = nil },
		},
		{
			name:   "missing product reference",
			mutate: func(req *structs.CreateOrderRequest) { req.Items[0].ProductID = 0 },
		},
		{
			name:   "zero quantity",
			mutate: func(req *structs.CreateOrderRequest) { req.Items[0].Quantity = 0 },
		},
		{
			name:   "quantity above cap",
			mutate: func(req *structs.CreateOrderRequest) { req.Items[0].Quantity = 51 },
		},
		{
			name:   "zero unit price",
			mutate: func(req *structs.CreateOrderRequest) { req.Items[0].UnitPriceCents = 0 },
		},
		{
			name:   "unit price above cap",
			mutate: func(req *structs.CreateOrderRequest) { req.Items[0].UnitPriceCents = 1_000_001 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateRequest()
			tt.mutate(req)

			order, err := svc.CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, lib.ErrValidation)
			assert.Nil(t, order)
		})
	}
}

func TestUpdateOrderItemRejectsOutOfBoundsBeforeLocking(t *testing.T) {
	t.Parallel()

	svc := newTestOrderService()

	tests := []struct {
		name           string
		quantity       int
		unitPriceCents int64
	}{
		{name: "zero quantity", quantity: 0, unitPriceCents: 350},
		{name: "negative quantity", quantity: -1, unitPriceCents: 350},
		{name: "quantity above cap", quantity: 51, unitPriceCents: 350},
		{name: "zero price", quantity: 1, unitPriceCents: 0},
		{name: "price above cap", quantity: 1, unitPriceCents: 1_000_001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := svc.UpdateOrderItem(context.Background(), 1, tt.quantity, tt.unitPriceCents)
			assert.ErrorIs(t, err, lib.ErrValidation)
		})
	}
}

func TestUpdateOrderHeaderRejectsInvalidFieldsBeforeLocking(t *testing.T) {
	t.Parallel()

	svc := newTestOrderService()

	err := svc.UpdateOrderHeader(context.Background(), 1, 99, int(tables.DeliveryDineIn))
	assert.ErrorIs(t, err, lib.ErrValidation)

	err = svc.UpdateOrderHeader(context.Background(), 1, 101, 9)
	assert.ErrorIs(t, err, lib.ErrValidation)
}

func TestDeleteOrderRequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := newTestOrderService()

	err := svc.DeleteOrder(context.Background(), &tables.User{Role: tables.RoleWaiter}, 1)
	assert.ErrorIs(t, err, lib.ErrForbidden)

	err = svc.DeleteOrder(context.Background(), nil, 1)
	assert.ErrorIs(t, err, lib.ErrForbidden)
}
