package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(700), Subtotal(2, 350))
	assert.Equal(t, int64(125), Subtotal(1, 125))
	assert.Equal(t, int64(50_000_000), Subtotal(MaxQuantity, MaxUnitPriceCents))
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	items := []OrderItem{
		{Quantity: 2, UnitPriceCents: 350, SubtotalCents: Subtotal(2, 350)},
		{Quantity: 1, UnitPriceCents: 125, SubtotalCents: Subtotal(1, 125)},
	}

	quantityTotal, amountTotal := ComputeTotals(items)
	assert.Equal(t, 3, quantityTotal)
	assert.Equal(t, int64(825), amountTotal)
}

func TestComputeTotalsAfterItemEdit(t *testing.T) {
	t.Parallel()

	items := []OrderItem{
		{Quantity: 2, UnitPriceCents: 350, SubtotalCents: Subtotal(2, 350)},
		{Quantity: 1, UnitPriceCents: 125, SubtotalCents: Subtotal(1, 125)},
	}

	// Bump the first line from 2 to 4 units.
	items[0].Quantity = 4
	items[0].SubtotalCents = Subtotal(items[0].Quantity, items[0].UnitPriceCents)

	quantityTotal, amountTotal := ComputeTotals(items)
	assert.Equal(t, 5, quantityTotal)
	assert.Equal(t, int64(1525), amountTotal)
}

func TestComputeTotalsEmpty(t *testing.T) {
	t.Parallel()

	quantityTotal, amountTotal := ComputeTotals(nil)
	assert.Equal(t, 0, quantityTotal)
	assert.Equal(t, int64(0), amountTotal)
}

func TestTableIDValid(t *testing.T) {
	t.Parallel()

	assert.True(t, TableID(100).Valid())
	assert.True(t, TableID(108).Valid())
	assert.False(t, TableID(99).Valid())
	assert.False(t, TableID(109).Valid())
	assert.False(t, TableID(0).Valid())
}

func TestDeliveryModeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Takeaway", DeliveryTakeaway.Label())
	assert.Equal(t, "Dine-in", DeliveryDineIn.Label())
	assert.Equal(t, "—", DeliveryMode(7).Label())
	assert.False(t, DeliveryMode(0).Valid())
}
