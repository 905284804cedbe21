package tables

// Item bounds enforced before any row lock is taken.
const (
	MinQuantity = 1
	MaxQuantity = 50

	MinUnitPriceCents = 1       // 0.01
	MaxUnitPriceCents = 1000000 // 10000.00
)

// Subtotal returns the derived line amount in cents.
func Subtotal(quantity int, unitPriceCents int64) int64 {
	return int64(quantity) * unitPriceCents
}

// ComputeTotals maps a set of order items to the header aggregates. Money is
// integer cents throughout, so repeated edits never accumulate rounding
// drift.
func ComputeTotals(items []OrderItem) (quantityTotal int, amountTotalCents int64) {
	for i := range items {
		quantityTotal += items[i].Quantity
		amountTotalCents += Subtotal(items[i].Quantity, items[i].UnitPriceCents)
	}
	return quantityTotal, amountTotalCents
}
