package tables

// Product is read-only reference data for the ordering flow.
type Product struct {
	tableName  struct{} `bun:"table:products,alias:p"`
	ID         int64    `bun:"id,pk,autoincrement" json:"id"`
	Name       string   `bun:"name,notnull" json:"name"`
	PriceCents int64    `bun:"price_cents,notnull" json:"price_cents"`
	Category   string   `bun:"category" json:"category"`
}
