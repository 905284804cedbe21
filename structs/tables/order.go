package tables

// TableID identifies one of the cafeteria's physical tables. The dining room
// has nine numbered tables, 100 through 108.
type TableID int

const (
	MinTableID TableID = 100
	MaxTableID TableID = 108
)

// Valid reports whether the table id belongs to the closed set of tables.
func (t TableID) Valid() bool {
	return t >= MinTableID && t <= MaxTableID
}

// DeliveryMode identifies how an order leaves the counter.
type DeliveryMode int

const (
	DeliveryTakeaway DeliveryMode = 1
	DeliveryDineIn   DeliveryMode = 2
)

func (m DeliveryMode) Valid() bool {
	return m == DeliveryTakeaway || m == DeliveryDineIn
}

// Label returns the display name for the delivery mode, with a fallback for
// rows whose mode reference no longer resolves.
func (m DeliveryMode) Label() string {
	switch m {
	case DeliveryTakeaway:
		return "Takeaway"
	case DeliveryDineIn:
		return "Dine-in"
	default:
		return "—"
	}
}

// Order is the header row of one customer transaction (a "folio"). Its
// aggregate columns are derived from the order's items and are never
// authoritative on their own.
type Order struct {
	tableName        struct{}     `bun:"table:orders,alias:o"`
	Folio            int64        `bun:"folio,pk,autoincrement" json:"folio"`
	DateID           int64        `bun:"date_id,notnull" json:"-"`
	TableID          TableID      `bun:"table_id,notnull" json:"table_id"`
	DeliveryModeID   DeliveryMode `bun:"delivery_mode_id,notnull" json:"delivery_mode_id"`
	TimeOfDay        string       `bun:"time_of_day,notnull" json:"time_of_day"`
	QuantityTotal    int          `bun:"quantity_total,notnull" json:"quantity_total"`
	AmountTotalCents int64        `bun:"amount_total_cents,notnull" json:"amount_total_cents"`
}

// OrderItem is one product line within an order. SubtotalCents is stored but
// derived: it always equals Quantity * UnitPriceCents at transaction
// boundaries.
type OrderItem struct {
	tableName      struct{} `bun:"table:order_items,alias:oi"`
	ID             int64    `bun:"id,pk,autoincrement" json:"id"`
	Folio          int64    `bun:"folio,notnull" json:"folio"`
	ProductID      int64    `bun:"product_id,notnull" json:"product_id"`
	Quantity       int      `bun:"quantity,notnull" json:"quantity"`
	UnitPriceCents int64    `bun:"unit_price_cents,notnull" json:"unit_price_cents"`
	SubtotalCents  int64    `bun:"subtotal_cents,notnull" json:"subtotal_cents"`

	// Joined from products for read-only snapshots.
	ProductName string `bun:"product_name,scanonly" json:"product_name,omitempty"`
}

// OrderDate is the deduplicated (day, month, year) dimension row referenced
// by order headers.
type OrderDate struct {
	tableName struct{} `bun:"table:order_dates,alias:od"`
	ID        int64    `bun:"id,pk,autoincrement" json:"id"`
	Day       int      `bun:"day,notnull" json:"day"`
	Month     int      `bun:"month,notnull" json:"month"`
	Year      int      `bun:"year,notnull" json:"year"`
}
