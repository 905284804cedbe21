package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"smorgas_server/database"
	"smorgas_server/lib"
	"smorgas_server/structs"
	"smorgas_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// OrderService owns the pessimistic-locking order workflow. Every mutating
// operation locks rows in the same global order (item, then header, then all
// items of the folio), so no two operations can form a wait cycle; residual
// store-level conflicts are absorbed by the retry coordinator.
type OrderService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *OrderService {
	return &OrderService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

func validateHeaderFields(tableID, modeID int) error {
	if !tables.TableID(tableID).Valid() {
		return fmt.Errorf("%w: table %d is not one of the cafeteria tables (%d-%d)",
			lib.ErrValidation, tableID, tables.MinTableID, tables.MaxTableID)
	}
	if !tables.DeliveryMode(modeID).Valid() {
		return fmt.Errorf("%w: unknown delivery mode %d", lib.ErrValidation, modeID)
	}
	return nil
}

func validateItemBounds(quantity int, unitPriceCents int64) error {
	if quantity < tables.MinQuantity || quantity > tables.MaxQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d",
			lib.ErrValidation, tables.MinQuantity, tables.MaxQuantity)
	}
	if unitPriceCents < tables.MinUnitPriceCents || unitPriceCents > tables.MaxUnitPriceCents {
		return fmt.Errorf("%w: unit price must be between %d and %d cents",
			lib.ErrValidation, tables.MinUnitPriceCents, tables.MaxUnitPriceCents)
	}
	return nil
}

// CreateOrder records a new order header plus its items in one transaction.
// Aggregates are computed from the items before anything is written, so the
// header never disagrees with its lines.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	if err := validateHeaderFields(req.TableID, req.DeliveryModeID); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", lib.ErrValidation)
	}

	items := make([]tables.OrderItem, 0, len(req.Items))
	for i, it := range req.Items {
		if it.ProductID <= 0 {
			return nil, fmt.Errorf("%w: item %d has no product reference", lib.ErrValidation, i+1)
		}
		if err := validateItemBounds(it.Quantity, it.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, tables.OrderItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			SubtotalCents:  tables.Subtotal(it.Quantity, it.UnitPriceCents),
		})
	}

	quantityTotal, amountTotal := tables.ComputeTotals(items)
	now := time.Now()

	order := &tables.Order{
		TableID:          tables.TableID(req.TableID),
		DeliveryModeID:   tables.DeliveryMode(req.DeliveryModeID),
		TimeOfDay:        now.Format("15:04:05"),
		QuantityTotal:    quantityTotal,
		AmountTotalCents: amountTotal,
	}

	out := os.db.InTx(ctx, func(tx bun.Tx) error {
		dateID, err := lookupOrCreateDate(ctx, tx, now)
		if err != nil {
			return err
		}
		order.DateID = dateID

		if _, err := tx.NewInsert().Model(order).Returning("folio").Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for i := range items {
			items[i].Folio = order.Folio
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		return nil
	})
	if out.Err != nil {
		os.logger.Error("Failed to create order", gecho.Field("error", out.Err))
		return nil, out.Err
	}

	os.logger.Info("Order created",
		gecho.Field("folio", order.Folio),
		gecho.Field("items", len(items)),
		gecho.Field("amount_total_cents", order.AmountTotalCents))
	return order, nil
}

// lookupOrCreateDate returns the id of the deduplicated date-dimension row
// for the given day, inserting it on first use.
func lookupOrCreateDate(ctx context.Context, tx bun.Tx, now time.Time) (int64, error) {
	d := &tables.OrderDate{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}

	err := tx.NewSelect().Model(d).
		Where("day = ?", d.Day).
		Where("month = ?", d.Month).
		Where("year = ?", d.Year).
		Scan(ctx)
	if err == nil {
		return d.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	if _, err := tx.NewInsert().Model(d).Returning("id").Exec(ctx); err != nil {
		return 0, lib.MapPgError(err)
	}
	return d.ID, nil
}

// lockOrder acquires the row locks for a folio in the fixed global order:
// header first, then every item, each via a blocking FOR UPDATE read.
func lockOrder(ctx context.Context, tx bun.Tx, folio int64) ([]tables.OrderItem, error) {
	header := new(tables.Order)
	err := tx.NewSelect().Model(header).
		Column("folio").
		Where("o.folio = ?", folio).
		For("UPDATE").
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %d", lib.ErrNotFound, folio)
	}
	if err != nil {
		return nil, err
	}

	var items []tables.OrderItem
	err = tx.NewSelect().Model(&items).
		Where("oi.folio = ?", folio).
		Order("oi.id ASC").
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// writeTotals recomputes the header aggregates from the (locked) items and
// persists them.
func writeTotals(ctx context.Context, tx bun.Tx, folio int64, items []tables.OrderItem) error {
	quantityTotal, amountTotal := tables.ComputeTotals(items)

	_, err := tx.NewUpdate().Model((*tables.Order)(nil)).
		Set("quantity_total = ?", quantityTotal).
		Set("amount_total_cents = ?", amountTotal).
		Where("folio = ?", folio).
		Exec(ctx)
	return err
}

// UpdateOrderItem changes one line's quantity and unit price under the full
// folio lock, then recomputes the header aggregates. Out-of-range input is
// rejected before any lock is taken.
func (os *OrderService) UpdateOrderItem(ctx context.Context, itemID int64, quantity int, unitPriceCents int64) error {
	if err := validateItemBounds(quantity, unitPriceCents); err != nil {
		return err
	}

	return database.RunUnit(ctx, func(ctx context.Context) database.Outcome {
		return os.db.InTx(ctx, func(tx bun.Tx) error {
			// Lock the targeted item first; the row yields the owning folio.
			item := new(tables.OrderItem)
			err := tx.NewSelect().Model(item).
				Column("id", "folio").
				Where("oi.id = ?", itemID).
				For("UPDATE").
				Scan(ctx)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: order item %d", lib.ErrNotFound, itemID)
			}
			if err != nil {
				return err
			}

			items, err := lockOrder(ctx, tx, item.Folio)
			if err != nil {
				return err
			}

			subtotal := tables.Subtotal(quantity, unitPriceCents)
			if _, err := tx.NewUpdate().Model((*tables.OrderItem)(nil)).
				Set("quantity = ?", quantity).
				Set("unit_price_cents = ?", unitPriceCents).
				Set("subtotal_cents = ?", subtotal).
				Where("id = ?", itemID).
				Exec(ctx); err != nil {
				return err
			}

			for i := range items {
				if items[i].ID == itemID {
					items[i].Quantity = quantity
					items[i].UnitPriceCents = unitPriceCents
					items[i].SubtotalCents = subtotal
				}
			}

			return writeTotals(ctx, tx, item.Folio, items)
		})
	})
}

// UpdateOrderHeader changes the table and delivery mode of an order. The item
// rows are locked too, even though they are unchanged, to serialize against
// concurrent line edits on the same folio.
func (os *OrderService) UpdateOrderHeader(ctx context.Context, folio int64, tableID, modeID int) error {
	if err := validateHeaderFields(tableID, modeID); err != nil {
		return err
	}

	return database.RunUnit(ctx, func(ctx context.Context) database.Outcome {
		return os.db.InTx(ctx, func(tx bun.Tx) error {
			if _, err := lockOrder(ctx, tx, folio); err != nil {
				return err
			}

			_, err := tx.NewUpdate().Model((*tables.Order)(nil)).
				Set("table_id = ?", tableID).
				Set("delivery_mode_id = ?", modeID).
				Where("folio = ?", folio).
				Exec(ctx)
			return err
		})
	})
}

// DeleteOrder removes an order and its items. Only administrators may delete;
// the role is checked before any lock is taken. Items go first to satisfy the
// foreign key on the header.
func (os *OrderService) DeleteOrder(ctx context.Context, actor *tables.User, folio int64) error {
	if actor == nil || !actor.IsAdmin() {
		return fmt.Errorf("%w: only administrators can delete orders", lib.ErrForbidden)
	}

	err := database.RunUnit(ctx, func(ctx context.Context) database.Outcome {
		return os.db.InTx(ctx, func(tx bun.Tx) error {
			if _, err := lockOrder(ctx, tx, folio); err != nil {
				return err
			}

			if _, err := tx.NewDelete().Model((*tables.OrderItem)(nil)).
				Where("folio = ?", folio).
				Exec(ctx); err != nil {
				return err
			}

			_, err := tx.NewDelete().Model((*tables.Order)(nil)).
				Where("folio = ?", folio).
				Exec(ctx)
			return err
		})
	})
	if err != nil {
		return err
	}

	os.logger.Info("Order deleted",
		gecho.Field("folio", folio),
		gecho.Field("deleted_by", actor.Username))
	return nil
}

// GetOrderItems returns the current item snapshot of a folio with product
// names joined in. Read-only: no locks.
func (os *OrderService) GetOrderItems(ctx context.Context, folio int64) ([]tables.OrderItem, error) {
	var items []tables.OrderItem

	err := database.WithRetry(ctx, func() error {
		items = nil
		return os.db.NewSelect().Model(&items).
			ColumnExpr("oi.*").
			ColumnExpr("p.name AS product_name").
			Join("JOIN products AS p ON p.id = oi.product_id").
			Where("oi.folio = ?", folio).
			Order("oi.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return items, nil
}

// ListOrders returns the order index, newest folio first.
func (os *OrderService) ListOrders(ctx context.Context) ([]structs.OrderSummary, error) {
	orders, err := database.Query[tables.Order](os.db).
		OrderBy("folio", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	summaries := make([]structs.OrderSummary, len(orders))
	for i, o := range orders {
		summaries[i] = structs.OrderSummary{
			Folio:            o.Folio,
			TableID:          o.TableID,
			DeliveryModeID:   o.DeliveryModeID,
			DeliveryMode:     o.DeliveryModeID.Label(),
			QuantityTotal:    o.QuantityTotal,
			AmountTotalCents: o.AmountTotalCents,
		}
	}
	return summaries, nil
}
