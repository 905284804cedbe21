package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

type whereClause struct {
	query string
	args  []any
}

// QueryBuilder provides a fluent, type-safe API for queries outside the
// locking workflow. Reads go through the transient-failure retry policy.
type QueryBuilder[T any] struct {
	db        *DB
	wheres    []whereClause
	orders    []string
	limitVal  *int
	offsetVal *int
}

// Query creates a new QueryBuilder instance for the model T.
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{query: fmt.Sprintf("%s = ?", column), args: []any{value}})
	return q
}

// WhereRaw adds a raw WHERE condition
func (q *QueryBuilder[T]) WhereRaw(query string, args ...any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{query: query, args: args})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, fmt.Sprintf("%s %s", column, direction))
	return q
}

func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

func (q *QueryBuilder[T]) buildSelect(model any) *bun.SelectQuery {
	sel := q.db.NewSelect().Model(model)
	for _, w := range q.wheres {
		sel = sel.Where(w.query, w.args...)
	}
	for _, o := range q.orders {
		sel = sel.Order(o)
	}
	if q.limitVal != nil {
		sel = sel.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		sel = sel.Offset(*q.offsetVal)
	}
	return sel
}

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	var data []T

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect(&data).Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w", err)
	}

	return data, nil
}

// First executes the query and returns the first matching record, or nil when
// no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	var data T

	err := WithRetry(ctx, func() error {
		return q.buildSelect(&data).Limit(1).Scan(ctx)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w", err)
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	var count int

	err := WithRetry(ctx, func() error {
		var model T
		sel := q.db.NewSelect().Model(&model)
		for _, w := range q.wheres {
			sel = sel.Where(w.query, w.args...)
		}
		var err error
		count, err = sel.Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	return count, nil
}

// Insert inserts a new record and returns it (autoincrement/default columns
// populated by the database).
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w", err)
	}

	return data, nil
}

// Update updates records matching the query from a column/value map and
// returns the number of affected rows.
func (q *QueryBuilder[T]) Update(ctx context.Context, values map[string]any) (int, error) {
	var rowsAffected int64

	err := WithRetry(ctx, func() error {
		var model T
		upd := q.db.NewUpdate().Model(&model)
		for key, value := range values {
			upd = upd.Set("? = ?", bun.Ident(key), value)
		}
		for _, w := range q.wheres {
			upd = upd.Where(w.query, w.args...)
		}

		res, err := upd.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w", err)
	}

	return int(rowsAffected), nil
}

// Delete deletes records matching the query and returns the affected count.
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	var rowsAffected int64

	err := WithRetry(ctx, func() error {
		var model T
		del := q.db.NewDelete().Model(&model)
		for _, w := range q.wheres {
			del = del.Where(w.query, w.args...)
		}

		res, err := del.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w", err)
	}

	return int(rowsAffected), nil
}
