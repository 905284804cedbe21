package database

import (
	"context"
	"database/sql"
	"fmt"
	"smorgas_server/lib"

	"github.com/uptrace/bun"
)

// MaxUnitAttempts bounds how often a unit of work is re-executed after a
// transient conflict before the failure is surfaced.
const MaxUnitAttempts = 3

type OutcomeTag uint8

const (
	OutcomeCommitted OutcomeTag = iota
	OutcomeConflict
	OutcomeFailed
)

// Outcome is the tagged result of one execution of a unit of work. The
// coordinator dispatches on the tag rather than on error identity.
type Outcome struct {
	Tag OutcomeTag
	Err error
}

// UnitOfWork owns its full transactional boundary: it must begin, and commit
// or roll back, before returning.
type UnitOfWork func(ctx context.Context) Outcome

// Classify maps an error from inside a transaction to an outcome. Deadlocks,
// serialization failures and lock-wait timeouts are transient conflicts;
// everything else, including domain sentinels, is a terminal failure.
func Classify(err error) Outcome {
	if err == nil {
		return Outcome{Tag: OutcomeCommitted}
	}
	if IsTransientConflict(err) {
		return Outcome{Tag: OutcomeConflict, Err: err}
	}
	return Outcome{Tag: OutcomeFailed, Err: err}
}

// IsTransientConflict reports whether err is a store-level serialization
// conflict expected to resolve on retry.
func IsTransientConflict(err error) bool {
	switch lib.SQLState(err) {
	case "40001", // serialization_failure
		"40P01", // deadlock_detected
		"55P03": // lock_not_available (lock_timeout expired)
		return true
	}
	return false
}

// InTx runs fn inside a single transaction and classifies the result. The
// transaction is rolled back on any error or panic, so the unit never leaks
// a held row lock.
func (db *DB) InTx(ctx context.Context, fn func(tx bun.Tx) error) (out Outcome) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return Classify(err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			out = Outcome{Tag: OutcomeFailed, Err: fmt.Errorf("panic in unit of work: %v", p)}
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return Classify(err)
	}

	return Outcome{Tag: OutcomeCommitted}
}

var onConflictRetry func()

// SetConflictRetryHook installs a callback invoked once per conflicted unit
// execution. Used to feed the retry counter metric.
func SetConflictRetryHook(fn func()) {
	onConflictRetry = fn
}

// RunUnit executes a unit of work, re-invoking it on transient conflicts up
// to MaxUnitAttempts times. Terminal failures propagate immediately; an
// exhausted retry budget surfaces as ErrTransientConflict with the last
// underlying cause attached.
func RunUnit(ctx context.Context, unit UnitOfWork) error {
	var last Outcome

	for attempt := 1; attempt <= MaxUnitAttempts; attempt++ {
		out := unit(ctx)

		switch out.Tag {
		case OutcomeCommitted:
			return nil
		case OutcomeFailed:
			return out.Err
		}

		last = out
		if onConflictRetry != nil {
			onConflictRetry()
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: giving up after %d attempts: %v", lib.ErrTransientConflict, MaxUnitAttempts, last.Err)
}
