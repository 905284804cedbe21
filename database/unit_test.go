package database

import (
	"context"
	"errors"
	"fmt"
	"smorgas_server/lib"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnitRetriesTransientConflicts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := RunUnit(context.Background(), func(ctx context.Context) Outcome {
		calls++
		if calls < 3 {
			return Outcome{Tag: OutcomeConflict, Err: errors.New("deadlock detected")}
		}
		return Outcome{Tag: OutcomeCommitted}
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRunUnitStopsOnTerminalFailure(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	calls := 0
	err := RunUnit(context.Background(), func(ctx context.Context) Outcome {
		calls++
		return Outcome{Tag: OutcomeFailed, Err: sentinel}
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls, "terminal failures must not be retried")
}

func TestRunUnitExhaustsBudget(t *testing.T) {
	t.Parallel()

	calls := 0
	err := RunUnit(context.Background(), func(ctx context.Context) Outcome {
		calls++
		return Outcome{Tag: OutcomeConflict, Err: errors.New("could not serialize access")}
	})

	assert.ErrorIs(t, err, lib.ErrTransientConflict)
	assert.Equal(t, MaxUnitAttempts, calls)
}

func TestRunUnitHonorsContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RunUnit(ctx, func(ctx context.Context) Outcome {
		calls++
		return Outcome{Tag: OutcomeConflict, Err: errors.New("deadlock detected")}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want OutcomeTag
	}{
		{name: "nil error commits", err: nil, want: OutcomeCommitted},
		{name: "deadlock is a conflict", err: &pgconn.PgError{Code: "40P01"}, want: OutcomeConflict},
		{name: "serialization failure is a conflict", err: &pgconn.PgError{Code: "40001"}, want: OutcomeConflict},
		{name: "lock timeout is a conflict", err: &pgconn.PgError{Code: "55P03"}, want: OutcomeConflict},
		{name: "unique violation is terminal", err: &pgconn.PgError{Code: "23505"}, want: OutcomeFailed},
		{name: "domain sentinel is terminal", err: lib.ErrNotFound, want: OutcomeFailed},
		{name: "plain error is terminal", err: errors.New("boom"), want: OutcomeFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := Classify(tt.err)
			assert.Equal(t, tt.want, out.Tag)
			if tt.err != nil {
				assert.Equal(t, tt.err, out.Err)
			}
		})
	}
}

func TestIsTransientConflictSeesWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("updating item: %w", &pgconn.PgError{Code: "40001"})
	assert.True(t, IsTransientConflict(wrapped))
	assert.False(t, IsTransientConflict(errors.New("updating item: deadlock")))
	assert.False(t, IsTransientConflict(nil))
}
