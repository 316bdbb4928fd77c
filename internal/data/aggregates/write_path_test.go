package aggregates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ovenlight/mealdesk-backend/internal/data/aggregates"
	aggtest "github.com/ovenlight/mealdesk-backend/internal/data/aggregates/testutil"
	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
)

func TestWriteMapsRunnerFailure(t *testing.T) {
	runner := &aggtest.InjectedTxRunner{FailBegin: errors.New("begin: connection refused")}
	hooks := &aggtest.HooksRecorder{}
	agg := aggregates.NewOrderAggregate(aggregates.BaseDeps{Runner: runner, Hooks: hooks}, nil, nil, nil, nil)

	err := agg.DeleteOrder(context.Background(), 1)
	if !failure.IsKind(err, failure.KindInternal) {
		t.Fatalf("kind = %q, want internal", failure.KindOf(err))
	}
	if runner.BeginCalls != 1 {
		t.Fatalf("begin calls = %d", runner.BeginCalls)
	}
	obs, ok := hooks.LastObserved()
	if !ok {
		t.Fatalf("no observation recorded")
	}
	if obs.Op != "order.delete" || obs.Status != string(failure.KindInternal) {
		t.Fatalf("observed %+v", obs)
	}
	if len(hooks.Conflicts) != 0 {
		t.Fatalf("unexpected conflict count: %d", len(hooks.Conflicts))
	}
}

func TestWriteCountsConflicts(t *testing.T) {
	runner := &aggtest.InjectedTxRunner{
		FailBeforeBody: &pgconn.PgError{Code: "23505", ConstraintName: "idx_product_name_active"},
	}
	hooks := &aggtest.HooksRecorder{}
	agg := aggregates.NewOrderAggregate(aggregates.BaseDeps{Runner: runner, Hooks: hooks}, nil, nil, nil, nil)

	err := agg.DeleteOrder(context.Background(), 1)
	if !failure.IsKind(err, failure.KindUniquenessConflict) {
		t.Fatalf("kind = %q, want uniqueness conflict", failure.KindOf(err))
	}
	if runner.RollbackCalls != 1 {
		t.Fatalf("rollback calls = %d", runner.RollbackCalls)
	}
	if len(hooks.Conflicts) != 1 || hooks.Conflicts[0] != "order.delete" {
		t.Fatalf("conflicts = %v", hooks.Conflicts)
	}
}
