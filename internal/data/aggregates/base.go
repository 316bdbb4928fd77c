package aggregates

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/platform/dbctx"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	return d
}

// executeWrite runs fn in one transaction, maps whatever comes out of it
// into the failure taxonomy and reports the outcome.
func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	err := deps.Runner.InTx(ctx, fn)
	mapped := MapError(op, err)

	if mapped != nil {
		switch failure.KindOf(mapped) {
		case failure.KindUniquenessConflict, failure.KindReferentialConflict, failure.KindRetirementConflict:
			deps.Hooks.IncConflict(op)
		}
	}
	deps.Hooks.ObserveOperation(op, statusOf(mapped), time.Since(start))
	return mapped
}
