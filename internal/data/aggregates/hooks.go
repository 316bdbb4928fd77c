package aggregates

import (
	"time"

	"github.com/ovenlight/mealdesk-backend/internal/domain/failure"
	"github.com/ovenlight/mealdesk-backend/internal/platform/logger"
)

// Hooks observes aggregate write outcomes.
type Hooks interface {
	ObserveOperation(op, status string, d time.Duration)
	IncConflict(op string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}

// LogHooks reports aggregate outcomes through the structured logger.
type LogHooks struct {
	Log *logger.Logger
}

func NewLogHooks(baseLog *logger.Logger) LogHooks {
	return LogHooks{Log: baseLog.With("component", "aggregates")}
}

func (h LogHooks) ObserveOperation(op, status string, d time.Duration) {
	if h.Log == nil {
		return
	}
	h.Log.Debug("Aggregate operation", "op", op, "status", status, "duration_ms", d.Milliseconds())
}

func (h LogHooks) IncConflict(op string) {
	if h.Log == nil {
		return
	}
	h.Log.Warn("Aggregate conflict", "op", op)
}

func statusOf(err error) string {
	if err == nil {
		return "success"
	}
	if kind := failure.KindOf(err); kind != "" {
		return string(kind)
	}
	return "failure"
}
