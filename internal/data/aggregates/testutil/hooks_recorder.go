package testutil

import (
	"sync"
	"time"

	"github.com/ovenlight/mealdesk-backend/internal/data/aggregates"
)

// ObservedOp is one recorded ObserveOperation call.
type ObservedOp struct {
	Op       string
	Status   string
	Duration time.Duration
}

// HooksRecorder records aggregate hook calls for assertions.
type HooksRecorder struct {
	mu        sync.Mutex
	Observed  []ObservedOp
	Conflicts []string
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObserveOperation(op, status string, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Observed = append(h.Observed, ObservedOp{Op: op, Status: status, Duration: d})
}

func (h *HooksRecorder) IncConflict(op string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Conflicts = append(h.Conflicts, op)
}

// LastObserved returns the most recent observation, if any.
func (h *HooksRecorder) LastObserved() (ObservedOp, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.Observed) == 0 {
		return ObservedOp{}, false
	}
	return h.Observed[len(h.Observed)-1], true
}
