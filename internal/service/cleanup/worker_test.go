package cleanup

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingPruner struct {
	calls atomic.Int32
	days  atomic.Int32
}

func (p *countingPruner) CleanupOldDecisions(daysToKeep int) (int64, error) {
	p.calls.Add(1)
	p.days.Store(int32(daysToKeep))
	return 3, nil
}

func TestWorkerRunsImmediatelyAndOnInterval(t *testing.T) {
	pruner := &countingPruner{}
	w := NewWorker(pruner, 0)
	w.Interval = 10 * time.Millisecond

	w.Start()
	deadline := time.Now().Add(time.Second)
	for pruner.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()

	if pruner.calls.Load() < 2 {
		t.Fatalf("expected at least 2 cleanup runs, got %d", pruner.calls.Load())
	}
	if pruner.days.Load() != 30 {
		t.Fatalf("expected default retention of 30 days, got %d", pruner.days.Load())
	}
}
