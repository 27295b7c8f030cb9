package cleanup

import (
	"log"
	"time"
)

type DecisionPruner interface {
	CleanupOldDecisions(daysToKeep int) (int64, error)
}

type Worker struct {
	Decisions  DecisionPruner
	DaysToKeep int
	Interval   time.Duration
	stop       chan struct{}
}

func NewWorker(decisions DecisionPruner, daysToKeep int) *Worker {
	if daysToKeep <= 0 {
		daysToKeep = 30
	}
	return &Worker{
		Decisions:  decisions,
		DaysToKeep: daysToKeep,
		Interval:   time.Hour,
		stop:       make(chan struct{}),
	}
}

// Start runs one cleanup immediately and then every Interval until Stop.
func (w *Worker) Start() {
	go func() {
		w.runCleanup()

		ticker := time.NewTicker(w.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.runCleanup()
			case <-w.stop:
				return
			}
		}
	}()
	log.Println("[CLEANUP] Background worker started")
}

func (w *Worker) Stop() {
	close(w.stop)
}

func (w *Worker) runCleanup() {
	deletedCount, err := w.Decisions.CleanupOldDecisions(w.DaysToKeep)
	if err != nil {
		log.Printf("[CLEANUP] Error cleaning up decisions: %v", err)
		return
	}
	if deletedCount > 0 {
		log.Printf("[CLEANUP] Removed %d decisions older than %d days", deletedCount, w.DaysToKeep)
	}
}
