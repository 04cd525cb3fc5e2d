package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// replaceTimer stops the timer registered under id and stores the new one.
// It reports false without arming anything once shutdown has begun.
func (w *BaseWorker) replaceTimer(id uuid.UUID, d time.Duration, f func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	if old, ok := w.timers[id]; ok {
		old.Stop()
	}
	w.timers[id] = time.AfterFunc(d, f)
	return true
}

func (w *BaseWorker) stopping() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for id, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "timer_id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
