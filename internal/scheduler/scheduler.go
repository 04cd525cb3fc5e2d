package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	queue worker.Enqueuer
	quit  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// New creates a new scheduler
func New(queue worker.Enqueuer) *Scheduler {
	return &Scheduler{
		queue: queue,
		quit:  make(chan struct{}),
	}
}

// Schedule registers a job to run every interval. With runNow the job is
// also enqueued immediately.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job, runNow bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log := logger.FromContext(context.Background()).With("job", name)

		if runNow {
			s.enqueue(log, job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(log, job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(log *slog.Logger, job worker.Job) {
	if s.queue.Enqueue(job) {
		log.Debug(LogMsgJobEnqueued)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
