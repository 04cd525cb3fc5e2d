package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SubRace_Go/internal/logger"
)

// Enqueuer accepts jobs for asynchronous execution
type Enqueuer interface {
	Enqueue(job Job) bool
}

// DailyScoringWorker enqueues the scoring job once a day at a fixed local
// wall-clock time
type DailyScoringWorker struct {
	BaseWorker
	queue   Enqueuer
	job     Job
	loc     *time.Location
	hour    int
	minute  int
	timerID uuid.UUID
	now     func() time.Time
}

// NewDailyScoringWorker creates a worker that fires at hour:minute in loc
func NewDailyScoringWorker(queue Enqueuer, job Job, loc *time.Location, hour, minute int) *DailyScoringWorker {
	if loc == nil {
		loc = time.UTC
	}
	w := &DailyScoringWorker{
		queue:   queue,
		job:     job,
		loc:     loc,
		hour:    hour,
		minute:  minute,
		timerID: uuid.New(),
		now:     time.Now,
	}
	w.init()
	return w
}

// Start schedules the first run
func (w *DailyScoringWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms the timer for the next run. Long waits are split into a
// standby stage that wakes shortly before the run and re-arms precisely.
func (w *DailyScoringWorker) scheduleNext() {
	duration := timeUntilNextRun(w.now(), w.loc, w.hour, w.minute)
	log := logger.FromContext(context.Background())

	if duration > standbyThreshold {
		wait := duration - standbyLead
		if w.replaceTimer(w.timerID, wait, w.scheduleNext) {
			log.Info(LogMsgDailyScoringStandby, "next_check_at", w.now().Add(wait))
		}
		return
	}

	if w.replaceTimer(w.timerID, duration, w.fire) {
		log.Info(LogMsgDailyScoringApproach, "next_run_at", w.now().Add(duration).In(w.loc))
	}
}

func (w *DailyScoringWorker) fire() {
	w.wg.Add(1)
	defer w.wg.Done()

	if w.stopping() {
		return
	}

	// A timer that fires noticeably early re-arms for the remainder. A
	// remainder close to a full day means we are on time or slightly late.
	rem := timeUntilNextRun(w.now(), w.loc, w.hour, w.minute)
	if rem > earlyFireSlack && rem < lateFireWindow {
		logger.FromContext(context.Background()).Debug(LogMsgDailyScoringEarlyWake, "remaining", rem)
		w.scheduleNext()
		return
	}

	if w.queue.Enqueue(w.job) {
		logger.FromContext(context.Background()).Info(LogMsgDailyScoringEnqueued)
	}

	w.scheduleNext()
}

// Shutdown cancels the pending timer
func (w *DailyScoringWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, DailyScoringWorkerName)
}

// timeUntilNextRun returns the wait from now until the next hour:minute in
// loc. A run time equal to now is treated as tomorrow's.
func timeUntilNextRun(now time.Time, loc *time.Location, hour, minute int) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next.Sub(local)
}
