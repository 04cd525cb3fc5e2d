package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error

func (f NotifierFunc) AnnounceScoring(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error {
	return f(ctx, day, summary)
}

// MultiNotifier calls every non-nil notifier in order and joins their errors
func MultiNotifier(notifiers ...Notifier) Notifier {
	active := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			active = append(active, n)
		}
	}
	return NotifierFunc(func(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error {
		var errs []error
		for _, n := range active {
			if err := n.AnnounceScoring(ctx, day, summary); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
