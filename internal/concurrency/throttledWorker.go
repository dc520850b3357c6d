package concurrency

import (
	"context"
	"errors"
	"time"
)

type ThrottledWorker struct {
	jobCallback func(ctx context.Context, arg string) error
	interval    time.Duration
}

func NewThrottledWorker(interval time.Duration, jobCallback func(ctx context.Context, arg string) error) ThrottledWorker {
	return ThrottledWorker{jobCallback: jobCallback, interval: interval}
}

// Run calls the job once per argument, in order, no more often than the
// interval allows. An interval of zero or less runs them back to back. It stops
// early if ctx is cancelled and returns every job error joined together.
func (w *ThrottledWorker) Run(ctx context.Context, jobArgs []string) error {
	if len(jobArgs) == 0 {
		return nil
	}

	jobArgsChannel := make(chan string, len(jobArgs))
	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)

	var tick <-chan time.Time
	if w.interval > 0 {
		limiter := time.NewTicker(w.interval)
		defer limiter.Stop()
		tick = limiter.C
	}

	var errs []error
	first := true
	for arg := range jobArgsChannel {
		if !first {
			if tick == nil {
				if err := ctx.Err(); err != nil {
					return errors.Join(append(errs, err)...)
				}
			} else {
				select {
				case <-ctx.Done():
					return errors.Join(append(errs, ctx.Err())...)
				case <-tick:
				}
			}
		}
		first = false
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
