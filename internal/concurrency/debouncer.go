package concurrency

import (
	"sync"
	"time"
)

// Debouncer runs only the most recent function it was given, once no newer
// call has arrived for the wait duration.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func() error
	// bumped on every Call so a timer that fired late cannot run a newer function
	gen uint64
}

func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

func (d *Debouncer) Call(f func() error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = f
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Flush runs the pending function now, if there is one, and returns its error.
func (d *Debouncer) Flush() error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	f := d.pending
	d.pending = nil
	d.mu.Unlock()

	if f == nil {
		return nil
	}
	return f()
}

// Stop drops the pending function without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	f := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	// nobody is waiting on a timed run, f reports its own failures
	if f != nil {
		_ = f()
	}
}
