package calculator

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the trailing delay applied to recomputations.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs only the latest triggered function after a quiet period.
// A new Trigger cancels the context of the previous one, whether it is still
// waiting or already running.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	base    context.Context
	stop    context.CancelFunc
	cancel  context.CancelFunc
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a Debouncer. A non-positive delay selects DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	base, stop := context.WithCancel(context.Background())
	return &Debouncer{delay: delay, base: base, stop: stop}
}

// Trigger schedules fn to run after the delay, replacing any earlier trigger.
func (d *Debouncer) Trigger(fn func(ctx context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.cancelLocked()
	ctx, cancel := context.WithCancel(d.base)
	d.cancel = cancel
	d.timer = time.AfterFunc(d.delay, func() {
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})
}

// Stop cancels pending and running work. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.cancelLocked()
	d.stop()
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
