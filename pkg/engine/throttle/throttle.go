// Package throttle paces long running generation loops so they can be
// animated step by step, and lets them be cancelled cooperatively.
//
// A generation task calls Begin before its first step and End when it
// returns. At every yield point it calls Step, which sleeps just long enough
// to keep the cumulative pace at one step per Delay. Pacing is measured from
// the start of the run rather than per step, so slow steps do not make the
// animation drift.
package throttle

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"
)

var (
	// ErrCanceled is returned by Step once a cancellation was requested
	ErrCanceled = errors.New("throttle: processing was canceled")
	// ErrBusy is returned by Begin while another run is still processing
	ErrBusy = errors.New("throttle: already processing")
)

// PollInterval is how often Cancel checks whether the run has finished
const PollInterval = 10 * time.Millisecond

// Throttle holds the pacing and cancellation state of one generation task.
// Two tasks that may run at the same time need two Throttles.
type Throttle struct {
	mu sync.Mutex

	processing      bool
	cancelRequested bool
	aborting        bool
	canceled        bool

	start time.Time
	steps int64
	delay time.Duration

	// wake interrupts a sleeping Step after Cancel or SetDelay
	wake chan struct{}

	guard  sync.Locker
	locked sync.Locker

	now func() time.Time
}

// New creates a throttle with the given delay per step
func New(delay time.Duration) *Throttle {
	if delay < 0 {
		delay = 0
	}
	return &Throttle{
		delay: delay,
		wake:  make(chan struct{}, 1),
		now:   time.Now,
	}
}

// SetGuard registers a lock that is held for the whole run and released only
// while Step sleeps. A renderer that takes the same lock therefore only ever
// observes the grids between two steps.
func (t *Throttle) SetGuard(l sync.Locker) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.guard = l
}

// Begin marks the start of a run: processing is set, the start time is
// taken and the step counter is reset.
func (t *Throttle) Begin() error {
	t.mu.Lock()
	if t.processing {
		t.mu.Unlock()
		return ErrBusy
	}
	t.processing = true
	t.cancelRequested = false
	t.aborting = false
	t.canceled = false
	t.steps = 0
	guard := t.guard
	t.mu.Unlock()

	t.drainWake()

	if guard != nil {
		guard.Lock()
	}

	t.mu.Lock()
	t.locked = guard
	t.start = t.now()
	t.mu.Unlock()
	return nil
}

// End marks the end of a run. It is safe to call after a canceled Step.
func (t *Throttle) End() {
	t.mu.Lock()
	locked := t.locked
	t.locked = nil
	t.mu.Unlock()

	if locked != nil {
		locked.Unlock()
	}

	t.mu.Lock()
	t.processing = false
	t.cancelRequested = false
	t.aborting = false
	t.mu.Unlock()
}

// Processing reports whether a run is active
func (t *Throttle) Processing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processing
}

// Canceled reports whether the current or last run was aborted
func (t *Throttle) Canceled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.canceled
}

// Steps returns the number of steps taken in the current run
func (t *Throttle) Steps() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.steps
}

// Delay returns the current delay per step
func (t *Throttle) Delay() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delay
}

// SetDelay changes the delay per step. During a run the start time is moved
// so that the pending sleep stays the same: steps already taken keep the
// budget they had and only future steps use the new rate.
func (t *Throttle) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}

	t.mu.Lock()
	if t.processing {
		t.start = t.start.Add(time.Duration(t.steps) * (t.delay - d))
	}
	t.delay = d
	t.mu.Unlock()

	t.signal()
}

// Step is a yield point. It counts the step and sleeps the difference
// between the time the run should have taken so far and the time it
// actually took. It returns ErrCanceled when Cancel was called or ctx is
// done. Outside of a run it only checks ctx.
func (t *Throttle) Step(ctx context.Context) error {
	t.mu.Lock()
	if !t.processing {
		t.mu.Unlock()
		if ctx.Err() != nil {
			return ErrCanceled
		}
		return nil
	}
	if t.abortLocked(ctx) {
		t.mu.Unlock()
		return ErrCanceled
	}
	t.steps++
	locked := t.locked
	t.mu.Unlock()

	if locked != nil {
		locked.Unlock()
		defer locked.Lock()
	}

	for {
		t.mu.Lock()
		if t.abortLocked(ctx) {
			t.mu.Unlock()
			return ErrCanceled
		}
		wait := t.delay*time.Duration(t.steps) - t.now().Sub(t.start)
		t.mu.Unlock()

		if wait <= 0 {
			if locked != nil {
				runtime.Gosched()
			}
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-t.wake:
		case <-ctx.Done():
		}
		timer.Stop()
	}
}

// Cancel requests cancellation of the current run and waits until the run
// has ended or ctx is done. The run observes the request at its next Step.
func (t *Throttle) Cancel(ctx context.Context) error {
	t.mu.Lock()
	if !t.processing {
		t.mu.Unlock()
		return nil
	}
	t.cancelRequested = true
	t.mu.Unlock()

	t.signal()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		if !t.Processing() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// abortLocked reports whether the run must stop. The first time it does,
// the request flag is consumed; every later Step of the same run keeps
// failing until End.
func (t *Throttle) abortLocked(ctx context.Context) bool {
	if t.aborting {
		return true
	}
	if t.cancelRequested || ctx.Err() != nil {
		t.cancelRequested = false
		t.aborting = true
		t.canceled = true
		return true
	}
	return false
}

func (t *Throttle) signal() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

func (t *Throttle) drainWake() {
	select {
	case <-t.wake:
	default:
	}
}
