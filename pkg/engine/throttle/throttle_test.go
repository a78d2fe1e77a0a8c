package throttle

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginWhileProcessing(t *testing.T) {
	tr := New(0)
	require.NoError(t, tr.Begin())
	assert.True(t, tr.Processing())
	assert.ErrorIs(t, tr.Begin(), ErrBusy)

	tr.End()
	assert.False(t, tr.Processing())
	require.NoError(t, tr.Begin())
	tr.End()
}

func TestStepOutsideRun(t *testing.T) {
	tr := New(time.Hour)
	assert.NoError(t, tr.Step(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tr.Step(ctx), ErrCanceled)
}

func TestStepCountsSteps(t *testing.T) {
	tr := New(0)
	require.NoError(t, tr.Begin())
	defer tr.End()

	for i := 0; i < 5; i++ {
		require.NoError(t, tr.Step(context.Background()))
	}
	assert.Equal(t, int64(5), tr.Steps())
}

func TestStepPacing(t *testing.T) {
	const delay = 5 * time.Millisecond
	const steps = 10

	tr := New(delay)
	started := time.Now()
	require.NoError(t, tr.Begin())
	for i := 0; i < steps; i++ {
		require.NoError(t, tr.Step(context.Background()))
	}
	tr.End()

	assert.GreaterOrEqual(t, time.Since(started), delay*steps)
}

func TestSetDelayKeepsPendingSleep(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := New(10 * time.Millisecond)
	tr.now = func() time.Time { return base }

	require.NoError(t, tr.Begin())
	defer tr.End()

	// five steps taken instantly: 50ms still to sleep
	tr.steps = 5
	pending := func() time.Duration {
		return tr.delay*time.Duration(tr.steps) - tr.now().Sub(tr.start)
	}
	require.Equal(t, 50*time.Millisecond, pending())

	tr.SetDelay(2 * time.Millisecond)
	assert.Equal(t, 2*time.Millisecond, tr.Delay())
	assert.Equal(t, 50*time.Millisecond, pending())

	tr.SetDelay(20 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, pending())
}

func TestSetDelayNegative(t *testing.T) {
	tr := New(-time.Second)
	assert.Equal(t, time.Duration(0), tr.Delay())
	tr.SetDelay(-time.Millisecond)
	assert.Equal(t, time.Duration(0), tr.Delay())
}

func TestCancelWakesSleepingStep(t *testing.T) {
	tr := New(time.Hour)
	require.NoError(t, tr.Begin())

	errs := make(chan error, 1)
	go func() {
		defer tr.End()
		for {
			if err := tr.Step(context.Background()); err != nil {
				errs <- err
				return
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	started := time.Now()
	require.NoError(t, tr.Cancel(ctx))
	assert.Less(t, time.Since(started), time.Second)
	assert.ErrorIs(t, <-errs, ErrCanceled)
	assert.False(t, tr.Processing())
	assert.True(t, tr.Canceled())

	// a new run starts cleanly
	require.NoError(t, tr.Begin())
	assert.False(t, tr.Canceled())
	assert.NoError(t, tr.Step(context.Background()))
	tr.End()
	assert.False(t, tr.Canceled())
}

func TestCancelWithoutRun(t *testing.T) {
	tr := New(time.Second)
	assert.NoError(t, tr.Cancel(context.Background()))
	assert.False(t, tr.Processing())
}

func TestCancelTimesOut(t *testing.T) {
	tr := New(0)
	require.NoError(t, tr.Begin())
	defer tr.End()

	// nobody calls Step, so the run never ends
	ctx, cancel := context.WithTimeout(context.Background(), 3*PollInterval)
	defer cancel()
	assert.ErrorIs(t, tr.Cancel(ctx), context.DeadlineExceeded)
}

func TestContextCancelStopsStep(t *testing.T) {
	tr := New(time.Hour)
	require.NoError(t, tr.Begin())
	defer tr.End()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	assert.ErrorIs(t, tr.Step(ctx), ErrCanceled)
	// the run stays aborted until End
	assert.ErrorIs(t, tr.Step(context.Background()), ErrCanceled)
}

func TestGuardReleasedWhileSleeping(t *testing.T) {
	var mu sync.Mutex
	tr := New(20 * time.Millisecond)
	tr.SetGuard(&mu)

	require.NoError(t, tr.Begin())
	assert.False(t, mu.TryLock(), "guard must be held during a run")

	go func() {
		defer tr.End()
		for tr.Step(context.Background()) == nil {
		}
	}()

	assert.Eventually(t, func() bool {
		if mu.TryLock() {
			mu.Unlock()
			return true
		}
		return false
	}, time.Second, time.Millisecond)

	require.NoError(t, tr.Cancel(context.Background()))
	assert.True(t, mu.TryLock(), "guard must be released after End")
	mu.Unlock()
}

func TestDelayForSpeed(t *testing.T) {
	slowest := DelayForSpeed(0, DefaultSteepness)
	assert.InDelta(t, float64(time.Second), float64(slowest), float64(time.Millisecond))

	fastest := DelayForSpeed(MaxSpeed, DefaultSteepness)
	assert.Less(t, fastest, time.Millisecond)

	prev := slowest
	for speed := 100.0; speed <= MaxSpeed; speed += 100 {
		d := DelayForSpeed(speed, DefaultSteepness)
		assert.Less(t, d, prev, "speed %v", speed)
		prev = d
	}

	assert.Equal(t, DelayForSpeed(MaxSpeed, DefaultSteepness), DelayForSpeed(5000, 0))
}
