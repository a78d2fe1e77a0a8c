package collapse

import (
	"io"
	"log"
	"math/rand"
	"time"

	"tilecollapse/pkg/engine/throttle"
)

// Engine collapses maps. It owns the throttle its operations yield to and
// the random source used to order candidate tiles.
type Engine struct {
	throttle *throttle.Throttle
	rng      *rand.Rand
	logger   *log.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithThrottle sets the throttle the engine yields to
func WithThrottle(t *throttle.Throttle) Option {
	return func(e *Engine) {
		if t != nil {
			e.throttle = t
		}
	}
}

// WithRand sets the random source
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds a new random source, making collapses reproducible
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for run progress. Nothing is logged by default.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine. Without options it runs unthrottled with a
// time seeded random source.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		throttle: throttle.New(0),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Throttle returns the throttle the engine yields to
func (e *Engine) Throttle() *throttle.Throttle {
	return e.throttle
}
