package throttle

import (
	"math"
	"time"
)

// DefaultSteepness is the curve steepness used by the animation speed slider
const DefaultSteepness = 0.005

// MaxSpeed is the fastest animation speed
const MaxSpeed = 1000

// DelayForSpeed converts an animation speed in [0, MaxSpeed] into a delay
// per step. The curve is exponential: speed 0 waits about a second per step
// and MaxSpeed waits about a microsecond. A steepness outside (0, 1) falls
// back to DefaultSteepness.
func DelayForSpeed(speed, steepness float64) time.Duration {
	if steepness <= 0 || steepness >= 1 {
		steepness = DefaultSteepness
	}
	speed = math.Max(0, math.Min(MaxSpeed, speed))

	normalized := speed / MaxSpeed
	ms := (1.00001-(math.Pow(steepness, normalized)-1)/(steepness-1))*1000 - 0.009
	if ms < 0 {
		ms = 0
	}

	return time.Duration(ms * float64(time.Millisecond))
}
