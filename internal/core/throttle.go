package core

// StepThrottle converts a monotonically increasing host tick counter into a
// slower automaton step cadence. It is rate-limited, not accumulating: a call
// reports at most one due step no matter how many intervals elapsed, so a
// stalled frame never triggers a catch-up burst.
type StepThrottle struct {
	interval float64
	lastTick int64
}

// NewStepThrottle targets stepsPerSecond against a host running at
// hostTicksPerSecond. Non-positive rates fall back to the host rate, which
// yields one step per tick.
func NewStepThrottle(hostTicksPerSecond, stepsPerSecond int) *StepThrottle {
	if hostTicksPerSecond <= 0 {
		hostTicksPerSecond = 60
	}
	if stepsPerSecond <= 0 {
		stepsPerSecond = hostTicksPerSecond
	}
	return &StepThrottle{interval: float64(hostTicksPerSecond) / float64(stepsPerSecond)}
}

// ShouldStep reports whether one step is due at the given host tick. The
// baseline is tick zero, matching a host frame counter that starts counting
// from the moment the entity spawns.
func (t *StepThrottle) ShouldStep(tick int64) bool {
	if float64(tick-t.lastTick) >= t.interval {
		t.lastTick = tick
		return true
	}
	return false
}

// Interval returns the host-tick spacing between steps.
func (t *StepThrottle) Interval() float64 { return t.interval }
