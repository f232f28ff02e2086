package model

import "time"

// Countdown is an interval over ticks anchored to a real timestamp. It is
// counting down while the tick derived from StartTime lies in [Lo, Hi).
type Countdown struct {
	Range     TickRange `json:"range"`
	StartTime time.Time `json:"start_time"`
}

// NewCountdown returns a stopped countdown at tick.
func NewCountdown(tick Tick, at time.Time) Countdown {
	return Countdown{Range: Instant(tick), StartTime: at}
}

// IsCountingDown reports whether tick lies in the half-open [Lo, Hi).
func (countdown Countdown) IsCountingDown(tick Tick) bool {
	return countdown.Range.Lo != countdown.Range.Hi &&
		countdown.Range.Lo <= tick && tick < countdown.Range.Hi
}

// Tick returns the position of the countdown at the given instant.
func (countdown Countdown) Tick(at time.Time) Tick {
	elapsed := Tick(at.Sub(countdown.StartTime) / time.Second)
	if at.Before(countdown.StartTime) {
		elapsed = 0
	}
	return countdown.Range.Clamp(countdown.Range.Lo + elapsed)
}

// Start runs the countdown from its current position up to ceiling.
func (countdown Countdown) Start(at time.Time, ceiling Tick) Countdown {
	tick := countdown.Tick(at)
	return Countdown{
		Range:     TickRange{Lo: tick, Hi: maxTick(tick, ceiling)},
		StartTime: at,
	}
}

// Stop collapses the countdown onto its current position.
func (countdown Countdown) Stop(at time.Time) Countdown {
	return NewCountdown(countdown.Tick(at), at)
}

// Toggle stops a running countdown and starts a stopped one.
func (countdown Countdown) Toggle(at time.Time, ceiling Tick) Countdown {
	if countdown.IsCountingDown(countdown.Tick(at)) {
		return countdown.Stop(at)
	}
	return countdown.Start(at, ceiling)
}
