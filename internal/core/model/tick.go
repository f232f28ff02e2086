package model

import (
	"fmt"
	"math"
	"time"
)

// Tick is one elapsed second from an arbitrary zero reference.
type Tick int

// MaxTick is the largest representable tick.
const MaxTick Tick = math.MaxInt

// Clock returns the current real timestamp.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// TickRange is an inclusive interval [Lo, Hi].
type TickRange struct {
	Lo Tick `json:"lo"`
	Hi Tick `json:"hi"`
}

// NewTickRange returns [lo, hi], swapping the bounds if needed.
func NewTickRange(lo, hi Tick) TickRange {
	if hi < lo {
		lo, hi = hi, lo
	}
	return TickRange{Lo: lo, Hi: hi}
}

// Instant returns the degenerate range [tick, tick].
func Instant(tick Tick) TickRange {
	return TickRange{Lo: tick, Hi: tick}
}

// Count returns the number of ticks in the range.
func (r TickRange) Count() Tick {
	return r.Hi - r.Lo + 1
}

// Advance shifts both bounds by n.
func (r TickRange) Advance(n Tick) TickRange {
	return TickRange{Lo: r.Lo + n, Hi: r.Hi + n}
}

// Contains reports whether Lo <= tick <= Hi.
func (r TickRange) Contains(tick Tick) bool {
	return r.Lo <= tick && tick <= r.Hi
}

// Clamp limits tick to the range.
func (r TickRange) Clamp(tick Tick) Tick {
	if tick < r.Lo {
		return r.Lo
	}
	if tick > r.Hi {
		return r.Hi
	}
	return tick
}

// Progress reports how far tick is through the range. It reaches 1 on Hi
// itself, not on the tick after.
func (r TickRange) Progress(tick Tick) float64 {
	if tick <= r.Lo {
		return 0
	}
	if tick >= r.Hi {
		return 1
	}
	return float64(tick-r.Lo) / float64(r.Count()-1)
}

func (r TickRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

func minTick(a, b Tick) Tick {
	if a < b {
		return a
	}
	return b
}

func maxTick(a, b Tick) Tick {
	if a > b {
		return a
	}
	return b
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b Tick) Tick {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
