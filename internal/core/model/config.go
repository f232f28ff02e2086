package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDuration indicates a negative period duration.
	ErrInvalidDuration = errors.New("period durations must not be negative")
	// ErrInvalidWorkPeriods indicates a session without work periods.
	ErrInvalidWorkPeriods = errors.New("a session needs at least one work period")
	// ErrInvalidDailyTarget indicates a non-positive daily target.
	ErrInvalidDailyTarget = errors.New("daily target must be positive")
)

// TimelineConfig contains the user-editable parts of a Timeline.
type TimelineConfig struct {
	Pattern         WorkPattern
	DailyTarget     int
	StopOnBreak     bool
	StopOnWork      bool
	ResetWorkOnStop bool
}

// Validate checks the construction preconditions of a Timeline.
func (config TimelineConfig) Validate() error {
	if err := config.Pattern.Validate(); err != nil {
		return err
	}
	if config.DailyTarget < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDailyTarget, config.DailyTarget)
	}
	return nil
}

// Config extracts the configuration of a timeline.
func (timeline Timeline) Config() TimelineConfig {
	return TimelineConfig{
		Pattern:         timeline.Pattern,
		DailyTarget:     timeline.DailyTarget,
		StopOnBreak:     timeline.StopOnBreak,
		StopOnWork:      timeline.StopOnWork,
		ResetWorkOnStop: timeline.ResetWorkOnStop,
	}
}

// Apply installs the configuration on a timeline. Ticks mean different
// things under a different pattern, so a pattern change also resets the
// countdown to tick zero.
func (config TimelineConfig) Apply(timeline Timeline, now time.Time) (Timeline, error) {
	if err := config.Validate(); err != nil {
		return timeline, err
	}
	if config.Pattern != timeline.Pattern {
		timeline = timeline.ResetToTickZero(now)
	}
	timeline.Pattern = config.Pattern
	timeline.DailyTarget = config.DailyTarget
	timeline.StopOnBreak = config.StopOnBreak
	timeline.StopOnWork = config.StopOnWork
	timeline.ResetWorkOnStop = config.ResetWorkOnStop
	return timeline, nil
}
