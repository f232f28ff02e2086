// Package stance classifies a moment of a timeline into the semantic state
// used for prompts and notification text.
package stance

import (
	"fmt"

	"focusring/internal/core/model"
)

// State separates a stopped countdown from a running one.
type State string

const (
	StatePaused  State = "paused"
	StateRunning State = "running"
)

// Condition refines a State.
type Condition string

// Paused conditions.
const (
	RestingAtTickZero          Condition = "resting_at_tick_zero"
	RestingAtStartOfWorkPeriod Condition = "resting_at_start_of_work_period"
	RestingAtStartOfBreak      Condition = "resting_at_start_of_break"
	Interrupted                Condition = "interrupted"
	ReachedTarget              Condition = "reached_target"
)

// Running conditions.
const (
	FromStartOfWorkPeriod          Condition = "from_start_of_work_period"
	FromStartOfBreakPeriod         Condition = "from_start_of_break_period"
	ResumedWorkPeriod              Condition = "resumed_work_period"
	ResumedBreakPeriod             Condition = "resumed_break_period"
	TransitioningToNextWorkPeriod  Condition = "transitioning_to_next_work_period"
	TransitioningToNextBreakPeriod Condition = "transitioning_to_next_break_period"
	InLastPhaseOfWorkPeriod        Condition = "in_last_phase_of_work_period"
	InLastPhaseOfBreakPeriod       Condition = "in_last_phase_of_break_period"
	BodyOfWorkPeriod               Condition = "body_of_work_period"
	BodyOfBreakPeriod              Condition = "body_of_break_period"
)

const (
	// openingTicks is how long a start, resume or crossing is narrated.
	openingTicks = 3
	// The last phase runs from lastPhaseFrom down to lastPhaseTo ticks left.
	lastPhaseFrom = 10
	lastPhaseTo   = 7
)

// Stance is a State with its Condition.
type Stance struct {
	State     State
	Condition Condition
}

// Paused returns a paused stance.
func Paused(condition Condition) Stance {
	return Stance{State: StatePaused, Condition: condition}
}

// Running returns a running stance.
func Running(condition Condition) Stance {
	return Stance{State: StateRunning, Condition: condition}
}

// IsRunning reports whether the countdown is running.
func (s Stance) IsRunning() bool {
	return s.State == StateRunning
}

func (s Stance) String() string {
	return fmt.Sprintf("%s(%s)", s.State, s.Condition)
}

// Of classifies timeline at tick. The checks run in a fixed order and each
// one assumes the earlier ones failed.
func Of(timeline model.Timeline, tick model.Tick) Stance {
	period := timeline.CurrentPeriod(tick)
	if !timeline.IsCountingDown(tick) {
		return Paused(pausedCondition(timeline, period, tick))
	}
	return Running(runningCondition(timeline.Countdown, period, tick))
}

func pausedCondition(timeline model.Timeline, period model.Period, tick model.Tick) Condition {
	switch {
	case tick == 0:
		return RestingAtTickZero
	case tick == timeline.TargetTick(tick):
		return ReachedTarget
	case tick == period.Range.Lo:
		return restingAtStartOf(period.Kind)
	case tick == period.Range.Hi:
		return restingAtStartOf(timeline.Pattern.NextPeriodAt(tick).Kind)
	default:
		return Interrupted
	}
}

func restingAtStartOf(kind model.PeriodKind) Condition {
	if kind.IsBreak() {
		return RestingAtStartOfBreak
	}
	return RestingAtStartOfWorkPeriod
}

func runningCondition(countdown model.Countdown, period model.Period, tick model.Tick) Condition {
	work := period.IsWork()
	sinceStart := tick - period.Range.Lo
	left := period.Range.Hi - tick

	switch {
	case countdown.Range.Lo == period.Range.Lo && sinceStart < openingTicks:
		return pick(work, FromStartOfWorkPeriod, FromStartOfBreakPeriod)
	case countdown.Range.Lo < period.Range.Lo && sinceStart < openingTicks:
		return pick(work, TransitioningToNextWorkPeriod, TransitioningToNextBreakPeriod)
	case tick-countdown.Range.Lo < openingTicks:
		return pick(work, ResumedWorkPeriod, ResumedBreakPeriod)
	case left >= lastPhaseTo && left <= lastPhaseFrom:
		return pick(work, InLastPhaseOfWorkPeriod, InLastPhaseOfBreakPeriod)
	default:
		return pick(work, BodyOfWorkPeriod, BodyOfBreakPeriod)
	}
}

func pick(work bool, ifWork, ifBreak Condition) Condition {
	if work {
		return ifWork
	}
	return ifBreak
}
