package stance

import (
	"fmt"

	"focusring/internal/core/model"
	"focusring/internal/core/report"
	"focusring/internal/format"
)

// Primary answers which period or phase the moment belongs to.
type Primary string

const (
	PrimaryReadyToStart     Primary = "ready_to_start"
	PrimaryTimeToWork       Primary = "time_to_work"
	PrimaryTimeForBreak     Primary = "time_for_break"
	PrimaryTimeForLongBreak Primary = "time_for_long_break"
	PrimaryWorkInterrupted  Primary = "work_interrupted"
	PrimaryBreakInterrupted Primary = "break_interrupted"
	PrimaryReachedTarget    Primary = "reached_target"
	PrimaryWorking          Primary = "working"
	PrimaryOnBreak          Primary = "on_break"
	PrimaryOnLongBreak      Primary = "on_long_break"
)

// Secondary flags events near a boundary.
type Secondary string

const (
	SecondaryNone            Secondary = ""
	SecondaryPeriodStarted   Secondary = "period_started"
	SecondaryResumed         Secondary = "resumed"
	SecondaryRingClosingSoon Secondary = "ring_closing_soon"
	SecondaryReachedHalfway  Secondary = "reached_halfway"
)

// Tertiary answers what comes next, or how far behind the day is.
type Tertiary string

const (
	TertiaryNone            Tertiary = ""
	TertiaryNextWork        Tertiary = "next_work"
	TertiaryNextBreak       Tertiary = "next_break"
	TertiaryNextLongBreak   Tertiary = "next_long_break"
	TertiaryWorkPeriodsLeft Tertiary = "work_periods_left"
	TertiaryFallingBehind   Tertiary = "falling_behind"
	TertiaryTargetComplete  Tertiary = "target_complete"
)

// Observation is the three-tier reading of a moment along with the report
// it was derived from.
type Observation struct {
	Stance    Stance
	Primary   Primary
	Secondary Secondary
	Tertiary  Tertiary
	Report    report.Report
	Pattern   model.WorkPattern
}

// Observe classifies timeline at tick.
func Observe(timeline model.Timeline, tick model.Tick) Observation {
	s := Of(timeline, tick)
	r := report.New(timeline, tick)
	upcoming := upcomingPeriod(s, r)

	return Observation{
		Stance:    s,
		Primary:   primaryOf(s, upcoming),
		Secondary: secondaryOf(s, r),
		Tertiary:  tertiaryOf(s, r),
		Report:    r,
		Pattern:   timeline.Pattern,
	}
}

// upcomingPeriod is the period a paused moment is waiting to begin.
func upcomingPeriod(s Stance, r report.Report) model.Period {
	if !s.IsRunning() && r.Tick == r.CurrentPeriod.Range.Hi && r.Tick != r.CurrentPeriod.Range.Lo {
		return r.NextPeriod
	}
	return r.CurrentPeriod
}

func primaryOf(s Stance, period model.Period) Primary {
	switch s.Condition {
	case RestingAtTickZero:
		return PrimaryReadyToStart
	case ReachedTarget:
		return PrimaryReachedTarget
	case RestingAtStartOfWorkPeriod:
		return PrimaryTimeToWork
	case RestingAtStartOfBreak:
		if period.Kind == model.PeriodLongBreak {
			return PrimaryTimeForLongBreak
		}
		return PrimaryTimeForBreak
	case Interrupted:
		if period.IsWork() {
			return PrimaryWorkInterrupted
		}
		return PrimaryBreakInterrupted
	}

	switch period.Kind {
	case model.PeriodShortBreak:
		return PrimaryOnBreak
	case model.PeriodLongBreak:
		return PrimaryOnLongBreak
	default:
		return PrimaryWorking
	}
}

func secondaryOf(s Stance, r report.Report) Secondary {
	if r.Tick >= r.HalfwayTick && r.Tick-r.HalfwayTick < openingTicks {
		return SecondaryReachedHalfway
	}
	switch s.Condition {
	case FromStartOfWorkPeriod, FromStartOfBreakPeriod,
		TransitioningToNextWorkPeriod, TransitioningToNextBreakPeriod:
		return SecondaryPeriodStarted
	case ResumedWorkPeriod, ResumedBreakPeriod:
		return SecondaryResumed
	case InLastPhaseOfWorkPeriod, InLastPhaseOfBreakPeriod:
		return SecondaryRingClosingSoon
	}
	return SecondaryNone
}

func tertiaryOf(s Stance, r report.Report) Tertiary {
	switch s.Condition {
	case ReachedTarget:
		return TertiaryTargetComplete
	case Interrupted:
		return TertiaryFallingBehind
	case RestingAtTickZero, RestingAtStartOfWorkPeriod, RestingAtStartOfBreak:
		return TertiaryWorkPeriodsLeft
	}

	switch r.NextPeriod.Kind {
	case model.PeriodShortBreak:
		return TertiaryNextBreak
	case model.PeriodLongBreak:
		return TertiaryNextLongBreak
	default:
		return TertiaryNextWork
	}
}

// Title names the moment.
func (o Observation) Title() string {
	ordinal := format.Ordinal(o.Report.NumOfWorkPeriodsCompleted + 1)
	switch o.Primary {
	case PrimaryReadyToStart:
		return "Ready to focus"
	case PrimaryTimeToWork:
		return fmt.Sprintf("Time for your %s work period", ordinal)
	case PrimaryTimeForBreak:
		return "Time for a break"
	case PrimaryTimeForLongBreak:
		return "Time for a long break"
	case PrimaryWorkInterrupted:
		return "Work paused"
	case PrimaryBreakInterrupted:
		return "Break paused"
	case PrimaryReachedTarget:
		return "Daily goal reached"
	case PrimaryOnBreak:
		return "On a short break"
	case PrimaryOnLongBreak:
		return "On a long break"
	default:
		return fmt.Sprintf("Focusing on your %s work period", ordinal)
	}
}

// Subtitle describes a nearby boundary event, or is empty.
func (o Observation) Subtitle() string {
	remaining := int(o.Report.RemainingTicks)
	switch o.Secondary {
	case SecondaryReachedHalfway:
		return "Halfway to today's goal"
	case SecondaryPeriodStarted:
		return format.Duration(remaining) + " to go"
	case SecondaryResumed:
		return fmt.Sprintf("Resumed with %s left", format.Duration(remaining))
	case SecondaryRingClosingSoon:
		return fmt.Sprintf("Ring closing in %s", format.Duration(remaining))
	default:
		return ""
	}
}

// Body tells what comes next or how the day stands.
func (o Observation) Body() string {
	r := o.Report
	switch o.Tertiary {
	case TertiaryNextWork:
		return fmt.Sprintf("Next up: %s of work.", format.Duration(o.Pattern.WorkDuration))
	case TertiaryNextBreak:
		return fmt.Sprintf("Next up: %s of rest.", format.Duration(o.Pattern.ShortBreakDuration))
	case TertiaryNextLongBreak:
		return fmt.Sprintf("Next up: a long break of %s.", format.Duration(o.Pattern.LongBreakDuration))
	case TertiaryWorkPeriodsLeft:
		return fmt.Sprintf("%s left to reach today's goal of %d.",
			format.Count(r.NumOfWorkPeriodsRemaining, "work period", "work periods"), r.DailyTarget)
	case TertiaryFallingBehind:
		return fmt.Sprintf("Pick up where you left off: %s of work remain today.",
			format.Duration(int(r.UnusedWorkTicks)))
	case TertiaryTargetComplete:
		return fmt.Sprintf("All %d work periods done (%s). Enjoy the rest of your day.",
			r.DailyTarget, format.Percent(r.TargetProgress))
	default:
		return ""
	}
}
