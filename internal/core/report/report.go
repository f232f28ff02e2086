// Package report derives read-only progress projections from a timeline.
package report

import "focusring/internal/core/model"

// Report is a snapshot of a timeline at one tick. It is recomputed on
// every read and never stored.
type Report struct {
	Tick           model.Tick
	IsCountingDown bool
	StopTick       model.Tick

	CurrentPeriod  model.Period
	NextPeriod     model.Period
	PeriodIndex    model.Tick
	RemainingTicks model.Tick
	PeriodProgress float64

	Session         model.TickRange
	SessionIndex    model.Tick
	SessionProgress float64

	Zone           model.Tick
	ZoneRange      model.TickRange
	TargetTick     model.Tick
	HalfwayTick    model.Tick
	TargetProgress float64

	DailyTarget               int
	NumOfWorkPeriodsCompleted int
	NumOfWorkPeriodsRemaining int
	UsedWorkTicks             model.Tick
	UnusedWorkTicks           model.Tick
}

// New builds the report of timeline at tick.
func New(timeline model.Timeline, tick model.Tick) Report {
	pattern := timeline.Pattern
	dailyTarget := timeline.DailyTarget

	period := pattern.PeriodAt(tick)
	session := pattern.SessionAt(tick)
	zone := pattern.TargetZoneAt(tick, dailyTarget)
	zoneRange := pattern.ZoneRange(zone, dailyTarget)

	completed := completedWorkPeriods(pattern, zone, dailyTarget, tick)
	used := model.Tick(completed * pattern.WorkDuration)
	if period.IsWork() && zoneRange.Contains(tick) && tick < period.Range.Hi {
		used += tick - period.Range.Lo
	}
	total := model.Tick(dailyTarget * pattern.WorkDuration)

	return Report{
		Tick:           tick,
		IsCountingDown: timeline.IsCountingDown(tick),
		StopTick:       timeline.Countdown.Range.Hi,

		CurrentPeriod:  period,
		NextPeriod:     pattern.NextPeriodAt(tick),
		PeriodIndex:    pattern.IndexOfPeriodAt(tick),
		RemainingTicks: remaining(period.Range, tick),
		PeriodProgress: period.Range.Progress(tick),

		Session:         session.Range,
		SessionIndex:    session.Index,
		SessionProgress: session.Range.Progress(tick),

		Zone:           zone,
		ZoneRange:      zoneRange,
		TargetTick:     zoneRange.Hi,
		HalfwayTick:    pattern.HalfwayTargetTick(tick, dailyTarget),
		TargetProgress: zoneRange.Progress(tick),

		DailyTarget:               dailyTarget,
		NumOfWorkPeriodsCompleted: completed,
		NumOfWorkPeriodsRemaining: dailyTarget - completed,
		UsedWorkTicks:             used,
		UnusedWorkTicks:           total - used,
	}
}

// IsTargetReached reports whether the daily target was reached exactly at
// this tick.
func (r Report) IsTargetReached() bool {
	return r.Tick == r.TargetTick
}

// IsPastHalfway reports whether the halfway mark has been passed.
func (r Report) IsPastHalfway() bool {
	return r.Tick >= r.HalfwayTick
}

func remaining(r model.TickRange, tick model.Tick) model.Tick {
	left := r.Hi - tick
	if left < 0 {
		return 0
	}
	if left > r.Count() {
		return r.Count()
	}
	return left
}

// completedWorkPeriods counts the work periods of zone whose last tick has
// been reached.
func completedWorkPeriods(pattern model.WorkPattern, zone model.Tick, dailyTarget int, tick model.Tick) int {
	relative := pattern.IndexOfPeriodAt(tick) - zone*model.Tick(2*dailyTarget)
	if relative < 0 {
		return 0
	}
	completed := int((relative + 1) / 2)
	if period := pattern.PeriodAt(tick); period.IsWork() && tick == period.Range.Hi {
		completed++
	}
	if completed > dailyTarget {
		return dailyTarget
	}
	return completed
}
