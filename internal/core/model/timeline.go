package model

import "time"

// DefaultDailyTarget is the number of work periods in a fresh daily goal.
const DefaultDailyTarget = 10

// Timeline composes a work pattern, a countdown over it and the policies
// that decide where a running countdown stops. Every transition returns a
// new value; callers keep the history.
type Timeline struct {
	Countdown       Countdown   `json:"countdown"`
	DailyTarget     int         `json:"daily_target"`
	Pattern         WorkPattern `json:"pattern"`
	ResetWorkOnStop bool        `json:"reset_work_on_stop"`
	StopOnBreak     bool        `json:"stop_on_break"`
	StopOnWork      bool        `json:"stop_on_work"`
}

// NewTimeline returns the default timeline resting at tick zero.
func NewTimeline(now time.Time) Timeline {
	return Timeline{
		Countdown:   NewCountdown(0, now),
		DailyTarget: DefaultDailyTarget,
		Pattern:     StandardPattern(),
	}
}

// Tick returns the position of the countdown at now.
func (timeline Timeline) Tick(now time.Time) Tick {
	return timeline.Countdown.Tick(now)
}

// IsCountingDown reports whether the countdown is running at tick.
func (timeline Timeline) IsCountingDown(tick Tick) bool {
	return timeline.Countdown.IsCountingDown(tick)
}

// CurrentPeriod returns the period containing tick.
func (timeline Timeline) CurrentPeriod(tick Tick) Period {
	return timeline.Pattern.PeriodAt(tick)
}

// TargetTick returns the daily target tick as seen from tick.
func (timeline Timeline) TargetTick(tick Tick) Tick {
	return timeline.Pattern.TargetTick(tick, timeline.DailyTarget)
}

// NextStopTick bounds every resume: the natural stop given the stop flags,
// but never beyond the next daily target.
func (timeline Timeline) NextStopTick(tick Tick) Tick {
	natural := timeline.Pattern.NextStopTickAfter(tick, timeline.StopOnBreak, timeline.StopOnWork)
	return minTick(natural, timeline.TargetTick(tick))
}

// Resume starts the countdown from its current position.
func (timeline Timeline) Resume(now time.Time) Timeline {
	tick := timeline.Tick(now)
	timeline.Countdown = timeline.Countdown.Start(now, timeline.NextStopTick(tick))
	return timeline
}

// Pause stops the countdown. With ResetWorkOnStop a paused work period
// starts over.
func (timeline Timeline) Pause(now time.Time) Timeline {
	tick := timeline.Tick(now)
	if timeline.ResetWorkOnStop && timeline.CurrentPeriod(tick).IsWork() {
		return timeline.StopAtStartOfCurrentPeriod(now)
	}
	timeline.Countdown = timeline.Countdown.Stop(now)
	return timeline
}

// Toggle pauses a running countdown and resumes a stopped one.
func (timeline Timeline) Toggle(now time.Time) Timeline {
	if timeline.IsCountingDown(timeline.Tick(now)) {
		return timeline.Pause(now)
	}
	return timeline.Resume(now)
}

// StartAtStartOfCurrentPeriod restarts the current period and runs it.
func (timeline Timeline) StartAtStartOfCurrentPeriod(now time.Time) Timeline {
	period := timeline.CurrentPeriod(timeline.Tick(now))
	return timeline.startAt(period.Range.Lo, now)
}

// StartAtStartOfNextPeriod jumps to the next period and runs it.
func (timeline Timeline) StartAtStartOfNextPeriod(now time.Time) Timeline {
	period := timeline.Pattern.NextPeriodAt(timeline.Tick(now))
	return timeline.startAt(period.Range.Lo, now)
}

// StopAtStartOfCurrentPeriod rewinds to the start of the current period.
func (timeline Timeline) StopAtStartOfCurrentPeriod(now time.Time) Timeline {
	period := timeline.CurrentPeriod(timeline.Tick(now))
	timeline.Countdown = NewCountdown(period.Range.Lo, now)
	return timeline
}

// StopAtStartOfNextPeriod jumps to the start of the next period, stopped.
func (timeline Timeline) StopAtStartOfNextPeriod(now time.Time) Timeline {
	period := timeline.Pattern.NextPeriodAt(timeline.Tick(now))
	timeline.Countdown = NewCountdown(period.Range.Lo, now)
	return timeline
}

// SkipToNextPeriod moves to the next period and keeps running if the
// countdown was running.
func (timeline Timeline) SkipToNextPeriod(now time.Time) Timeline {
	if timeline.IsCountingDown(timeline.Tick(now)) {
		return timeline.StartAtStartOfNextPeriod(now)
	}
	return timeline.StopAtStartOfNextPeriod(now)
}

// ResetToTickZero returns to the very beginning, stopped.
func (timeline Timeline) ResetToTickZero(now time.Time) Timeline {
	timeline.Countdown = NewCountdown(0, now)
	return timeline
}

func (timeline Timeline) startAt(tick Tick, now time.Time) Timeline {
	timeline.Countdown = NewCountdown(tick, now).Start(now, timeline.NextStopTick(tick))
	return timeline
}
