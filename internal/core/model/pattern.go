package model

import "fmt"

// WorkPattern defines one session: NumWorkPeriods work periods separated by
// short breaks and closed by a long break. Durations are in seconds; a
// period of d seconds spans d+1 ticks so its countdown shows d down to 0.
type WorkPattern struct {
	WorkDuration       int `json:"work_duration"`
	ShortBreakDuration int `json:"short_break_duration"`
	LongBreakDuration  int `json:"long_break_duration"`
	NumWorkPeriods     int `json:"num_work_periods"`
}

// StandardPattern returns 25 minute work periods, 5 minute short breaks,
// a 15 minute long break and four work periods per session.
func StandardPattern() WorkPattern {
	return WorkPattern{
		WorkDuration:       25 * 60,
		ShortBreakDuration: 5 * 60,
		LongBreakDuration:  15 * 60,
		NumWorkPeriods:     4,
	}
}

// Validate reports whether the pattern can partition ticks.
func (pattern WorkPattern) Validate() error {
	if pattern.WorkDuration < 0 || pattern.ShortBreakDuration < 0 || pattern.LongBreakDuration < 0 {
		return fmt.Errorf("%w: work %ds, short break %ds, long break %ds",
			ErrInvalidDuration, pattern.WorkDuration, pattern.ShortBreakDuration, pattern.LongBreakDuration)
	}
	if pattern.NumWorkPeriods < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkPeriods, pattern.NumWorkPeriods)
	}
	return nil
}

func (pattern WorkPattern) mustBeValid() {
	if err := pattern.Validate(); err != nil {
		panic("model: degenerate work pattern: " + err.Error())
	}
}

// PeriodsPerSession returns the number of periods in one session.
func (pattern WorkPattern) PeriodsPerSession() Tick {
	return Tick(2 * pattern.NumWorkPeriods)
}

// SessionTickCount returns the number of ticks in one session.
func (pattern WorkPattern) SessionTickCount() Tick {
	n := Tick(pattern.NumWorkPeriods)
	return n*Tick(pattern.WorkDuration+1) +
		(n-1)*Tick(pattern.ShortBreakDuration+1) +
		Tick(pattern.LongBreakDuration+1)
}

// SessionPeriods returns the periods of a session starting at tick zero.
func (pattern WorkPattern) SessionPeriods() []Period {
	pattern.mustBeValid()

	periods := make([]Period, 0, pattern.PeriodsPerSession())
	for i := 0; i < pattern.NumWorkPeriods; i++ {
		periods = append(periods, newPeriod(PeriodWork, pattern.WorkDuration))
		if i < pattern.NumWorkPeriods-1 {
			periods = append(periods, newPeriod(PeriodShortBreak, pattern.ShortBreakDuration))
		} else {
			periods = append(periods, newPeriod(PeriodLongBreak, pattern.LongBreakDuration))
		}
	}
	return resequence(periods)
}

func newPeriod(kind PeriodKind, seconds int) Period {
	return Period{Kind: kind, Range: TickRange{Lo: 0, Hi: Tick(seconds)}}
}

// resequence lays periods end to end starting at tick zero.
func resequence(periods []Period) []Period {
	next := Tick(0)
	for i, period := range periods {
		periods[i] = period.Advance(next - period.Range.Lo)
		next = periods[i].Range.Hi + 1
	}
	return periods
}

func (pattern WorkPattern) sessionIndexAt(tick Tick) Tick {
	return floorDiv(tick, pattern.SessionTickCount())
}

// SessionAt returns the session containing tick.
func (pattern WorkPattern) SessionAt(tick Tick) Session {
	index := pattern.sessionIndexAt(tick)
	offset := index * pattern.SessionTickCount()

	periods := pattern.SessionPeriods()
	for i := range periods {
		periods[i] = periods[i].Advance(offset)
	}
	return Session{
		Index:   index,
		Range:   TickRange{Lo: offset, Hi: offset + pattern.SessionTickCount() - 1},
		Periods: periods,
	}
}

// IndexOfPeriodAt returns the global ordinal of the period containing tick.
// Work periods have even ordinals and breaks odd ones.
func (pattern WorkPattern) IndexOfPeriodAt(tick Tick) Tick {
	session := pattern.sessionIndexAt(tick)
	local := tick - session*pattern.SessionTickCount()
	for i, period := range pattern.SessionPeriods() {
		if period.Range.Contains(local) {
			return Tick(i) + session*pattern.PeriodsPerSession()
		}
	}
	panic(fmt.Sprintf("model: no period contains tick %d", tick))
}

// PeriodAtIndex returns the period with the given global ordinal.
func (pattern WorkPattern) PeriodAtIndex(index Tick) Period {
	perSession := pattern.PeriodsPerSession()
	session := floorDiv(index, perSession)
	local := index - session*perSession
	return pattern.SessionPeriods()[local].Advance(session * pattern.SessionTickCount())
}

// PeriodAt returns the period containing tick.
func (pattern WorkPattern) PeriodAt(tick Tick) Period {
	return pattern.PeriodAtIndex(pattern.IndexOfPeriodAt(tick))
}

// NextPeriodAt returns the period following the one containing tick.
func (pattern WorkPattern) NextPeriodAt(tick Tick) Period {
	return pattern.PeriodAtIndex(pattern.IndexOfPeriodAt(tick) + 1)
}

// WorkPeriodAtIndex returns the n-th work period, counting from zero.
func (pattern WorkPattern) WorkPeriodAtIndex(n Tick) Period {
	return pattern.PeriodAtIndex(2 * n)
}

// ZoneAt returns the index of the zone of dailyTarget work periods (and
// their trailing breaks) that contains tick.
func (pattern WorkPattern) ZoneAt(tick Tick, dailyTarget int) Tick {
	mustBePositiveTarget(dailyTarget)
	return floorDiv(pattern.IndexOfPeriodAt(tick), Tick(2*dailyTarget))
}

// TargetZoneAt returns the zone whose target TargetTick reports. Ticks in
// a zone's trailing break belong to the next zone.
func (pattern WorkPattern) TargetZoneAt(tick Tick, dailyTarget int) Tick {
	zone := pattern.ZoneAt(tick, dailyTarget)
	if tick > pattern.ZoneTargetTick(zone, dailyTarget) {
		zone++
	}
	return zone
}

// ZoneTargetTick returns the last tick of the final work period of zone.
func (pattern WorkPattern) ZoneTargetTick(zone Tick, dailyTarget int) Tick {
	d := Tick(dailyTarget)
	return pattern.WorkPeriodAtIndex((zone+1)*d - 1).Range.Hi
}

// ZoneRange spans from the first tick of zone to its target tick.
func (pattern WorkPattern) ZoneRange(zone Tick, dailyTarget int) TickRange {
	first := pattern.WorkPeriodAtIndex(zone * Tick(dailyTarget))
	return TickRange{Lo: first.Range.Lo, Hi: pattern.ZoneTargetTick(zone, dailyTarget)}
}

// TargetTick returns the tick at which dailyTarget work periods are done.
// It is never earlier than tick.
func (pattern WorkPattern) TargetTick(tick Tick, dailyTarget int) Tick {
	return pattern.ZoneTargetTick(pattern.TargetZoneAt(tick, dailyTarget), dailyTarget)
}

// HalfwayTargetTick returns the tick at which half of the daily target is
// done. For an odd target the mark sits inside a work period.
func (pattern WorkPattern) HalfwayTargetTick(tick Tick, dailyTarget int) Tick {
	zone := pattern.TargetZoneAt(tick, dailyTarget)
	d := Tick(dailyTarget)
	halfway := pattern.WorkPeriodAtIndex((zone+1)*d - 1 - d/2).Range.Hi
	if dailyTarget%2 == 1 {
		halfway -= Tick(pattern.WorkDuration/2 + 1)
	}
	return halfway
}

// NextStopTickAfter returns the tick at which a countdown started at tick
// stops on its own. Without either flag it never stops.
func (pattern WorkPattern) NextStopTickAfter(tick Tick, stopAtBreak, stopAtWork bool) Tick {
	if !stopAtBreak && !stopAtWork {
		return MaxTick - 1
	}

	index := pattern.IndexOfPeriodAt(tick)
	for {
		period := pattern.PeriodAtIndex(index)
		if period.Range.Hi > tick {
			switch {
			case stopAtBreak && stopAtWork:
				return period.Range.Hi
			case stopAtBreak && period.IsBreak():
				return period.Range.Hi
			case stopAtWork && period.IsWork():
				return period.Range.Hi
			}
		}
		index++
	}
}

func mustBePositiveTarget(dailyTarget int) {
	if dailyTarget < 1 {
		panic(fmt.Sprintf("model: daily target must be positive, got %d", dailyTarget))
	}
}
