package model

// PeriodKind tells work periods apart from breaks.
type PeriodKind string

const (
	PeriodWork       PeriodKind = "work"
	PeriodShortBreak PeriodKind = "short_break"
	PeriodLongBreak  PeriodKind = "long_break"
)

// IsBreak reports whether the kind is a short or long break.
func (kind PeriodKind) IsBreak() bool {
	return kind == PeriodShortBreak || kind == PeriodLongBreak
}

// Period is a typed contiguous tick interval.
type Period struct {
	Kind  PeriodKind `json:"kind"`
	Range TickRange  `json:"range"`
}

// IsWork reports whether the period is a work period.
func (period Period) IsWork() bool {
	return period.Kind == PeriodWork
}

// IsBreak reports whether the period is a break.
func (period Period) IsBreak() bool {
	return period.Kind.IsBreak()
}

// Advance returns the period shifted by n ticks.
func (period Period) Advance(n Tick) Period {
	return Period{Kind: period.Kind, Range: period.Range.Advance(n)}
}

// Session is one cycle of work periods and breaks ending in a long break.
type Session struct {
	Index   Tick
	Range   TickRange
	Periods []Period
}
