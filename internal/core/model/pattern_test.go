package model

import "testing"

// shortPattern mirrors the standard pattern with seconds instead of minutes:
// W[0,25] S[26,31] W[32,57] S[58,63] W[64,89] S[90,95] W[96,121] L[122,137].
func shortPattern() WorkPattern {
	return WorkPattern{WorkDuration: 25, ShortBreakDuration: 5, LongBreakDuration: 15, NumWorkPeriods: 4}
}

func TestTickRangeProgress(t *testing.T) {
	r := TickRange{Lo: 0, Hi: 24}
	tests := []struct {
		tick Tick
		want float64
	}{
		{-5, 0},
		{0, 0},
		{12, 0.5},
		{24, 1},
		{30, 1},
	}
	for _, tt := range tests {
		if got := r.Progress(tt.tick); got != tt.want {
			t.Errorf("Progress(%d) = %v, want %v", tt.tick, got, tt.want)
		}
	}

	previous := 0.0
	for tick := r.Lo; tick <= r.Hi; tick++ {
		got := r.Progress(tick)
		if got < previous {
			t.Fatalf("Progress(%d) = %v decreased from %v", tick, got, previous)
		}
		previous = got
	}
}

func TestTickRangeHelpers(t *testing.T) {
	r := NewTickRange(10, 4)
	if r.Lo != 4 || r.Hi != 10 {
		t.Fatalf("NewTickRange(10, 4) = %v, want [4, 10]", r)
	}
	if r.Count() != 7 {
		t.Errorf("Count() = %d, want 7", r.Count())
	}
	if got := r.Advance(3); got != (TickRange{Lo: 7, Hi: 13}) {
		t.Errorf("Advance(3) = %v", got)
	}
	if !r.Contains(4) || !r.Contains(10) || r.Contains(11) {
		t.Errorf("Contains is not inclusive on both ends for %v", r)
	}
	if r.Clamp(-1) != 4 || r.Clamp(99) != 10 || r.Clamp(6) != 6 {
		t.Errorf("Clamp misbehaves for %v", r)
	}
}

func TestSessionPeriods(t *testing.T) {
	pattern := shortPattern()
	want := []Period{
		{Kind: PeriodWork, Range: TickRange{0, 25}},
		{Kind: PeriodShortBreak, Range: TickRange{26, 31}},
		{Kind: PeriodWork, Range: TickRange{32, 57}},
		{Kind: PeriodShortBreak, Range: TickRange{58, 63}},
		{Kind: PeriodWork, Range: TickRange{64, 89}},
		{Kind: PeriodShortBreak, Range: TickRange{90, 95}},
		{Kind: PeriodWork, Range: TickRange{96, 121}},
		{Kind: PeriodLongBreak, Range: TickRange{122, 137}},
	}

	got := pattern.SessionPeriods()
	if len(got) != len(want) {
		t.Fatalf("len(SessionPeriods()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("period %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if pattern.SessionTickCount() != 138 {
		t.Errorf("SessionTickCount() = %d, want 138", pattern.SessionTickCount())
	}
}

func TestSessionAt(t *testing.T) {
	pattern := shortPattern()
	tests := []struct {
		tick      Tick
		wantIndex Tick
		wantRange TickRange
	}{
		{0, 0, TickRange{0, 137}},
		{137, 0, TickRange{0, 137}},
		{138, 1, TickRange{138, 275}},
		{-1, -1, TickRange{-138, -1}},
	}
	for _, tt := range tests {
		session := pattern.SessionAt(tt.tick)
		if session.Index != tt.wantIndex || session.Range != tt.wantRange {
			t.Errorf("SessionAt(%d) = index %d range %v, want %d %v",
				tt.tick, session.Index, session.Range, tt.wantIndex, tt.wantRange)
		}
		if session.Periods[0].Range.Lo != session.Range.Lo {
			t.Errorf("SessionAt(%d) first period starts at %d", tt.tick, session.Periods[0].Range.Lo)
		}
	}
}

func TestPeriodAtCoversEveryTick(t *testing.T) {
	pattern := shortPattern()
	for tick := Tick(-300); tick <= 1000; tick++ {
		period := pattern.PeriodAt(tick)
		if !period.Range.Contains(tick) {
			t.Fatalf("PeriodAt(%d) = %v does not contain the tick", tick, period.Range)
		}
		next := pattern.NextPeriodAt(tick)
		if next.Range.Lo != period.Range.Hi+1 {
			t.Fatalf("NextPeriodAt(%d) starts at %d, want %d", tick, next.Range.Lo, period.Range.Hi+1)
		}
		if next.IsWork() == period.IsWork() {
			t.Fatalf("periods at %d and after do not alternate", tick)
		}
	}
}

func TestPeriodAtFarFuture(t *testing.T) {
	pattern := StandardPattern()
	tick := Tick(1) << 40
	period := pattern.PeriodAt(tick)
	if !period.Range.Contains(tick) {
		t.Fatalf("PeriodAt(%d) = %v", tick, period.Range)
	}
}

func TestIndexOfPeriodAt(t *testing.T) {
	pattern := shortPattern()
	tests := []struct {
		tick Tick
		want Tick
	}{
		{0, 0},
		{25, 0},
		{26, 1},
		{137, 7},
		{138, 8},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := pattern.IndexOfPeriodAt(tt.tick); got != tt.want {
			t.Errorf("IndexOfPeriodAt(%d) = %d, want %d", tt.tick, got, tt.want)
		}
		if got := pattern.PeriodAtIndex(tt.want); !got.Range.Contains(tt.tick) {
			t.Errorf("PeriodAtIndex(%d) = %v does not contain %d", tt.want, got.Range, tt.tick)
		}
	}
}

func TestNextPeriodAtWrapsSession(t *testing.T) {
	pattern := shortPattern()
	next := pattern.NextPeriodAt(130)
	if next.Kind != PeriodWork || next.Range != (TickRange{138, 163}) {
		t.Errorf("NextPeriodAt(130) = %+v, want work [138, 163]", next)
	}
}

func TestTargetTick(t *testing.T) {
	pattern := shortPattern()
	tests := []struct {
		name        string
		tick        Tick
		dailyTarget int
		want        Tick
	}{
		{"start of day", 0, 10, 333},
		{"last tick of goal", 333, 10, 333},
		{"trailing break skips ahead", 334, 10, 673},
		{"single period goal", 0, 1, 25},
		{"single period goal during break", 26, 1, 57},
		{"four periods end in long break", 0, 4, 121},
		{"after four periods", 122, 4, 259},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pattern.TargetTick(tt.tick, tt.dailyTarget)
			if got != tt.want {
				t.Errorf("TargetTick(%d, %d) = %d, want %d", tt.tick, tt.dailyTarget, got, tt.want)
			}
			if got < tt.tick {
				t.Errorf("TargetTick(%d, %d) = %d is in the past", tt.tick, tt.dailyTarget, got)
			}
			if again := pattern.TargetTick(tt.tick, tt.dailyTarget); again != got {
				t.Errorf("TargetTick is not stable: %d then %d", got, again)
			}
		})
	}
}

func TestTargetTickNeverInThePast(t *testing.T) {
	pattern := shortPattern()
	for _, dailyTarget := range []int{1, 2, 3, 5, 10} {
		for tick := Tick(-200); tick < 2000; tick++ {
			if got := pattern.TargetTick(tick, dailyTarget); got < tick {
				t.Fatalf("TargetTick(%d, %d) = %d", tick, dailyTarget, got)
			}
		}
	}
}

func TestHalfwayTargetTick(t *testing.T) {
	pattern := shortPattern()
	tests := []struct {
		name        string
		tick        Tick
		dailyTarget int
		want        Tick
	}{
		{"even target ends a work period", 0, 10, 163},
		{"odd target splits a work period", 0, 5, 76},
		{"single period goal", 0, 1, 12},
		{"no-man's land skips ahead", 334, 10, 163 + 340},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pattern.HalfwayTargetTick(tt.tick, tt.dailyTarget); got != tt.want {
				t.Errorf("HalfwayTargetTick(%d, %d) = %d, want %d", tt.tick, tt.dailyTarget, got, tt.want)
			}
		})
	}
}

func TestNextStopTickAfter(t *testing.T) {
	pattern := shortPattern()
	tests := []struct {
		name        string
		tick        Tick
		stopAtBreak bool
		stopAtWork  bool
		want        Tick
	}{
		{"never stops", 0, false, false, MaxTick - 1},
		{"both flags in work", 0, true, true, 25},
		{"both flags at end of work", 25, true, true, 31},
		{"both flags in break", 26, true, true, 31},
		{"break only passes through work", 0, true, false, 31},
		{"break only at end of break", 31, true, false, 63},
		{"work only in work", 0, false, true, 25},
		{"work only at end of work", 25, false, true, 57},
		{"work only passes through break", 28, false, true, 57},
		{"work only into next session", 121, false, true, 163},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pattern.NextStopTickAfter(tt.tick, tt.stopAtBreak, tt.stopAtWork)
			if got != tt.want {
				t.Errorf("NextStopTickAfter(%d, %v, %v) = %d, want %d",
					tt.tick, tt.stopAtBreak, tt.stopAtWork, got, tt.want)
			}
		})
	}
}

func TestDegeneratePatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PeriodAt on a negative duration pattern did not panic")
		}
	}()
	WorkPattern{WorkDuration: -1, NumWorkPeriods: 1}.PeriodAt(0)
}
