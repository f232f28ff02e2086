package overlay

import (
	"testing"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/stance"
)

var t0 = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func TestShouldShow(t *testing.T) {
	timeline := model.NewTimeline(t0)
	timeline.Pattern = model.WorkPattern{WorkDuration: 25, ShortBreakDuration: 5, LongBreakDuration: 15, NumWorkPeriods: 4}
	running := timeline.Resume(t0)

	tests := []struct {
		name     string
		timeline model.Timeline
		tick     model.Tick
		want     bool
	}{
		{name: "fresh", timeline: timeline, tick: 0, want: false},
		{name: "working", timeline: running, tick: 10, want: false},
		{name: "short break running", timeline: running, tick: 28, want: true},
		{name: "long break running", timeline: running, tick: 130, want: true},
		{name: "break paused", timeline: running.Pause(t0.Add(28 * time.Second)), tick: 28, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observation := stance.Observe(tt.timeline, tt.tick)
			if got := ShouldShow(observation); got != tt.want {
				t.Errorf("ShouldShow() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpacityToAlpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{opacity: -0.5, want: 0},
		{opacity: 0, want: 0},
		{opacity: 0.5, want: 127},
		{opacity: 1, want: 255},
		{opacity: 3, want: 255},
	}

	for _, tt := range tests {
		if got := OpacityToAlpha(tt.opacity); got != tt.want {
			t.Errorf("OpacityToAlpha(%v) = %d, want %d", tt.opacity, got, tt.want)
		}
	}
}
