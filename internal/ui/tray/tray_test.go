package tray

import (
	"strings"
	"testing"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/stance"
)

func TestToggleLabel(t *testing.T) {
	if got := ToggleLabel(true); got != "Pause" {
		t.Errorf("ToggleLabel(true) = %q, want Pause", got)
	}
	if got := ToggleLabel(false); got != "Start" {
		t.Errorf("ToggleLabel(false) = %q, want Start", got)
	}
}

func TestStatusLine(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	timeline := model.NewTimeline(now)

	tests := []struct {
		name     string
		timeline model.Timeline
		at       time.Time
		want     string
	}{
		{
			name:     "fresh day",
			timeline: timeline,
			at:       now,
			want:     "Ready to focus (25:00)",
		},
		{
			name:     "running",
			timeline: timeline.Resume(now),
			at:       now.Add(5 * time.Minute),
			want:     "(20:00)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observation := stance.Observe(tt.timeline, tt.timeline.Tick(tt.at))
			if got := StatusLine(observation); !strings.HasSuffix(got, tt.want) {
				t.Errorf("StatusLine() = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

func TestUpdateWithoutApp(t *testing.T) {
	toggled := false
	manager := New(nil, Callbacks{OnToggle: func() { toggled = true }})

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	timeline := model.NewTimeline(now).Resume(now)
	manager.Update(stance.Observe(timeline, timeline.Tick(now)))

	if manager.toggleItem.Label != "Pause" {
		t.Errorf("toggle label = %q, want Pause", manager.toggleItem.Label)
	}
	if manager.goalItem.Label != "Today: 0 of 10 work periods" {
		t.Errorf("goal label = %q", manager.goalItem.Label)
	}

	manager.toggleItem.Action()
	if !toggled {
		t.Error("toggle callback was not invoked")
	}
}
