package watch

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusring/internal/core/model"
	"focusring/internal/core/timekeeper"
)

var t0 = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func newModel(t *testing.T) (Model, *time.Time) {
	t.Helper()
	now := t0
	keeper := timekeeper.New(model.NewTimeline(t0), timekeeper.Config{
		TickInterval: time.Hour,
		Clock:        func() time.Time { return now },
	})
	return New(keeper, time.Second), &now
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	if key == " " {
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestSpaceTogglesCountdown(t *testing.T) {
	m, _ := newModel(t)
	if m.Observation().Stance.IsRunning() {
		t.Fatal("fresh timeline is running")
	}

	m = press(m, " ")
	if !m.Observation().Stance.IsRunning() {
		t.Error("space did not start the countdown")
	}

	m = press(m, " ")
	if m.Observation().Stance.IsRunning() {
		t.Error("space did not pause the countdown")
	}
}

func TestTickRefreshesObservation(t *testing.T) {
	m, now := newModel(t)
	m = press(m, " ")

	*now = t0.Add(10 * time.Minute)
	updated, cmd := m.Update(tickMsg(*now))
	m = updated.(Model)

	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if got := m.Observation().Report.Tick; got != 600 {
		t.Errorf("Tick = %d, want 600", got)
	}
	if view := m.View(); !strings.Contains(view, "15:00") {
		t.Errorf("View() does not show the remaining time:\n%s", view)
	}
}

func TestSkipMovesToBreak(t *testing.T) {
	m, _ := newModel(t)
	m = press(m, "s")

	if kind := m.Observation().Report.CurrentPeriod.Kind; kind != model.PeriodShortBreak {
		t.Errorf("period = %s after skip, want %s", kind, model.PeriodShortBreak)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{fraction: 0, want: "░░░░"},
		{fraction: 0.5, want: "██░░"},
		{fraction: 1, want: "████"},
		{fraction: 2, want: "████"},
		{fraction: -1, want: "░░░░"},
	}

	for _, tt := range tests {
		if got := ProgressBar(tt.fraction, 4); got != tt.want {
			t.Errorf("ProgressBar(%v, 4) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}
