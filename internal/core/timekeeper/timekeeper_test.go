package timekeeper

import (
	"errors"
	"sync"
	"testing"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/stance"
)

var t0 = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

type virtualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (clock *virtualClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *virtualClock) Advance(d time.Duration) time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
	return clock.now
}

type memoryRecorder struct {
	entries []Entry
	err     error
}

func (recorder *memoryRecorder) Record(entry Entry) error {
	if recorder.err != nil {
		return recorder.err
	}
	recorder.entries = append(recorder.entries, entry)
	return nil
}

func newKeeper(t *testing.T) (*TimeKeeper, *virtualClock) {
	t.Helper()
	clock := &virtualClock{now: t0}
	timeline := model.NewTimeline(t0)
	timeline.Pattern = model.WorkPattern{WorkDuration: 25, ShortBreakDuration: 5, LongBreakDuration: 15, NumWorkPeriods: 4}
	timeline.StopOnWork = true
	keeper := New(timeline, Config{TickInterval: time.Hour, Clock: clock.Now})
	return keeper, clock
}

func TestTransitionsAppendHistory(t *testing.T) {
	keeper, clock := newKeeper(t)
	recorder := &memoryRecorder{}
	keeper.SetRecorder(recorder)

	keeper.Resume()
	clock.Advance(10 * time.Second)
	keeper.Pause()
	keeper.SkipToNextPeriod()

	history := keeper.History()
	want := []Action{ActionResume, ActionPause, ActionSkip}
	if len(history) != len(want) {
		t.Fatalf("history has %d entries, want %d", len(history), len(want))
	}
	for i, action := range want {
		if history[i].Action != action {
			t.Errorf("entry %d = %s, want %s", i, history[i].Action, action)
		}
	}
	if len(recorder.entries) != len(want) {
		t.Errorf("recorder got %d entries, want %d", len(recorder.entries), len(want))
	}
	if got := keeper.Timeline().Countdown.Range; got != model.Instant(26) {
		t.Errorf("countdown = %v, want [26, 26]", got)
	}
}

func TestStateChangeEvents(t *testing.T) {
	keeper, _ := newKeeper(t)
	events := keeper.Subscribe(4)

	keeper.Toggle()
	event := <-events
	if event.Type != EventStateChange || event.Action != ActionToggle {
		t.Fatalf("event = %s/%s", event.Type, event.Action)
	}
	if event.Stance != stance.Running(stance.FromStartOfWorkPeriod) {
		t.Errorf("stance = %s", event.Stance)
	}
	if !event.Report.IsCountingDown || event.Report.StopTick != 25 {
		t.Errorf("report = counting %v stop %d", event.Report.IsCountingDown, event.Report.StopTick)
	}
}

func TestRecordErrorIsReported(t *testing.T) {
	keeper, _ := newKeeper(t)
	keeper.SetRecorder(&memoryRecorder{err: errors.New("disk full")})
	events := keeper.Subscribe(4)

	keeper.ResetToTickZero()
	event := <-events
	if event.Type != EventRecordError || event.Message != "disk full" {
		t.Fatalf("event = %s %q, want record error", event.Type, event.Message)
	}
	if next := <-events; next.Type != EventStateChange {
		t.Errorf("second event = %s, want state change", next.Type)
	}
}

func TestPulseReportsCountdownEnd(t *testing.T) {
	keeper, clock := newKeeper(t)
	keeper.Start()
	defer keeper.Stop()
	events := keeper.Subscribe(8)

	keeper.Resume()
	<-events

	keeper.pulse(clock.Advance(12 * time.Second))
	progress := <-events
	if progress.Type != EventProgress || progress.Report.Tick != 12 {
		t.Fatalf("progress event = %s at tick %d", progress.Type, progress.Report.Tick)
	}

	keeper.pulse(clock.Advance(20 * time.Second))
	ended := <-events
	if ended.Type != EventStateChange || ended.Action != ActionCountdownEnd {
		t.Fatalf("event = %s/%s, want countdown end", ended.Type, ended.Action)
	}
	if ended.Stance != stance.Paused(stance.RestingAtStartOfBreak) {
		t.Errorf("stance = %s", ended.Stance)
	}

	keeper.pulse(clock.Advance(time.Second))
	select {
	case event := <-events:
		t.Errorf("unexpected event after the countdown ended: %s", event.Type)
	default:
	}
}

func TestUpdateConfig(t *testing.T) {
	keeper, _ := newKeeper(t)
	config := keeper.Timeline().Config()
	config.DailyTarget = 0
	if err := keeper.UpdateConfig(config); !errors.Is(err, model.ErrInvalidDailyTarget) {
		t.Fatalf("UpdateConfig error = %v", err)
	}
	if len(keeper.History()) != 0 {
		t.Error("invalid config was recorded")
	}

	config.DailyTarget = 4
	if err := keeper.UpdateConfig(config); err != nil {
		t.Fatal(err)
	}
	if keeper.Timeline().DailyTarget != 4 {
		t.Errorf("DailyTarget = %d, want 4", keeper.Timeline().DailyTarget)
	}
}
