package timekeeper

import (
	"sync"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/report"
	"focusring/internal/core/stance"
)

// Recorder persists history entries.
type Recorder interface {
	Record(entry Entry) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Clock        model.Clock
}

// TimeKeeper owns the current timeline of the host. It applies transitions,
// keeps the append-only history and, while started, pulses progress events
// as long as the countdown runs.
type TimeKeeper struct {
	mu          sync.Mutex
	options     Config
	timeline    model.Timeline
	history     []Entry
	recorder    Recorder
	events      []chan Event
	stopCh      chan struct{}
	running     bool
	wasCounting bool
}

// New creates a TimeKeeper around an existing timeline.
func New(timeline model.Timeline, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = model.SystemClock
	}

	keeper := &TimeKeeper{
		options:  options,
		timeline: timeline,
		stopCh:   make(chan struct{}),
	}
	keeper.wasCounting = timeline.IsCountingDown(timeline.Tick(options.Clock()))
	return keeper
}

// SetRecorder injects a history recorder.
func (keeper *TimeKeeper) SetRecorder(recorder Recorder) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.recorder = recorder
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start launches the pulse loop.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	event := keeper.eventLocked(EventStateChange, "", keeper.options.Clock())
	keeper.emitLocked(event)
	keeper.mu.Unlock()

	go keeper.run()
}

// Stop terminates the pulse loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}
	close(keeper.stopCh)
	keeper.running = false
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Timeline returns the current timeline.
func (keeper *TimeKeeper) Timeline() model.Timeline {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.timeline
}

// History returns the transitions applied since New.
func (keeper *TimeKeeper) History() []Entry {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return append([]Entry(nil), keeper.history...)
}

// Snapshot derives the current report and stance.
func (keeper *TimeKeeper) Snapshot() Event {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.eventLocked(EventProgress, "", keeper.options.Clock())
}

// Toggle pauses a running countdown and resumes a stopped one.
func (keeper *TimeKeeper) Toggle() {
	keeper.apply(ActionToggle, model.Timeline.Toggle)
}

// Resume starts the countdown from where it stands.
func (keeper *TimeKeeper) Resume() {
	keeper.apply(ActionResume, model.Timeline.Resume)
}

// Pause stops the countdown.
func (keeper *TimeKeeper) Pause() {
	keeper.apply(ActionPause, model.Timeline.Pause)
}

// SkipToNextPeriod moves on to the next period.
func (keeper *TimeKeeper) SkipToNextPeriod() {
	keeper.apply(ActionSkip, model.Timeline.SkipToNextPeriod)
}

// StartNextPeriod jumps to the next period and runs it.
func (keeper *TimeKeeper) StartNextPeriod() {
	keeper.apply(ActionStartNext, model.Timeline.StartAtStartOfNextPeriod)
}

// RestartPeriod runs the current period again from its first tick.
func (keeper *TimeKeeper) RestartPeriod() {
	keeper.apply(ActionRestartPeriod, model.Timeline.StartAtStartOfCurrentPeriod)
}

// RewindPeriod returns to the first tick of the current period, stopped.
func (keeper *TimeKeeper) RewindPeriod() {
	keeper.apply(ActionRewindPeriod, model.Timeline.StopAtStartOfCurrentPeriod)
}

// ResetToTickZero starts the day over.
func (keeper *TimeKeeper) ResetToTickZero() {
	keeper.apply(ActionReset, model.Timeline.ResetToTickZero)
}

// UpdateConfig installs a new pattern, target and policies.
func (keeper *TimeKeeper) UpdateConfig(config model.TimelineConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	keeper.apply(ActionConfigure, func(timeline model.Timeline, now time.Time) model.Timeline {
		updated, _ := config.Apply(timeline, now)
		return updated
	})
	return nil
}

func (keeper *TimeKeeper) apply(action Action, transition func(model.Timeline, time.Time) model.Timeline) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	now := keeper.options.Clock()
	keeper.timeline = transition(keeper.timeline, now)
	keeper.wasCounting = keeper.timeline.IsCountingDown(keeper.timeline.Tick(now))

	entry := Entry{Action: action, Timeline: keeper.timeline, At: now}
	keeper.history = append(keeper.history, entry)
	if keeper.recorder != nil {
		if err := keeper.recorder.Record(entry); err != nil {
			event := keeper.eventLocked(EventRecordError, action, now)
			event.Message = err.Error()
			keeper.emitLocked(event)
		}
	}

	keeper.emitLocked(keeper.eventLocked(EventStateChange, action, now))
}

func (keeper *TimeKeeper) run() {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-keeper.stopCh:
			return
		case <-ticker.C:
			keeper.pulse(keeper.options.Clock())
		}
	}
}

// pulse re-derives the position from the clock. A countdown that reached
// its stop tick since the last pulse is reported once as a state change.
func (keeper *TimeKeeper) pulse(now time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	counting := keeper.timeline.IsCountingDown(keeper.timeline.Tick(now))
	switch {
	case counting:
		keeper.emitLocked(keeper.eventLocked(EventProgress, "", now))
	case keeper.wasCounting:
		keeper.emitLocked(keeper.eventLocked(EventStateChange, ActionCountdownEnd, now))
	}
	keeper.wasCounting = counting
}

func (keeper *TimeKeeper) eventLocked(eventType EventType, action Action, now time.Time) Event {
	tick := keeper.timeline.Tick(now)
	return Event{
		Type:     eventType,
		Action:   action,
		Timeline: keeper.timeline,
		Report:   report.New(keeper.timeline, tick),
		Stance:   stance.Of(keeper.timeline, tick),
		At:       now,
	}
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	events := append([]chan Event(nil), keeper.events...)
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
