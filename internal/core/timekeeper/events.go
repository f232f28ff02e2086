package timekeeper

import (
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/report"
	"focusring/internal/core/stance"
)

// Action names a timeline transition.
type Action string

const (
	ActionResume        Action = "resume"
	ActionPause         Action = "pause"
	ActionToggle        Action = "toggle"
	ActionSkip          Action = "skip"
	ActionStartNext     Action = "start_next"
	ActionRestartPeriod Action = "restart_period"
	ActionRewindPeriod  Action = "rewind_period"
	ActionReset         Action = "reset"
	ActionConfigure     Action = "configure"
	ActionCountdownEnd  Action = "countdown_end"
)

// Entry is one record of the timeline history.
type Entry struct {
	Action   Action         `json:"action"`
	Timeline model.Timeline `json:"timeline"`
	At       time.Time      `json:"at"`
}

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventRecordError EventType = "record_error"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Action   Action
	Timeline model.Timeline
	Report   report.Report
	Stance   stance.Stance
	Message  string
	At       time.Time
}
