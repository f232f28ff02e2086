package preferences

import (
	"time"

	"focusring/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration          time.Duration
	ShortBreakDuration    time.Duration
	LongBreakDuration     time.Duration
	WorkPeriodsPerSession int
	DailyTarget           int

	StopOnBreak     bool
	StopOnWork      bool
	ResetWorkOnStop bool

	RemindersEnabled bool
	BreakCardEnabled bool
	BreakCardOpacity float64
}

// DefaultSettings returns default settings for focusring.
func DefaultSettings() Settings {
	pattern := model.StandardPattern()
	return Settings{
		WorkDuration:          time.Duration(pattern.WorkDuration) * time.Second,
		ShortBreakDuration:    time.Duration(pattern.ShortBreakDuration) * time.Second,
		LongBreakDuration:     time.Duration(pattern.LongBreakDuration) * time.Second,
		WorkPeriodsPerSession: pattern.NumWorkPeriods,
		DailyTarget:           model.DefaultDailyTarget,
		RemindersEnabled:      true,
		BreakCardEnabled:      true,
		BreakCardOpacity:      0.85,
	}
}

// TimelineConfig converts settings to a model.TimelineConfig.
func (settings Settings) TimelineConfig() model.TimelineConfig {
	return model.TimelineConfig{
		Pattern: model.WorkPattern{
			WorkDuration:       int(settings.WorkDuration / time.Second),
			ShortBreakDuration: int(settings.ShortBreakDuration / time.Second),
			LongBreakDuration:  int(settings.LongBreakDuration / time.Second),
			NumWorkPeriods:     settings.WorkPeriodsPerSession,
		},
		DailyTarget:     settings.DailyTarget,
		StopOnBreak:     settings.StopOnBreak,
		StopOnWork:      settings.StopOnWork,
		ResetWorkOnStop: settings.ResetWorkOnStop,
	}
}

// FromTimeline reads the timeline-backed fields out of a timeline.
func (settings Settings) FromTimeline(timeline model.Timeline) Settings {
	settings.WorkDuration = time.Duration(timeline.Pattern.WorkDuration) * time.Second
	settings.ShortBreakDuration = time.Duration(timeline.Pattern.ShortBreakDuration) * time.Second
	settings.LongBreakDuration = time.Duration(timeline.Pattern.LongBreakDuration) * time.Second
	settings.WorkPeriodsPerSession = timeline.Pattern.NumWorkPeriods
	settings.DailyTarget = timeline.DailyTarget
	settings.StopOnBreak = timeline.StopOnBreak
	settings.StopOnWork = timeline.StopOnWork
	settings.ResetWorkOnStop = timeline.ResetWorkOnStop
	return settings
}
