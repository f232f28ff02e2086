package main

import (
	"errors"
	"fmt"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/timekeeper"
	"focusring/internal/storage"
)

// session couples a TimeKeeper to the history it was restored from.
type session struct {
	store  *storage.HistoryStore
	keeper *timekeeper.TimeKeeper
	clock  model.Clock
}

func openSession() (*session, error) {
	clock, err := resolveClock(nowValue)
	if err != nil {
		return nil, err
	}

	path := dbPath
	if path == "" {
		path, err = storage.HistoryPath(appName)
		if err != nil {
			return nil, err
		}
	}
	store, err := storage.OpenHistory(path)
	if err != nil {
		return nil, err
	}

	timeline, err := restoreTimeline(store, clock())
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	keeper := timekeeper.New(timeline, timekeeper.Config{Clock: clock})
	keeper.SetRecorder(store)
	return &session{store: store, keeper: keeper, clock: clock}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// apply runs transition and reports a failure to record it.
func (s *session) apply(transition func(*timekeeper.TimeKeeper)) error {
	events := s.keeper.Subscribe(4)
	transition(s.keeper)
	for {
		select {
		case event := <-events:
			if event.Type == timekeeper.EventRecordError {
				return fmt.Errorf("record %s: %s", event.Action, event.Message)
			}
		default:
			return nil
		}
	}
}

func restoreTimeline(store *storage.HistoryStore, now time.Time) (model.Timeline, error) {
	entry, err := store.Latest()
	if err == nil {
		return entry.Timeline, nil
	}
	if !errors.Is(err, storage.ErrNoHistory) {
		return model.Timeline{}, err
	}

	path := settingsPath
	if path == "" {
		path, err = storage.SettingsPath(appName)
		if err != nil {
			return model.Timeline{}, err
		}
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return model.Timeline{}, err
	}
	return settings.TimelineConfig().Apply(model.NewTimeline(now), now)
}

func resolveClock(value string) (model.Clock, error) {
	if value == "" {
		return model.SystemClock, nil
	}
	fixed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parse --now: %w", err)
	}
	return func() time.Time { return fixed }, nil
}
