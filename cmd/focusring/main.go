package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"focusring/internal/core/model"
	"focusring/internal/core/reminder"
	"focusring/internal/core/stance"
	"focusring/internal/core/timekeeper"
	"focusring/internal/platform"
	"focusring/internal/storage"
	"focusring/internal/ui/notify"
	"focusring/internal/ui/overlay"
	"focusring/internal/ui/preferences"
	"focusring/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const appName = "focusring"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if signalErr := platform.Signal(appName); signalErr != nil {
			log.Printf("single instance: %v", signalErr)
		}
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("io.focusring.app")
	fyneApp.SetIcon(theme.HistoryIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	trayWindow := fyneApp.NewWindow("focusring")
	trayWindow.SetContent(widget.NewLabel("focusring is running in the system tray."))
	trayWindow.SetCloseIntercept(func() {
		trayWindow.Hide()
	})
	trayWindow.Hide()
	desktopApp.SetSystemTrayWindow(trayWindow)

	settingsPath, err := storage.SettingsPath(appName)
	if err != nil {
		log.Printf("settings: %v", err)
		return
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		log.Printf("settings: %v", err)
	}

	historyPath, err := storage.HistoryPath(appName)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	history, err := storage.OpenHistory(historyPath)
	if err != nil {
		log.Printf("history: %v", err)
		return
	}
	defer history.Close()

	keeper := timekeeper.New(restoreTimeline(history, settings), timekeeper.Config{TickInterval: time.Second})
	keeper.SetRecorder(history)

	notifier := notify.NewForApp(fyneApp)
	defer notifier.Cancel()

	breakCard := overlay.New(fyneApp, overlayConfig(settings))
	breakCard.SetOnSkip(keeper.SkipToNextPeriod)
	breakCard.SetOnPause(keeper.Pause)

	applySettings := func(updated preferences.Settings) {
		settings = updated
		notifier.SetEnabled(settings.RemindersEnabled)
		breakCard.UpdateConfig(overlayConfig(settings))
		config := settings.TimelineConfig()
		if keeper.Timeline().Config() == config {
			return
		}
		if err := keeper.UpdateConfig(config); err != nil {
			log.Printf("settings: %v", err)
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(settingsPath, updated); err != nil {
			log.Printf("settings: %v", err)
		}
		applySettings(updated)
	})

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		log.Printf("settings: %v", err)
	} else if watcher, err := storage.NewSettingsWatcher(settingsPath, func(updated preferences.Settings, err error) {
		if err != nil {
			log.Printf("settings watcher: %v", err)
			return
		}
		fyne.Do(func() {
			prefsWindow.UpdateSettings(updated)
			applySettings(updated)
		})
	}); err != nil {
		log.Printf("settings watcher: %v", err)
	} else {
		watcher.Start(context.Background())
		defer watcher.Stop()
	}

	guard.OnActivate(func() {
		fyne.Do(prefsWindow.Show)
	})

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnToggle:        keeper.Toggle,
		OnSkip:          keeper.SkipToNextPeriod,
		OnRestartPeriod: keeper.RestartPeriod,
		OnResetDay:      keeper.ResetToTickZero,
		OnPreferences:   prefsWindow.Show,
		OnQuit: func() {
			keeper.Stop()
			fyneApp.Quit()
		},
	})

	runningIcon := theme.MediaPlayIcon()
	pausedIcon := theme.MediaPauseIcon()
	desktopApp.SetSystemTrayIcon(pausedIcon)

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			observation := stance.Observe(event.Timeline, event.Report.Tick)
			switch event.Type {
			case timekeeper.EventStateChange:
				notifier.Replace(reminder.Schedule(event.Timeline, event.Report.Tick), event.At)
			case timekeeper.EventRecordError:
				log.Printf("history: %s", event.Message)
				continue
			}
			fyne.Do(func() {
				trayManager.Update(observation)
				breakCard.Update(observation)
				if observation.Stance.IsRunning() {
					desktopApp.SetSystemTrayIcon(runningIcon)
				} else {
					desktopApp.SetSystemTrayIcon(pausedIcon)
				}
			})
		}
	}()

	keeper.Start()
	fyneApp.Run()
	keeper.Stop()
}

func overlayConfig(settings preferences.Settings) overlay.Config {
	return overlay.Config{
		Enabled: settings.BreakCardEnabled,
		Opacity: overlay.OpacityToAlpha(settings.BreakCardOpacity),
	}
}

// restoreTimeline continues the last recorded timeline, or starts a fresh
// one from settings. Settings edited while the app was closed win.
func restoreTimeline(history *storage.HistoryStore, settings preferences.Settings) model.Timeline {
	now := time.Now()
	config := settings.TimelineConfig()

	timeline := model.NewTimeline(now)
	entry, err := history.Latest()
	switch {
	case err == nil:
		timeline = entry.Timeline
	case !errors.Is(err, storage.ErrNoHistory):
		log.Printf("history: %v", err)
	}

	restored, err := config.Apply(timeline, now)
	if err != nil {
		log.Printf("settings: %v", err)
		return timeline
	}
	return restored
}
