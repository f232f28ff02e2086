package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"focusring/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes           int      `yaml:"work_minutes"`
	ShortBreakMinutes     int      `yaml:"short_break_minutes"`
	LongBreakMinutes      int      `yaml:"long_break_minutes"`
	WorkPeriodsPerSession int      `yaml:"work_periods_per_session"`
	DailyTarget           int      `yaml:"daily_target"`
	StopOnBreak           bool     `yaml:"stop_on_break"`
	StopOnWork            bool     `yaml:"stop_on_work"`
	ResetWorkOnStop       bool     `yaml:"reset_work_on_stop"`
	RemindersEnabled      *bool    `yaml:"reminders_enabled,omitempty"`
	BreakCardEnabled      *bool    `yaml:"break_card_enabled,omitempty"`
	BreakCardOpacity      *float64 `yaml:"break_card_opacity,omitempty"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML at path.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	reminders := settings.RemindersEnabled
	breakCard := settings.BreakCardEnabled
	opacity := settings.BreakCardOpacity
	fileData := yamlSettings{
		WorkMinutes:           int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes:     int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:      int(settings.LongBreakDuration / time.Minute),
		WorkPeriodsPerSession: settings.WorkPeriodsPerSession,
		DailyTarget:           settings.DailyTarget,
		StopOnBreak:           settings.StopOnBreak,
		StopOnWork:            settings.StopOnWork,
		ResetWorkOnStop:       settings.ResetWorkOnStop,
		RemindersEnabled:      &reminders,
		BreakCardEnabled:      &breakCard,
		BreakCardOpacity:      &opacity,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.WorkPeriodsPerSession > 0 {
		settings.WorkPeriodsPerSession = fileData.WorkPeriodsPerSession
	}
	if fileData.DailyTarget > 0 {
		settings.DailyTarget = fileData.DailyTarget
	}
	if fileData.RemindersEnabled != nil {
		settings.RemindersEnabled = *fileData.RemindersEnabled
	}
	if fileData.BreakCardEnabled != nil {
		settings.BreakCardEnabled = *fileData.BreakCardEnabled
	}
	if fileData.BreakCardOpacity != nil && *fileData.BreakCardOpacity > 0 && *fileData.BreakCardOpacity <= 1 {
		settings.BreakCardOpacity = *fileData.BreakCardOpacity
	}

	settings.StopOnBreak = fileData.StopOnBreak
	settings.StopOnWork = fileData.StopOnWork
	settings.ResetWorkOnStop = fileData.ResetWorkOnStop
}
