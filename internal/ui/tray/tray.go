package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"focusring/internal/core/stance"
	"focusring/internal/format"
)

const menuTitle = "focusring"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggle        func()
	OnSkip          func()
	OnRestartPeriod func()
	OnResetDay      func()
	OnPreferences   func()
	OnQuit          func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	goalItem    *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	skipItem    *fyne.MenuItem
	restartItem *fyne.MenuItem
	resetItem   *fyne.MenuItem
	prefsItem   *fyne.MenuItem
	quitItem    *fyne.MenuItem
	callbacks   Callbacks
	running     bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Ready to focus", nil)
	manager.statusItem.Disabled = true
	manager.goalItem = fyne.NewMenuItem("", nil)
	manager.goalItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem(ToggleLabel(false), invoke(&manager.callbacks.OnToggle))
	manager.skipItem = fyne.NewMenuItem("Skip to next period", invoke(&manager.callbacks.OnSkip))
	manager.restartItem = fyne.NewMenuItem("Restart period", invoke(&manager.callbacks.OnRestartPeriod))
	manager.resetItem = fyne.NewMenuItem("Reset day", invoke(&manager.callbacks.OnResetDay))
	manager.prefsItem = fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences))
	manager.quitItem = fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	manager.refreshMenu()
	return manager
}

// Update reflects an observation in the status lines and menu labels.
func (manager *Manager) Update(observation stance.Observation) {
	r := observation.Report
	manager.running = observation.Stance.IsRunning()
	manager.statusItem.Label = StatusLine(observation)
	manager.goalItem.Label = fmt.Sprintf("Today: %d of %d work periods",
		r.NumOfWorkPeriodsCompleted, r.DailyTarget)
	manager.toggleItem.Label = ToggleLabel(manager.running)
	manager.refreshMenu()
}

// StatusLine renders the stance title followed by the remaining time of
// the current period.
func StatusLine(observation stance.Observation) string {
	remaining := format.Clock(int(observation.Report.RemainingTicks))
	return fmt.Sprintf("%s (%s)", observation.Title(), remaining)
}

// ToggleLabel names the toggle action for the given running state.
func ToggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		manager.goalItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.skipItem,
		manager.restartItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
