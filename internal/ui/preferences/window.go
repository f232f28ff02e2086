package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	onCancel    func()
	workDur     *widget.Entry
	shortDur    *widget.Entry
	longDur     *widget.Entry
	periods     *widget.Entry
	dailyTarget *widget.Entry
	stopOnBreak *widget.Check
	stopOnWork  *widget.Check
	resetOnStop *widget.Check
	reminders   *widget.Check
	breakCard   *widget.Check
	opacity     *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("focusring Preferences")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		workDur:     widget.NewEntry(),
		shortDur:    widget.NewEntry(),
		longDur:     widget.NewEntry(),
		periods:     widget.NewEntry(),
		dailyTarget: widget.NewEntry(),
		stopOnBreak: widget.NewCheck("Stop at the end of each break", nil),
		stopOnWork:  widget.NewCheck("Stop at the end of each work period", nil),
		resetOnStop: widget.NewCheck("Pausing work restarts the period", nil),
		reminders:   widget.NewCheck("Show reminders", nil),
		breakCard:   widget.NewCheck("Show a card while a break runs", nil),
		opacity:     widget.NewSlider(0.7, 0.95),
	}
	prefs.opacity.Step = 0.01
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Work pattern", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work period"), prefs.workDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longDur, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Work periods per session"), prefs.periods),
		widget.NewLabelWithStyle("Daily goal", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work periods per day"), prefs.dailyTarget),
		widget.NewLabelWithStyle("Behaviour", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.stopOnBreak,
		prefs.stopOnWork,
		prefs.resetOnStop,
		prefs.reminders,
		prefs.breakCard,
		widget.NewLabel("Break card opacity"),
		prefs.opacity,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
		if prefs.onCancel != nil {
			prefs.onCancel()
		}
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(420, 520))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workDur.SetText(minutesText(settings.WorkDuration))
	prefs.shortDur.SetText(minutesText(settings.ShortBreakDuration))
	prefs.longDur.SetText(minutesText(settings.LongBreakDuration))
	prefs.periods.SetText(strconv.Itoa(settings.WorkPeriodsPerSession))
	prefs.dailyTarget.SetText(strconv.Itoa(settings.DailyTarget))
	prefs.stopOnBreak.SetChecked(settings.StopOnBreak)
	prefs.stopOnWork.SetChecked(settings.StopOnWork)
	prefs.resetOnStop.SetChecked(settings.ResetWorkOnStop)
	prefs.reminders.SetChecked(settings.RemindersEnabled)
	prefs.breakCard.SetChecked(settings.BreakCardEnabled)
	prefs.opacity.SetValue(settings.BreakCardOpacity)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workDur.Text); ok {
		settings.WorkDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.shortDur.Text); ok {
		settings.ShortBreakDuration = time.Duration(minutes) * time.Minute
	}
	if minutes, ok := parsePositiveInt(prefs.longDur.Text); ok {
		settings.LongBreakDuration = time.Duration(minutes) * time.Minute
	}
	if count, ok := parsePositiveInt(prefs.periods.Text); ok {
		settings.WorkPeriodsPerSession = count
	}
	if count, ok := parsePositiveInt(prefs.dailyTarget.Text); ok {
		settings.DailyTarget = count
	}

	settings.StopOnBreak = prefs.stopOnBreak.Checked
	settings.StopOnWork = prefs.stopOnWork.Checked
	settings.ResetWorkOnStop = prefs.resetOnStop.Checked
	settings.RemindersEnabled = prefs.reminders.Checked
	settings.BreakCardEnabled = prefs.breakCard.Checked
	settings.BreakCardOpacity = prefs.opacity.Value

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func minutesText(duration time.Duration) string {
	return fmt.Sprintf("%d", int(duration/time.Minute))
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
