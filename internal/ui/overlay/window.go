// Package overlay shows a small always-visible card while a break runs.
package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focusring/internal/core/stance"
	"focusring/internal/format"
)

// Config defines overlay visuals.
type Config struct {
	Enabled bool
	Opacity uint8
}

// Window manages the break card.
type Window struct {
	window        fyne.Window
	config        Config
	background    *canvas.Rectangle
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	bodyLabel     *widget.Label
	timerLabel    *canvas.Text
	progress      *widget.ProgressBar
	skipButton    *widget.Button
	pauseButton   *widget.Button
	onSkip        func()
	onPause       func()
	visible       bool
}

const (
	overlayWidthFraction  = float32(0.2)
	overlayHeightFraction = float32(0.22)
	defaultScreenWidth    = float32(1920)
	defaultScreenHeight   = float32(1080)
)

var (
	textColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	timerColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the break card window, hidden.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("focusring")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	overlay := &Window{
		window:        window,
		config:        config,
		background:    canvas.NewRectangle(backgroundColor(config.Opacity)),
		titleLabel:    newText(21, true, textColor),
		subtitleLabel: newText(14, false, textColor),
		bodyLabel:     widget.NewLabel(""),
		timerLabel:    newText(28, true, timerColor),
		progress:      widget.NewProgressBar(),
	}
	overlay.bodyLabel.Wrapping = fyne.TextWrapWord
	overlay.progress.TextFormatter = func() string { return "" }

	overlay.skipButton = widget.NewButton("Skip break", func() {
		if overlay.onSkip != nil {
			overlay.onSkip()
		}
	})
	overlay.pauseButton = widget.NewButton("Pause", func() {
		if overlay.onPause != nil {
			overlay.onPause()
		}
	})

	content := container.NewPadded(container.NewVBox(
		overlay.titleLabel,
		overlay.subtitleLabel,
		overlay.timerLabel,
		overlay.progress,
		overlay.bodyLabel,
		container.NewHBox(layout.NewSpacer(), overlay.pauseButton, overlay.skipButton),
	))
	window.SetContent(container.NewStack(overlay.background, content))

	return overlay
}

// SetOnSkip sets the skip handler.
func (overlay *Window) SetOnSkip(handler func()) {
	overlay.onSkip = handler
}

// SetOnPause sets the pause handler.
func (overlay *Window) SetOnPause(handler func()) {
	overlay.onPause = handler
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = backgroundColor(config.Opacity)
	canvas.Refresh(overlay.background)
	if !config.Enabled {
		overlay.Hide()
	}
}

// Update reflects an observation, showing the card while a break runs and
// hiding it otherwise. Must be called on the fyne main goroutine.
func (overlay *Window) Update(observation stance.Observation) {
	if !overlay.config.Enabled || !ShouldShow(observation) {
		overlay.Hide()
		return
	}

	r := observation.Report
	overlay.titleLabel.Text = observation.Title()
	overlay.titleLabel.Refresh()
	overlay.subtitleLabel.Text = observation.Subtitle()
	overlay.subtitleLabel.Refresh()
	overlay.timerLabel.Text = format.Clock(int(r.RemainingTicks))
	overlay.timerLabel.Refresh()
	overlay.progress.SetValue(r.PeriodProgress)
	overlay.bodyLabel.SetText(observation.Body())

	if !overlay.visible {
		overlay.visible = true
		overlay.resizeToScreenFraction()
		overlay.window.Show()
	}
}

// Hide closes the card.
func (overlay *Window) Hide() {
	if !overlay.visible {
		return
	}
	overlay.visible = false
	overlay.window.Hide()
}

// ShouldShow reports whether the card belongs on screen: a break is
// counting down.
func ShouldShow(observation stance.Observation) bool {
	return observation.Stance.IsRunning() && observation.Report.CurrentPeriod.IsBreak()
}

func (overlay *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * overlayWidthFraction
	height := screenSize.Height * overlayHeightFraction
	minSize := overlay.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	overlay.window.Resize(fyne.NewSize(width, height))
	overlay.window.CenterOnScreen()
}

// OpacityToAlpha converts a 0..1 opacity to a color alpha.
func OpacityToAlpha(opacity float64) uint8 {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}

func backgroundColor(alpha uint8) color.Color {
	return color.NRGBA{R: 0, G: 0, B: 0, A: alpha}
}

func newText(size float32, bold bool, fill color.Color) *canvas.Text {
	text := canvas.NewText("", fill)
	text.Alignment = fyne.TextAlignLeading
	text.TextStyle = fyne.TextStyle{Bold: bold}
	text.TextSize = size
	return text
}
