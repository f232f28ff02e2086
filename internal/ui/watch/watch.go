// Package watch renders a live terminal view of the timeline.
package watch

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusring/internal/core/model"
	"focusring/internal/core/stance"
	"focusring/internal/core/timekeeper"
	"focusring/internal/format"
)

const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	workStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	breakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4A90E2")).
			Bold(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

type tickMsg time.Time

// Model is the bubbletea model of the watch view.
type Model struct {
	keeper      *timekeeper.TimeKeeper
	interval    time.Duration
	observation stance.Observation
	width       int
}

// New creates a watch model driven by keeper.
func New(keeper *timekeeper.TimeKeeper, interval time.Duration) Model {
	if interval <= 0 {
		interval = time.Second
	}
	m := Model{keeper: keeper, interval: interval}
	m.refresh()
	return m
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.keeper.Toggle()
		case "s":
			m.keeper.SkipToNextPeriod()
		case "n":
			m.keeper.StartNextPeriod()
		case "r":
			m.keeper.RestartPeriod()
		case "R":
			m.keeper.ResetToTickZero()
		}
		m.refresh()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.refresh()
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	o := m.observation
	r := o.Report

	header := titleStyle.Render(o.Title())

	kindStyle := workStyle
	if r.CurrentPeriod.IsBreak() {
		kindStyle = breakStyle
	}
	if !o.Stance.IsRunning() {
		kindStyle = pausedStyle
	}

	lines := []string{
		kindStyle.Render(fmt.Sprintf("%s  %s", periodName(r.CurrentPeriod.Kind), format.Clock(int(r.RemainingTicks)))),
	}
	if subtitle := o.Subtitle(); subtitle != "" {
		lines = append(lines, subtitle)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Period  %s %s", ProgressBar(r.PeriodProgress, barWidth), format.Percent(r.PeriodProgress)),
		fmt.Sprintf("Today   %s %d/%d", ProgressBar(r.TargetProgress, barWidth), r.NumOfWorkPeriodsCompleted, r.DailyTarget),
		"",
		o.Body(),
	)

	box := boxStyle.Render(strings.Join(lines, "\n"))
	help := helpStyle.Render("space: start/pause  s: skip  n: next  r: restart  R: reset day  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, box, help)
}

// Observation returns the observation currently displayed.
func (m Model) Observation() stance.Observation {
	return m.observation
}

func (m *Model) refresh() {
	snapshot := m.keeper.Snapshot()
	m.observation = stance.Observe(snapshot.Timeline, snapshot.Report.Tick)
}

// ProgressBar renders fraction as a bar of width cells.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func periodName(kind model.PeriodKind) string {
	switch kind {
	case model.PeriodShortBreak:
		return "Short break"
	case model.PeriodLongBreak:
		return "Long break"
	default:
		return "Work"
	}
}
