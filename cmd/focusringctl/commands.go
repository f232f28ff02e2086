package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"focusring/internal/core/model"
	"focusring/internal/core/reminder"
	"focusring/internal/core/stance"
	"focusring/internal/core/timekeeper"
	"focusring/internal/format"
	"focusring/internal/ui/watch"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show where the timeline stands",
		RunE:  runStatus,
	})

	transitions := []struct {
		use   string
		short string
		apply func(*timekeeper.TimeKeeper)
	}{
		{"toggle", "Start a stopped countdown or pause a running one", (*timekeeper.TimeKeeper).Toggle},
		{"resume", "Start the countdown from where it stands", (*timekeeper.TimeKeeper).Resume},
		{"pause", "Stop the countdown", (*timekeeper.TimeKeeper).Pause},
		{"skip", "Move on to the next period", (*timekeeper.TimeKeeper).SkipToNextPeriod},
		{"next", "Jump to the next period and run it", (*timekeeper.TimeKeeper).StartNextPeriod},
		{"restart", "Run the current period again from its start", (*timekeeper.TimeKeeper).RestartPeriod},
		{"rewind", "Return to the start of the current period, stopped", (*timekeeper.TimeKeeper).RewindPeriod},
		{"reset", "Start the day over at tick zero", (*timekeeper.TimeKeeper).ResetToTickZero},
	}
	for _, transition := range transitions {
		apply := transition.apply
		rootCmd.AddCommand(&cobra.Command{
			Use:   transition.use,
			Short: transition.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTransition(cmd, apply)
			},
		})
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "reminders",
		Short: "List the reminders still to come",
		RunE:  runReminders,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "periods",
		Short: "List the periods of the current session",
		RunE:  runPeriods,
	})

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded transitions",
		RunE:  runHistory,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show, 0 for all")
	rootCmd.AddCommand(historyCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Follow the timeline live in the terminal",
		RunE:  runWatch,
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	printStatus(cmd.OutOrStdout(), s.keeper.Snapshot())
	return nil
}

func runTransition(cmd *cobra.Command, transition func(*timekeeper.TimeKeeper)) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.apply(transition); err != nil {
		return err
	}
	printStatus(cmd.OutOrStdout(), s.keeper.Snapshot())
	return nil
}

func runReminders(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := s.clock()
	timeline := s.keeper.Timeline()
	descriptors := reminder.Schedule(timeline, timeline.Tick(now))

	out := cmd.OutOrStdout()
	if len(descriptors) == 0 {
		fmt.Fprintln(out, "No reminders scheduled")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIRES\tIN\tKIND\tTITLE")
	for _, descriptor := range descriptors {
		fireAt := descriptor.FireAt(now)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			fireAt.Format("15:04:05"),
			humanize.RelTime(fireAt, now, "ago", "from now"),
			descriptor.Kind,
			descriptor.Title())
	}
	return w.Flush()
}

func runPeriods(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	timeline := s.keeper.Timeline()
	tick := timeline.Tick(s.clock())
	session := timeline.Pattern.SessionAt(tick)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session %d, ticks %s\n", session.Index+1, session.Range)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\t#\tKIND\tTICKS\tLENGTH")
	for i, period := range session.Periods {
		marker := ""
		if period.Range.Contains(tick) {
			marker = "▶"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			marker,
			i+1,
			period.Kind,
			period.Range,
			format.Duration(int(period.Range.Count()-1)))
	}
	return w.Flush()
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.store.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history recorded")
		return nil
	}

	now := s.clock()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tACTION\tTICK\tSTATE")
	for _, entry := range entries {
		tick := entry.Timeline.Tick(entry.At)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			humanize.RelTime(entry.At, now, "ago", "from now"),
			entry.Action,
			tick,
			stance.Of(entry.Timeline, tick))
	}
	return w.Flush()
}

func runWatch(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	program := tea.NewProgram(watch.New(s.keeper, time.Second), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func printStatus(out io.Writer, snapshot timekeeper.Event) {
	observation := stance.Observe(snapshot.Timeline, snapshot.Report.Tick)
	r := observation.Report

	state := "stopped"
	if observation.Stance.IsRunning() {
		state = "running"
	}

	fmt.Fprintln(out, observation.Title())
	if subtitle := observation.Subtitle(); subtitle != "" {
		fmt.Fprintln(out, subtitle)
	}
	fmt.Fprintf(out, "%s, %s remaining, %s (%s)\n",
		periodLabel(r.CurrentPeriod, r.PeriodIndex),
		format.Clock(int(r.RemainingTicks)),
		state,
		observation.Stance)
	fmt.Fprintf(out, "Today: %d/%d work periods (%s)\n",
		r.NumOfWorkPeriodsCompleted, r.DailyTarget, format.Percent(r.TargetProgress))
	if body := observation.Body(); body != "" {
		fmt.Fprintln(out, body)
	}
}

func periodLabel(period model.Period, index model.Tick) string {
	switch period.Kind {
	case model.PeriodShortBreak:
		return "Short break"
	case model.PeriodLongBreak:
		return "Long break"
	default:
		return fmt.Sprintf("%s work period", format.Ordinal(int(index/2)+1))
	}
}
