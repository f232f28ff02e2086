package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "focusring"

var (
	dbPath       string
	settingsPath string
	nowValue     string
	rootCmd      = &cobra.Command{
		Use:   "focusringctl",
		Short: "focusring - inspect and drive the focus timeline",
		Long: `focusringctl reads the focus timeline recorded by focusring, applies
transitions to it and prints what the day looks like: the current period,
progress toward the daily goal and the reminders still to come.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file path")
	rootCmd.PersistentFlags().StringVar(&nowValue, "now", "", "evaluate at this RFC 3339 time instead of the wall clock")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
