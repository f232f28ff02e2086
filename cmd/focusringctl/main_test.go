package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCtl(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("focusringctl %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestCommandsShareHistory(t *testing.T) {
	dir := t.TempDir()
	flags := func(now string) []string {
		return []string{
			"--db", filepath.Join(dir, "history.db"),
			"--settings", filepath.Join(dir, "settings.yaml"),
			"--now", now,
		}
	}
	start := "2026-03-02T09:00:00Z"
	tenMinutesIn := "2026-03-02T09:10:00Z"

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "fresh status",
			args: append([]string{"status"}, flags(start)...),
			want: []string{"Ready to focus", "Today: 0/10 work periods"},
		},
		{
			name: "toggle starts the countdown",
			args: append([]string{"toggle"}, flags(start)...),
			want: []string{"running", "25:00 remaining"},
		},
		{
			name: "status later",
			args: append([]string{"status"}, flags(tenMinutesIn)...),
			want: []string{"1st work period", "15:00 remaining"},
		},
		{
			name: "reminders",
			args: append([]string{"reminders"}, flags(tenMinutesIn)...),
			want: []string{"transition", "On a short break", "15 minutes from now"},
		},
		{
			name: "periods",
			args: append([]string{"periods"}, flags(tenMinutesIn)...),
			want: []string{"Session 1", "long_break", "▶"},
		},
		{
			name: "history",
			args: append([]string{"history"}, flags(tenMinutesIn)...),
			want: []string{"toggle", "10 minutes ago"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runCtl(t, tt.args...)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output does not contain %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestInvalidNow(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"status", "--db", filepath.Join(dir, "history.db"), "--now", "yesterday"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Execute() error = nil, want parse error for --now")
	}
}
