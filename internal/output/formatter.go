// Package output provides formatting utilities for perkakas output.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Formatter handles formatted output for perkakas.
type Formatter struct {
	verbose bool
	quiet   bool
	noColor bool
	writer  io.Writer
}

// ScreenStatus is one row of a breakpoint table.
type ScreenStatus struct {
	Name     string
	MinWidth string
	Match    bool
}

// WatchSummary contains summary information for a watch session.
type WatchSummary struct {
	Changes  int
	Duration time.Duration
	Columns  int
	Active   []string
	Error    error
}

// NewFormatter creates a new Formatter with the specified options.
// It checks the NO_COLOR environment variable to determine if colour output should be disabled.
func NewFormatter(verbose, quiet bool, w io.Writer) *Formatter {
	noColor := os.Getenv("NO_COLOR") != ""

	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		verbose: verbose,
		quiet:   quiet,
		noColor: noColor,
		writer:  w,
	}
}

// PrintResult prints a command result on its own line. Results are
// never coloured so they can be piped.
func (f *Formatter) PrintResult(value string) {
	_, _ = fmt.Fprintln(f.writer, value)
}

// PrintLabeled prints "label: value". In quiet mode only the value is printed.
func (f *Formatter) PrintLabeled(label, value string) {
	if f.quiet {
		f.PrintResult(value)
		return
	}

	dim := color.New(color.FgHiBlack)
	_, _ = dim.Fprintf(f.writer, "  %-12s ", label+":")
	_, _ = fmt.Fprintln(f.writer, value)
}

// PrintVerbose prints a detail line when verbose output is enabled.
func (f *Formatter) PrintVerbose(format string, args ...any) {
	if !f.verbose || f.quiet {
		return
	}

	dim := color.New(color.FgHiBlack)
	_, _ = dim.Fprintf(f.writer, format+"\n", args...)
}

// PrintError prints an error message.
func (f *Formatter) PrintError(err error) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = red.Fprintf(f.writer, "Error: %v\n", err)
}

// PrintBreakpointChange prints a single breakpoint transition.
func (f *Formatter) PrintBreakpointChange(name string, match bool, columns int) {
	if f.quiet {
		return
	}

	if match {
		green := color.New(color.FgGreen)
		_, _ = green.Fprintf(f.writer, "✓ %s matches at %d columns\n", name, columns)
		return
	}
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(f.writer, "✗ %s no longer matches at %d columns\n", name, columns)
}

// PrintScreens prints the breakpoint table.
func (f *Formatter) PrintScreens(screens []ScreenStatus) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)
	green := color.New(color.FgGreen)
	dim := color.New(color.FgHiBlack)

	if !f.quiet {
		_, _ = cyan.Fprintln(f.writer, "Breakpoints")
	}
	for _, s := range screens {
		if s.Match {
			_, _ = green.Fprintf(f.writer, "  ● %-8s", s.Name)
		} else {
			_, _ = dim.Fprintf(f.writer, "  ○ %-8s", s.Name)
		}
		_, _ = white.Fprintf(f.writer, " %s\n", s.MinWidth)
	}
}

// PrintWatchSummary prints the final summary of a watch session.
func (f *Formatter) PrintWatchSummary(summary WatchSummary) {
	// Always print summary (even in quiet mode, it's important info)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)
	green := color.New(color.FgGreen, color.Bold)

	active := "(none)"
	if len(summary.Active) > 0 {
		active = strings.Join(summary.Active, ", ")
	}

	_, _ = fmt.Fprintln(f.writer, "")
	_, _ = cyan.Fprintln(f.writer, "Summary")
	_, _ = white.Fprintf(f.writer, "  Duration:     %v\n", formatDuration(summary.Duration))
	_, _ = white.Fprintf(f.writer, "  Changes:      %d\n", summary.Changes)
	_, _ = white.Fprintf(f.writer, "  Width:        %d columns\n", summary.Columns)
	_, _ = white.Fprintf(f.writer, "  Active:       %s\n", active)

	switch {
	case summary.Error == nil:
		_, _ = green.Fprintln(f.writer, "  Status:       STOPPED")
	case errors.Is(summary.Error, context.Canceled):
		_, _ = yellow.Fprintln(f.writer, "  Status:       INTERRUPTED")
	default:
		_, _ = red.Fprintf(f.writer, "  Status:       FAILED (%v)\n", summary.Error)
	}
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
