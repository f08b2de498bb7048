package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/flashingpumpkin/perkakas/internal/breakpoint"
	"github.com/flashingpumpkin/perkakas/internal/config"
	"github.com/flashingpumpkin/perkakas/internal/output"
	"github.com/flashingpumpkin/perkakas/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var watchCmd = newWatchCmd()

// watchedEnvironment is a breakpoint environment that can follow size
// changes until its context is done.
type watchedEnvironment interface {
	breakpoint.Environment
	Watch(ctx context.Context) error
}

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	var minimal bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch terminal width against the configured breakpoints",
		Long: `Watch the terminal width and report every breakpoint that starts or
stops matching as the window is resized.

By default a full screen dashboard is shown. With --minimal, or when
stdout is not a terminal, changes are printed as lines instead.
Press q or Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := setupSignalHandler()
			defer cancel()

			f := newFormatter(cfg, cmd.OutOrStdout())
			if shouldUseTUI(minimal) {
				return runWatchTUI(ctx, cfg, f)
			}

			env := breakpoint.NewTerminal(int(os.Stdout.Fd()))
			if !env.Supported() {
				f.PrintVerbose("stdout is not a terminal, no resize events will arrive")
			}
			return runWatchMinimal(ctx, cfg, f, env)
		},
	}
	cmd.Flags().BoolVar(&minimal, "minimal", false, "Print changes as lines instead of the dashboard")
	return cmd
}

// shouldUseTUI determines whether the dashboard should be shown.
func shouldUseTUI(minimal bool) bool {
	if minimal {
		return false
	}

	// CI environment disables TUI
	if os.Getenv("CI") != "" {
		return false
	}

	// Non-interactive terminal disables TUI
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// runWatchTUI runs the dashboard until the user quits or ctx is cancelled.
func runWatchTUI(ctx context.Context, cfg *config.Config, f *output.Formatter) error {
	prog, err := tui.New(cfg.Screens, cfg.Theme)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		prog.Quit()
	}()

	start := time.Now()
	err = prog.Run()
	if err == nil {
		err = ctx.Err()
	}

	f.PrintWatchSummary(output.WatchSummary{
		Changes:  prog.Changes(),
		Duration: time.Since(start),
		Columns:  prog.Columns(),
		Active:   prog.Active(),
		Error:    err,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runWatchMinimal mounts one hook per screen on env, prints each change
// and blocks until ctx is cancelled or env stops watching.
func runWatchMinimal(ctx context.Context, cfg *config.Config, f *output.Formatter, env watchedEnvironment) error {
	layout, err := breakpoint.New(cfg.Screens, env)
	if err != nil {
		return err
	}

	columns := func() int { return int(env.Width() / breakpoint.ChPixels) }

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" watching %d columns", columns())
	if !cfg.Quiet {
		s.Start()
	}
	defer s.Stop()

	// Subscribers run on the goroutine that delivers resize events,
	// which is the env.Watch call below.
	changes := 0
	for _, screen := range layout.Screens() {
		name := screen.Name
		hook := layout.UseBreakpoint(name, false)
		defer hook.Mount()()

		hook.Subscribe(func(match bool) {
			changes++
			s.Lock()
			f.PrintBreakpointChange(name, match, columns())
			s.Suffix = fmt.Sprintf(" watching %d columns", columns())
			s.Unlock()
		})
	}

	f.PrintVerbose("active at %d columns: %s", columns(), strings.Join(layout.Active(), ", "))

	start := time.Now()
	err = env.Watch(ctx)
	if err == nil {
		err = ctx.Err()
	}
	s.Stop()

	f.PrintWatchSummary(output.WatchSummary{
		Changes:  changes,
		Duration: time.Since(start),
		Columns:  columns(),
		Active:   layout.Active(),
		Error:    err,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
