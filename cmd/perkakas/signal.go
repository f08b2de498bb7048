package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// setupSignalHandler returns a context cancelled by the first SIGINT or
// SIGTERM. A second signal exits the process with status 130.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
			return
		}

		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nForce exit")
			os.Exit(130)
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
