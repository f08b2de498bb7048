//go:build !windows

package breakpoint

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchResize calls refresh on every SIGWINCH until ctx is done.
func watchResize(ctx context.Context, refresh func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGWINCH)
	defer signal.Stop(sigChan)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sigChan:
			refresh()
		}
	}
}
