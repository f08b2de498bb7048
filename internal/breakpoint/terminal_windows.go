//go:build windows

package breakpoint

import (
	"context"
	"time"
)

// resizePollInterval is how often the console size is sampled. Windows
// consoles do not deliver a resize signal.
const resizePollInterval = 250 * time.Millisecond

// watchResize polls refresh until ctx is done.
func watchResize(ctx context.Context, refresh func()) {
	ticker := time.NewTicker(resizePollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresh()
		}
	}
}
