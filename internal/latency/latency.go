// Package latency fakes the round trip of a backend call that does not exist.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
// A non-positive d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
