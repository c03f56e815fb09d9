package catalog

import (
	"context"
	"time"
)

// Latency simulates the round trip of a remote call. Zero means no wait.
type Latency time.Duration

// Wait blocks for the latency or until ctx is done.
func (l Latency) Wait(ctx context.Context) error {
	if l <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(l))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
