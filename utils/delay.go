package utils

import (
	"context"
	"time"
)

// Delay simulates processing time around purchases and checks. It returns
// early with the context error if ctx is done first.
type Delay func(ctx context.Context) error

// NoDelay completes immediately.
func NoDelay() Delay {
	return func(ctx context.Context) error {
		return ctx.Err()
	}
}

// FixedDelay waits for d. A non-positive d behaves like NoDelay.
func FixedDelay(d time.Duration) Delay {
	if d <= 0 {
		return NoDelay()
	}
	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}
