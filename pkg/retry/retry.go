// Package retry re-runs short operations that fail transiently,
// such as writes against a busy SQLite file.
package retry

import (
	"context"
	"fmt"
	"time"
)

const defaultDelay = 50 * time.Millisecond

type Config struct {
	MaxAttempts int
	Delay       time.Duration
	ShouldRetry func(error) bool
}

func (c *Config) normalize() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 1
	}
	if c.Delay <= 0 {
		c.Delay = defaultDelay
	}
	if c.ShouldRetry == nil {
		c.ShouldRetry = func(error) bool { return true }
	}
}

// Do runs fn up to c.MaxAttempts times, waiting c.Delay between
// attempts. It stops early when fn succeeds, when c.ShouldRetry
// rejects the error, or when ctx is done.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		err = fn()
		if err == nil || !c.ShouldRetry(err) {
			return err
		}
		if attempt == c.MaxAttempts {
			break
		}

		timer.Reset(c.Delay)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
	return err
}
