package core

import (
	"context"
	"time"
)

// Duration keeps domain code off time.Duration arithmetic
type Duration time.Duration

const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the clock used for record timestamps, query deadlines and retry waits
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
	WithTimeout(ctx context.Context, timeout Duration) (context.Context, context.CancelFunc)
	// Sleep waits for d or until ctx is done, whichever comes first, and returns ctx.Err() in the latter case
	Sleep(ctx context.Context, d Duration) error
}
