package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/port/core"
)

// RealTimeProvider is the wall clock. Timestamps are UTC so stored rows compare cleanly.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout bounds ctx; a non-positive timeout leaves it unbounded
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout.Std())
}

func (p *RealTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.Std())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
