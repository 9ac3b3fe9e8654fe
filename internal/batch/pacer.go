package batch

import (
	"context"
	"math/rand"
	"time"
)

// Pacer is the courtesy rate-limit between consecutive company scrapes.
// It is politeness toward third-party sites, not a correctness requirement.
type Pacer interface {
	Pause(ctx context.Context) error
}

// FixedDelay pauses for Interval plus up to Jitter of random slack. Sleep
// is swappable so tests run against a fake clock.
type FixedDelay struct {
	Interval time.Duration
	Jitter   time.Duration
	Sleep    func(ctx context.Context, d time.Duration) error
}

func (p FixedDelay) Pause(ctx context.Context) error {
	d := p.Interval
	if p.Jitter > 0 {
		d += time.Duration(rand.Int63n(int64(p.Jitter)))
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	return sleep(ctx, d)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
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
