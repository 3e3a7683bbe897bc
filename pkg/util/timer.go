package util

import (
	"context"
	"time"
)

// Timer abstracts the clock for loops that sleep between retries
type Timer interface {
	Now() time.Time

	// Sleep returns early when ctx is done
	Sleep(ctx context.Context, d time.Duration)
}

type realTimer struct {
}

// NewTimer ...
func NewTimer() Timer {
	return realTimer{}
}

func (realTimer) Now() time.Time {
	return time.Now()
}

func (realTimer) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
