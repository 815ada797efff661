package ports

import (
	"context"
	"time"

	"NewswireNotifier/internal/domain"
)

// Bulletin is one raw NewsML document and where it came from.
type Bulletin struct {
	Name       string
	Body       []byte
	ReceivedAt time.Time
}

// BulletinSource yields raw bulletins to process (files, drop directories).
type BulletinSource interface {
	Bulletins(ctx context.Context) ([]Bulletin, error)
}

// Notifier hands an assembled payload to a delivery channel.
type Notifier interface {
	Notify(ctx context.Context, payload domain.NotificationPayload) error
}

// Recorder observes how each bulletin invocation ended.
type Recorder interface {
	Observe(dialect domain.Dialect, outcome domain.Outcome, articles int, elapsed time.Duration)
}
