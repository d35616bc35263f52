package walk

import (
	"context"
	"time"
)

// parkCheckInterval bounds how long a parked worker sleeps without being
// explicitly unparked, so it periodically re-checks the finished flag even
// if an unpark signal was somehow missed. It is deliberately close to the
// supervisor's own poll tick.
const parkCheckInterval = 15 * time.Millisecond

// parker is a single-slot wakeup channel: buffered to size 1 so an unpark
// that races ahead of a park is never lost (the next park call drains the
// pending signal immediately instead of blocking).
type parker struct {
	wake chan struct{}
}

func newParker() *parker {
	return &parker{wake: make(chan struct{}, 1)}
}

// park blocks until unparked, ctx is done, or parkCheckInterval elapses.
func (p *parker) park(ctx context.Context) {
	select {
	case <-p.wake:
	case <-ctx.Done():
	case <-time.After(parkCheckInterval):
	}
}

// unpark wakes a parked worker. It never blocks: if a wakeup is already
// pending, this is a no-op.
func (p *parker) unpark() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}
