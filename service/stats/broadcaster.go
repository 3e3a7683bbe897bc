package stats

import (
	"context"
	"github.com/QuangTung97/minicrm/pkg/util"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Source is where the broadcaster gets snapshots
type Source interface {
	RefreshIfStale(ctx context.Context, now time.Time) (Snapshot, error)
}

var _ Source = &Cache{}

// Broadcaster recomputes on a fixed interval and pushes to subscribers.
// Each subscriber channel holds only the latest snapshot.
type Broadcaster struct {
	source   Source
	timer    util.Timer
	interval time.Duration
	logger   *zap.Logger

	mut    sync.Mutex
	nextID int
	subs   map[int]chan Snapshot
}

// NewBroadcaster ...
func NewBroadcaster(source Source, timer util.Timer, interval time.Duration, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		source:   source,
		timer:    timer,
		interval: interval,
		logger:   logger,
		subs:     map[int]chan Snapshot{},
	}
}

// Subscribe returns the channel and a cancel func, cancel closes the channel and is idempotent
func (b *Broadcaster) Subscribe() (<-chan Snapshot, func()) {
	b.mut.Lock()
	defer b.mut.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Snapshot, 1)
	b.subs[id] = ch

	return ch, func() {
		b.mut.Lock()
		defer b.mut.Unlock()

		if _, ok := b.subs[id]; !ok {
			return
		}
		delete(b.subs, id)
		close(ch)
	}
}

// NumSubscribers ...
func (b *Broadcaster) NumSubscribers() int {
	b.mut.Lock()
	defer b.mut.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) publish(snapshot Snapshot) {
	b.mut.Lock()
	defer b.mut.Unlock()

	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Tick refreshes once and publishes the result
func (b *Broadcaster) Tick(ctx context.Context) {
	snapshot, err := b.source.RefreshIfStale(ctx, b.timer.Now())
	if err != nil {
		b.logger.Error("Refresh stats for broadcast", zap.Error(err))
		return
	}
	b.publish(snapshot)
}

// Run ticks until ctx is done
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		b.Tick(ctx)

		b.timer.Sleep(ctx, b.interval)
		if ctx.Err() != nil {
			return
		}
	}
}
