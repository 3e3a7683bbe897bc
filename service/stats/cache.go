package stats

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/minicrm/pkg/metrics"
	"go.uber.org/zap"
	"sync"
	"time"
)

//go:generate moq -out stats_mocks_test.go . SnapshotComputer SnapshotStore

// SnapshotComputer ...
type SnapshotComputer interface {
	Compute(ctx context.Context, now time.Time) (Snapshot, error)
}

var _ SnapshotComputer = &Computer{}

// Cache keeps the last computed snapshot for at most ttl
type Cache struct {
	computer SnapshotComputer
	store    SnapshotStore
	ttl      time.Duration
	logger   *zap.Logger

	mut        sync.Mutex
	snapshot   Snapshot
	computedAt time.Time
	valid      bool
}

// NewCache store can be nil
func NewCache(computer SnapshotComputer, store SnapshotStore, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		computer: computer,
		store:    store,
		ttl:      ttl,
		logger:   logger,
	}
}

// Get returns the last snapshot, ok = false before the first successful refresh
func (c *Cache) Get() (Snapshot, bool) {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.snapshot, c.valid
}

// RefreshIfStale recomputes when the snapshot is older than ttl.
// A failed refresh keeps the previous snapshot and only returns an error when there is none.
func (c *Cache) RefreshIfStale(ctx context.Context, now time.Time) (Snapshot, error) {
	c.mut.Lock()
	defer c.mut.Unlock()

	if c.valid && now.Sub(c.computedAt) < c.ttl {
		return c.snapshot, nil
	}

	snapshot, err := c.computer.Compute(ctx, now)
	if err != nil {
		metrics.StatsRefresh.WithLabelValues(metrics.ResultFailed).Inc()
		c.logger.Error("Compute stats snapshot", zap.Error(err))
		if c.valid {
			return c.snapshot, nil
		}
		return Snapshot{}, err
	}
	metrics.StatsRefresh.WithLabelValues(metrics.ResultOK).Inc()

	c.snapshot = snapshot
	c.computedAt = now
	c.valid = true

	c.publish(ctx, snapshot)
	return snapshot, nil
}

func (c *Cache) publish(ctx context.Context, snapshot Snapshot) {
	if c.store == nil {
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		c.logger.Error("Encode stats snapshot", zap.Error(err))
		return
	}

	err = c.store.Put(ctx, data)
	if err != nil {
		c.logger.Warn("Store stats snapshot", zap.Error(err))
	}
}

// LoadSnapshot reads the snapshot another process stored
func LoadSnapshot(ctx context.Context, store SnapshotStore) (Snapshot, bool, error) {
	data, ok, err := store.Get(ctx)
	if err != nil {
		return Snapshot{}, false, err
	}
	if !ok {
		return Snapshot{}, false, nil
	}

	var snapshot Snapshot
	err = json.Unmarshal(data, &snapshot)
	if err != nil {
		return Snapshot{}, false, err
	}
	return snapshot, true, nil
}
