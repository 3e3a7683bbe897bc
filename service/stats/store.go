package stats

import (
	"context"
	"github.com/QuangTung97/minicrm/pkg/cacheclient"
	"github.com/QuangTung97/minicrm/pkg/memtable"
)

// SnapshotKey is the cache key of the encoded snapshot
const SnapshotKey = "minicrm:stats:snapshot"

// SnapshotStore holds the latest encoded snapshot, readers check GeneratedAt for freshness
type SnapshotStore interface {
	Put(ctx context.Context, data []byte) error
	Get(ctx context.Context) ([]byte, bool, error)
}

type localStore struct {
	table *memtable.MemTable
}

// NewLocalStore keeps the snapshot in process memory
func NewLocalStore(table *memtable.MemTable) SnapshotStore {
	return &localStore{table: table}
}

func (s *localStore) Put(_ context.Context, data []byte) error {
	s.table.Set(SnapshotKey, data, 0)
	return nil
}

func (s *localStore) Get(_ context.Context) ([]byte, bool, error) {
	data, ok := s.table.Get(SnapshotKey)
	return data, ok, nil
}

type memcacheStore struct {
	client *cacheclient.Client
}

// NewMemcacheStore shares the snapshot between processes
func NewMemcacheStore(client *cacheclient.Client) SnapshotStore {
	return &memcacheStore{client: client}
}

func (s *memcacheStore) Put(_ context.Context, data []byte) error {
	return s.client.Set(SnapshotKey, data, 0)
}

func (s *memcacheStore) Get(_ context.Context) ([]byte, bool, error) {
	return s.client.Get(SnapshotKey)
}
