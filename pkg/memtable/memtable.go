package memtable

import (
	"github.com/coocood/freecache"
	"time"
)

// MemTable is a fixed size in-process cache with per-key expiration
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	seconds := int(ttl / time.Second)
	if seconds == 0 {
		return 1
	}
	return seconds
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set with ttl <= 0 never expires
func (m *MemTable) Set(key string, value []byte, ttl time.Duration) {
	_ = m.cache.Set([]byte(key), value, expireSeconds(ttl))
}

// GetString ...
func (m *MemTable) GetString(key string) (string, bool) {
	data, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return string(data), true
}

// SetString ...
func (m *MemTable) SetString(key string, value string, ttl time.Duration) {
	m.Set(key, []byte(value), ttl)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
