package delivery

import (
	"context"
	"errors"
	"github.com/QuangTung97/minicrm/pkg/leasecache"
	"github.com/QuangTung97/minicrm/pkg/memtable"
	"github.com/QuangTung97/minicrm/repository"
	"time"
)

type storeNames struct {
	provider repository.Provider
	repo     repository.Customer
}

// NewStoreNames reads names from the customer table
func NewStoreNames(provider repository.Provider, repo repository.Customer) NameLookup {
	return &storeNames{
		provider: provider,
		repo:     repo,
	}
}

func (s *storeNames) LookupName(ctx context.Context, customerID string) (string, error) {
	ctx = s.provider.Readonly(ctx)
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return customer.Name, nil
}

// CachedNames keeps found names in a freecache table, names never change after ingestion
type CachedNames struct {
	next  NameLookup
	table *memtable.MemTable
	ttl   time.Duration
}

var _ NameLookup = &CachedNames{}

// NewCachedNames ...
func NewCachedNames(next NameLookup, table *memtable.MemTable, ttl time.Duration) *CachedNames {
	return &CachedNames{
		next:  next,
		table: table,
		ttl:   ttl,
	}
}

func nameCacheKey(customerID string) string {
	return "name:" + customerID
}

// LookupName ...
func (c *CachedNames) LookupName(ctx context.Context, customerID string) (string, error) {
	key := nameCacheKey(customerID)
	if name, ok := c.table.GetString(key); ok {
		return name, nil
	}

	name, err := c.next.LookupName(ctx, customerID)
	if err != nil {
		return "", err
	}
	if name != "" {
		c.table.SetString(key, name, c.ttl)
	}
	return name, nil
}

// SharedNames is a memcached read-through shared by every sender process,
// only one of them loads a missing name from the store
type SharedNames struct {
	next  NameLookup
	cache *leasecache.Cache
}

var _ NameLookup = &SharedNames{}

// NewSharedNames ...
func NewSharedNames(next NameLookup, cache *leasecache.Cache) *SharedNames {
	return &SharedNames{
		next:  next,
		cache: cache,
	}
}

func sharedNameKey(customerID string) string {
	return "minicrm:name:" + customerID
}

// LookupName ...
func (s *SharedNames) LookupName(ctx context.Context, customerID string) (string, error) {
	data, err := s.cache.Get(ctx, sharedNameKey(customerID), func(ctx context.Context) ([]byte, error) {
		name, err := s.next.LookupName(ctx, customerID)
		return []byte(name), err
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
