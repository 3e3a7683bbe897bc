package leasecache

import (
	"context"
	"errors"
	"github.com/QuangTung97/minicrm/pkg/util"
	"time"
)

//go:generate moq -out leasecache_mocks_test.go . Client

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and another caller holds the lease
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// Client for remote cache (like memcached) supporting leases
type Client interface {
	LeaseGet(key string) (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl time.Duration) error
	Delete(key string) error
}

// ErrLeaseNotGranted when every wait finished and the lease is still held by another caller
var ErrLeaseNotGranted = errors.New("leasecache: lease not granted")

// Loader reads the value from the backing store
type Loader func(ctx context.Context) ([]byte, error)

type cacheOptions struct {
	waitLeaseDurations   []time.Duration
	failedOnWaitFinished bool
	ttl                  time.Duration
	timer                util.Timer
}

// Option ...
type Option func(opts *cacheOptions)

// WithWaitLeaseDurations ...
func WithWaitLeaseDurations(durations []time.Duration) Option {
	return func(opts *cacheOptions) {
		opts.waitLeaseDurations = durations
	}
}

// WithFailedOnWaitFinished failed when all waits finished, otherwise load from the backing store
func WithFailedOnWaitFinished(b bool) Option {
	return func(opts *cacheOptions) {
		opts.failedOnWaitFinished = b
	}
}

// WithTTL of the cached values, zero never expires
func WithTTL(ttl time.Duration) Option {
	return func(opts *cacheOptions) {
		opts.ttl = ttl
	}
}

// WithTimer ...
func WithTimer(timer util.Timer) Option {
	return func(opts *cacheOptions) {
		opts.timer = timer
	}
}

// Cache is a read-through cache where only the lease holder loads a missing key
type Cache struct {
	client Client
	opts   cacheOptions
}

// New ...
func New(client Client, options ...Option) *Cache {
	opts := cacheOptions{
		waitLeaseDurations: []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			50 * time.Millisecond,
		},
		failedOnWaitFinished: true,
		timer:                util.NewTimer(),
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Cache{
		client: client,
		opts:   opts,
	}
}

// Get returns the cached value of key, calling load on a granted lease
func (c *Cache) Get(ctx context.Context, key string, load Loader) ([]byte, error) {
	waits := c.opts.waitLeaseDurations

	for {
		output, err := c.client.LeaseGet(key)
		if err != nil {
			return nil, err
		}

		switch output.Type {
		case LeaseGetTypeGranted:
			return c.fill(ctx, key, output.LeaseID, load)

		case LeaseGetTypeRejected:
			if len(waits) == 0 {
				if c.opts.failedOnWaitFinished {
					return nil, ErrLeaseNotGranted
				}
				return load(ctx)
			}

			c.opts.timer.Sleep(ctx, waits[0])
			waits = waits[1:]
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

		default:
			return output.Data, nil
		}
	}
}

func (c *Cache) fill(ctx context.Context, key string, leaseID uint64, load Loader) ([]byte, error) {
	data, err := load(ctx)
	if err != nil {
		// release the lease so the next caller does not wait
		_ = c.client.Delete(key)
		return nil, err
	}

	// a failed set only loses the cached copy
	_ = c.client.LeaseSet(key, data, leaseID, c.opts.ttl)
	return data, nil
}

// Invalidate ...
func (c *Cache) Invalidate(key string) error {
	return c.client.Delete(key)
}
