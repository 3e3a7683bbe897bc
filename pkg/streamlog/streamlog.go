package streamlog

import (
	"context"
	"errors"
	"time"
)

// ErrClosed returned after Close
var ErrClosed = errors.New("streamlog: closed")

// payloadField is the single field name of an entry's key-value payload
const payloadField = "payload"

const defaultBlock = 2 * time.Second

// Entry of a stream
type Entry struct {
	ID      string
	Stream  string
	Payload []byte
}

// ReadOptions bounds a single Read
type ReadOptions struct {
	// Count is the max number of entries returned
	Count int64

	// Block is the max waiting time when nothing is available
	Block time.Duration
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.Count <= 0 {
		o.Count = 100
	}
	if o.Block <= 0 {
		o.Block = defaultBlock
	}
	return o
}

// Log is a set of append-only streams consumed through consumer groups
type Log interface {
	// Append returns the entry id when the driver knows it before consumption
	Append(ctx context.Context, stream string, payload []byte) (string, error)

	// Consumer creates a member of the consumer group, the group is created on first read
	Consumer(stream string, group string, name string, opts ReadOptions) Consumer

	Close() error
}

// Consumer reads a stream at-least-once in append order
type Consumer interface {
	// Read returns the entries delivered earlier but not acked yet,
	// or if there are none, waits up to Block for new entries.
	// A wait without entries returns an empty slice and nil error
	Read(ctx context.Context) ([]Entry, error)

	// Ack marks the entries as processed, they will not be delivered again to this group
	Ack(ctx context.Context, ids ...string) error

	Close() error
}
