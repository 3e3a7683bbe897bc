package streamlog

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryLog is an in-process Log with the same delivery semantics as the Redis driver
type MemoryLog struct {
	mut     sync.Mutex
	seq     uint64
	closed  bool
	streams map[string]*memoryStream

	// closed and replaced on every append
	notify chan struct{}
}

type memoryStream struct {
	entries []Entry
	groups  map[string]*memoryGroup
}

type memoryGroup struct {
	next    int
	pending []Entry
}

var _ Log = &MemoryLog{}

// NewMemory ...
func NewMemory() *MemoryLog {
	return &MemoryLog{
		streams: map[string]*memoryStream{},
		notify:  make(chan struct{}),
	}
}

func (l *MemoryLog) getStream(name string) *memoryStream {
	s, ok := l.streams[name]
	if !ok {
		s = &memoryStream{
			groups: map[string]*memoryGroup{},
		}
		l.streams[name] = s
	}
	return s
}

// Append ...
func (l *MemoryLog) Append(_ context.Context, stream string, payload []byte) (string, error) {
	l.mut.Lock()
	defer l.mut.Unlock()

	if l.closed {
		return "", ErrClosed
	}

	l.seq++
	entry := Entry{
		ID:      fmt.Sprintf("%d-0", l.seq),
		Stream:  stream,
		Payload: append([]byte(nil), payload...),
	}

	s := l.getStream(stream)
	s.entries = append(s.entries, entry)

	close(l.notify)
	l.notify = make(chan struct{})

	return entry.ID, nil
}

// Entries returns all entries ever appended to the stream
func (l *MemoryLog) Entries(stream string) []Entry {
	l.mut.Lock()
	defer l.mut.Unlock()

	return append([]Entry(nil), l.getStream(stream).entries...)
}

// Pending returns the delivered but unacked entries of a group
func (l *MemoryLog) Pending(stream string, group string) []Entry {
	l.mut.Lock()
	defer l.mut.Unlock()

	g, ok := l.getStream(stream).groups[group]
	if !ok {
		return nil
	}
	return append([]Entry(nil), g.pending...)
}

// Consumer ...
func (l *MemoryLog) Consumer(stream string, group string, _ string, opts ReadOptions) Consumer {
	return &memoryConsumer{
		log:    l,
		stream: stream,
		group:  group,
		opts:   opts.withDefaults(),
	}
}

// Close ...
func (l *MemoryLog) Close() error {
	l.mut.Lock()
	defer l.mut.Unlock()
	l.closed = true
	return nil
}

type memoryConsumer struct {
	log    *MemoryLog
	stream string
	group  string
	opts   ReadOptions
}

func (c *memoryConsumer) tryRead() ([]Entry, <-chan struct{}, error) {
	l := c.log

	l.mut.Lock()
	defer l.mut.Unlock()

	if l.closed {
		return nil, nil, ErrClosed
	}

	s := l.getStream(c.stream)
	g, ok := s.groups[c.group]
	if !ok {
		g = &memoryGroup{}
		s.groups[c.group] = g
	}

	if len(g.pending) > 0 {
		n := len(g.pending)
		if int64(n) > c.opts.Count {
			n = int(c.opts.Count)
		}
		return append([]Entry(nil), g.pending[:n]...), nil, nil
	}

	end := len(s.entries)
	if int64(end-g.next) > c.opts.Count {
		end = g.next + int(c.opts.Count)
	}
	if end == g.next {
		return nil, l.notify, nil
	}

	result := append([]Entry(nil), s.entries[g.next:end]...)
	g.pending = append(g.pending, result...)
	g.next = end
	return result, nil, nil
}

func (c *memoryConsumer) Read(ctx context.Context) ([]Entry, error) {
	timer := time.NewTimer(c.opts.Block)
	defer timer.Stop()

	for {
		entries, notify, err := c.tryRead()
		if err != nil {
			return nil, err
		}
		if notify == nil {
			return entries, nil
		}

		select {
		case <-notify:
		case <-timer.C:
			return nil, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *memoryConsumer) Ack(_ context.Context, ids ...string) error {
	l := c.log

	l.mut.Lock()
	defer l.mut.Unlock()

	g, ok := l.getStream(c.stream).groups[c.group]
	if !ok {
		return nil
	}

	acked := map[string]struct{}{}
	for _, id := range ids {
		acked[id] = struct{}{}
	}

	remaining := g.pending[:0]
	for _, e := range g.pending {
		if _, ok := acked[e.ID]; ok {
			continue
		}
		remaining = append(remaining, e)
	}
	g.pending = remaining
	return nil
}

func (c *memoryConsumer) Close() error {
	return nil
}
