package streamlog

import (
	"context"
	"errors"
	"github.com/redis/go-redis/v9"
	"strings"
	"time"
)

type redisLog struct {
	client redis.UniversalClient
}

var _ Log = &redisLog{}

// NewRedis creates a Log on Redis Streams
func NewRedis(client redis.UniversalClient) Log {
	return &redisLog{
		client: client,
	}
}

func (l *redisLog) Append(ctx context.Context, stream string, payload []byte) (string, error) {
	return l.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			payloadField: payload,
		},
	}).Result()
}

func (l *redisLog) Consumer(stream string, group string, name string, opts ReadOptions) Consumer {
	return &redisConsumer{
		client: l.client,
		stream: stream,
		group:  group,
		name:   name,
		opts:   opts.withDefaults(),

		checkPending: true,
	}
}

func (l *redisLog) Close() error {
	return l.client.Close()
}

type redisConsumer struct {
	client redis.UniversalClient
	stream string
	group  string
	name   string
	opts   ReadOptions

	groupReady   bool
	checkPending bool
}

func (c *redisConsumer) ensureGroup(ctx context.Context) error {
	if c.groupReady {
		return nil
	}

	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	c.groupReady = true
	return nil
}

func (c *redisConsumer) Read(ctx context.Context) ([]Entry, error) {
	if err := c.ensureGroup(ctx); err != nil {
		return nil, err
	}

	if c.checkPending {
		// id "0" returns this consumer's delivered but unacked entries, without blocking
		entries, err := c.read(ctx, "0", -1)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			return entries, nil
		}
		c.checkPending = false
	}

	entries, err := c.read(ctx, ">", c.opts.Block)
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		c.checkPending = true
	}
	return entries, nil
}

func (c *redisConsumer) read(ctx context.Context, id string, block time.Duration) ([]Entry, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.name,
		Streams:  []string{c.stream, id},
		Count:    c.opts.Count,
		Block:    block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result []Entry
	for _, s := range streams {
		for _, msg := range s.Messages {
			result = append(result, Entry{
				ID:      msg.ID,
				Stream:  s.Stream,
				Payload: payloadOf(msg.Values),
			})
		}
	}
	return result, nil
}

// payloadOf returns nil for entries deleted from the stream while still pending
func payloadOf(values map[string]interface{}) []byte {
	switch v := values[payloadField].(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	default:
		return nil
	}
}

func (c *redisConsumer) Ack(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	return c.client.XAck(ctx, c.stream, c.group, ids...).Err()
}

func (c *redisConsumer) Close() error {
	return nil
}
