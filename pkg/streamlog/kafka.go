package streamlog

import (
	"context"
	"errors"
	"fmt"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"strings"
	"sync"
	"time"
)

// fetchLinger is how long a read keeps collecting after the first message arrived
const fetchLinger = 100 * time.Millisecond

// TopicName maps a stream name to a valid Kafka topic, ':' is not allowed in topics
func TopicName(stream string) string {
	return strings.ReplaceAll(stream, ":", ".")
}

type kafkaLog struct {
	brokers []string
	writer  *kafka.Writer
	logger  *zap.Logger
}

var _ Log = &kafkaLog{}

//go:generate moq -out streamlog_mocks_test.go . kafkaReader

// kafkaReader is the part of *kafka.Reader used by a consumer
type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var _ kafkaReader = &kafka.Reader{}

// NewKafka creates a Log on Kafka topics, each consumer group commits offsets only up to
// the first message not acked yet.
// Messages are keyed by stream name so a stream always lands on one partition and keeps
// its append order, also on topics with more than one partition.
func NewKafka(brokers []string, logger *zap.Logger) Log {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		MaxAttempts:            3,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Debug(fmt.Sprintf(msg, args...))
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error(fmt.Sprintf(msg, args...))
		}),
	}

	return &kafkaLog{
		brokers: brokers,
		writer:  writer,
		logger:  logger,
	}
}

// Append returns an empty id, the offset is known only after the write is consumed
func (l *kafkaLog) Append(ctx context.Context, stream string, payload []byte) (string, error) {
	err := l.writer.WriteMessages(ctx, kafka.Message{
		Topic: TopicName(stream),
		Key:   []byte(stream),
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		return "", err
	}
	return "", nil
}

func (l *kafkaLog) Consumer(stream string, group string, name string, opts ReadOptions) Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  l.brokers,
		GroupID:  group,
		Topic:    TopicName(stream),
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  opts.withDefaults().Block,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			l.logger.Debug(fmt.Sprintf(msg, args...), zap.String("consumer", name))
		}),
	})

	return newKafkaConsumer(reader, stream, opts)
}

func newKafkaConsumer(reader kafkaReader, stream string, opts ReadOptions) *kafkaConsumer {
	return &kafkaConsumer{
		reader: reader,
		stream: stream,
		opts:   opts.withDefaults(),
		acked:  map[string]struct{}{},
	}
}

func (l *kafkaLog) Close() error {
	return l.writer.Close()
}

type kafkaConsumer struct {
	reader kafkaReader
	stream string
	opts   ReadOptions

	mut sync.Mutex
	// fetched but not committed, in fetch order
	inflight []kafka.Message
	acked    map[string]struct{}
}

func kafkaEntryID(msg kafka.Message) string {
	return fmt.Sprintf("%d-%d", msg.Partition, msg.Offset)
}

func (c *kafkaConsumer) toEntry(msg kafka.Message) Entry {
	return Entry{
		ID:      kafkaEntryID(msg),
		Stream:  c.stream,
		Payload: msg.Value,
	}
}

// pendingMessages returns up to limit inflight messages not acked yet, in fetch order
func pendingMessages(inflight []kafka.Message, acked map[string]struct{}, limit int64) []kafka.Message {
	var result []kafka.Message
	for _, msg := range inflight {
		if int64(len(result)) >= limit {
			break
		}
		if _, ok := acked[kafkaEntryID(msg)]; ok {
			continue
		}
		result = append(result, msg)
	}
	return result
}

// splitCommits returns for each partition the longest prefix of acked messages,
// an acked message after an unacked one of the same partition stays in remaining
func splitCommits(inflight []kafka.Message, acked map[string]struct{}) (commits []kafka.Message, remaining []kafka.Message) {
	blocked := map[int]struct{}{}
	for _, msg := range inflight {
		_, isBlocked := blocked[msg.Partition]
		_, isAcked := acked[kafkaEntryID(msg)]
		if !isBlocked && isAcked {
			commits = append(commits, msg)
			continue
		}
		blocked[msg.Partition] = struct{}{}
		remaining = append(remaining, msg)
	}
	return commits, remaining
}

func (c *kafkaConsumer) toEntries(messages []kafka.Message) []Entry {
	result := make([]Entry, 0, len(messages))
	for _, msg := range messages {
		result = append(result, c.toEntry(msg))
	}
	return result
}

func (c *kafkaConsumer) Read(ctx context.Context) ([]Entry, error) {
	c.mut.Lock()
	pending := pendingMessages(c.inflight, c.acked, c.opts.Count)
	c.mut.Unlock()

	if len(pending) > 0 {
		return c.toEntries(pending), nil
	}

	messages, err := c.fetch(ctx)

	// fetched messages are tracked also on error, otherwise a later Ack could commit past them
	c.mut.Lock()
	c.inflight = append(c.inflight, messages...)
	c.mut.Unlock()

	if err != nil {
		return nil, err
	}
	return c.toEntries(messages), nil
}

func (c *kafkaConsumer) fetch(ctx context.Context) ([]kafka.Message, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.opts.Block)
	defer func() { cancel() }()

	var messages []kafka.Message
	for int64(len(messages)) < c.opts.Count {
		msg, err := c.reader.FetchMessage(waitCtx)
		if err != nil {
			if ctx.Err() != nil {
				return messages, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				break
			}
			return messages, err
		}
		messages = append(messages, msg)

		if len(messages) == 1 {
			cancel()
			waitCtx, cancel = context.WithTimeout(ctx, fetchLinger)
		}
	}
	return messages, nil
}

// Ack commits for each partition the longest prefix of acked messages
func (c *kafkaConsumer) Ack(ctx context.Context, ids ...string) error {
	c.mut.Lock()
	defer c.mut.Unlock()

	for _, id := range ids {
		c.acked[id] = struct{}{}
	}

	commits, remaining := splitCommits(c.inflight, c.acked)
	if len(commits) == 0 {
		return nil
	}

	if err := c.reader.CommitMessages(ctx, commits...); err != nil {
		return err
	}

	c.inflight = remaining
	for _, msg := range commits {
		delete(c.acked, kafkaEntryID(msg))
	}
	return nil
}

func (c *kafkaConsumer) Close() error {
	return c.reader.Close()
}
