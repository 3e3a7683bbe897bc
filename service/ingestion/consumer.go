package ingestion

import (
	"context"
	"errors"
	"github.com/QuangTung97/minicrm/pkg/metrics"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/QuangTung97/minicrm/pkg/util"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"sync"
	"time"
)

type consumerOptions struct {
	workers    int
	timer      util.Timer
	retryDelay time.Duration
	logger     *zap.Logger
	tracer     trace.Tracer
}

// ConsumerOption ...
type ConsumerOption func(opts *consumerOptions)

// WithWorkers sets the number of partitions a batch is split into
func WithWorkers(n int) ConsumerOption {
	return func(opts *consumerOptions) {
		if n > 0 {
			opts.workers = n
		}
	}
}

// WithTimer ...
func WithTimer(timer util.Timer) ConsumerOption {
	return func(opts *consumerOptions) {
		opts.timer = timer
	}
}

// WithRetryDelay is the sleep after a batch with failures
func WithRetryDelay(d time.Duration) ConsumerOption {
	return func(opts *consumerOptions) {
		opts.retryDelay = d
	}
}

// WithLogger ...
func WithLogger(logger *zap.Logger) ConsumerOption {
	return func(opts *consumerOptions) {
		opts.logger = logger
	}
}

// WithTracer ...
func WithTracer(tracer trace.Tracer) ConsumerOption {
	return func(opts *consumerOptions) {
		opts.tracer = tracer
	}
}

// task is one decoded entry, key is the customer id used for partitioning
type task struct {
	entryID string
	key     string
	apply   func(ctx context.Context) (bool, error)
}

type decodeFunc func(entry streamlog.Entry) (task, error)

// Consumer applies one ingestion stream with a worker pool,
// entries of the same customer go to the same worker and keep their order
type Consumer struct {
	stream   string
	consumer streamlog.Consumer
	decode   decodeFunc
	opts     consumerOptions
}

func newConsumer(stream string, consumer streamlog.Consumer, decode decodeFunc, options []ConsumerOption) *Consumer {
	opts := consumerOptions{
		workers:    1,
		timer:      util.NewTimer(),
		retryDelay: time.Second,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer("minicrm/ingestion"),
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Consumer{
		stream:   stream,
		consumer: consumer,
		decode:   decode,
		opts:     opts,
	}
}

// NewCustomerConsumer ...
func NewCustomerConsumer(consumer streamlog.Consumer, applier *Applier, options ...ConsumerOption) *Consumer {
	return newConsumer(StreamCustomers, consumer, func(entry streamlog.Entry) (task, error) {
		e, err := decodeCustomerEvent(entry.Payload)
		if err != nil {
			return task{}, err
		}
		return task{
			entryID: entry.ID,
			key:     e.ID,
			apply: func(ctx context.Context) (bool, error) {
				return applier.ApplyCustomer(ctx, e)
			},
		}, nil
	}, options)
}

// NewOrderConsumer ...
func NewOrderConsumer(consumer streamlog.Consumer, applier *Applier, options ...ConsumerOption) *Consumer {
	return newConsumer(StreamOrders, consumer, func(entry streamlog.Entry) (task, error) {
		e, err := decodeOrderEvent(entry.Payload)
		if err != nil {
			return task{}, err
		}
		return task{
			entryID: entry.ID,
			key:     e.CustomerID,
			apply: func(ctx context.Context) (bool, error) {
				return applier.ApplyOrder(ctx, e)
			},
		}, nil
	}, options)
}

// Run blocks until ctx is done, cancellation is only checked between batches
func (c *Consumer) Run(ctx context.Context) {
	logger := c.opts.logger.With(zap.String("stream", c.stream))
	logger.Info("Consumer started")

	ctx = otellib.ToContext(ctx, logger)
	for {
		if ctx.Err() != nil {
			logger.Info("Consumer stopped")
			return
		}

		err := c.RunOnce(ctx)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			logger.Info("Consumer stopped")
			return
		}

		logger.Error("Consumer batch failed", zap.Error(err))
		c.opts.timer.Sleep(ctx, c.opts.retryDelay)
	}
}

type partitionResult struct {
	done       []string
	duplicates int
	err        error
}

func runPartition(ctx context.Context, tasks []task) partitionResult {
	var result partitionResult
	for _, t := range tasks {
		applied, err := t.apply(ctx)
		if err != nil {
			result.err = err
			return result
		}
		if !applied {
			result.duplicates++
		}
		result.done = append(result.done, t.entryID)
	}
	return result
}

// RunOnce processes one batch. Only the entries whose mutation committed are acknowledged,
// the first failure of a partition stops the rest of that partition
func (c *Consumer) RunOnce(ctx context.Context) error {
	entries, err := c.consumer.Read(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	ctx, span := c.opts.tracer.Start(ctx, "ingestion.Batch")
	defer span.End()
	span.SetAttributes(
		attribute.String("stream", c.stream),
		attribute.Int("entries", len(entries)),
	)

	logger := otellib.Extract(ctx)

	var acked []string
	partitions := make([][]task, c.opts.workers)
	malformed := 0

	for _, entry := range entries {
		t, err := c.decode(entry)
		if err != nil {
			logger.Warn("Skip malformed ingestion entry", zap.String("id", entry.ID), zap.Error(err))
			malformed++
			acked = append(acked, entry.ID)
			continue
		}
		p := util.Partition(t.key, c.opts.workers)
		partitions[p] = append(partitions[p], t)
	}

	results := make([]partitionResult, len(partitions))
	var wg sync.WaitGroup
	for i, tasks := range partitions {
		if len(tasks) == 0 {
			continue
		}

		wg.Add(1)
		go func(i int, tasks []task) {
			defer wg.Done()
			results[i] = runPartition(ctx, tasks)
		}(i, tasks)
	}
	wg.Wait()

	var errs []error
	done := 0
	duplicates := 0
	for _, r := range results {
		acked = append(acked, r.done...)
		done += len(r.done)
		duplicates += r.duplicates
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}

	metrics.AddEntries(c.stream, metrics.ResultOK, done-duplicates)
	metrics.AddEntries(c.stream, metrics.ResultDuplicate, duplicates)
	metrics.AddEntries(c.stream, metrics.ResultMalformed, malformed)
	metrics.AddEntries(c.stream, metrics.ResultFailed, len(errs))

	if len(acked) > 0 {
		if err := c.consumer.Ack(ctx, acked...); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		err := errors.Join(errs...)
		span.RecordError(err)
		return err
	}
	return nil
}
