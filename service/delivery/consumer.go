package delivery

import (
	"context"
	"github.com/QuangTung97/minicrm/pkg/metrics"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/QuangTung97/minicrm/pkg/util"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"time"
)

type consumerOptions struct {
	timer      util.Timer
	retryDelay time.Duration
	logger     *zap.Logger
	tracer     trace.Tracer
}

// ConsumerOption ...
type ConsumerOption func(opts *consumerOptions)

// WithTimer ...
func WithTimer(timer util.Timer) ConsumerOption {
	return func(opts *consumerOptions) {
		opts.timer = timer
	}
}

// WithRetryDelay is the sleep after a failed batch
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

func defaultConsumerOptions() consumerOptions {
	return consumerOptions{
		timer:      util.NewTimer(),
		retryDelay: time.Second,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer("minicrm/delivery"),
	}
}

func newConsumerOptions(options []ConsumerOption) consumerOptions {
	opts := defaultConsumerOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// runLoop calls runOnce until ctx is done, cancellation is only checked between batches
func runLoop(ctx context.Context, opts consumerOptions, stream string, runOnce func(ctx context.Context) error) {
	logger := opts.logger.With(zap.String("stream", stream))
	logger.Info("Consumer started")

	ctx = otellib.ToContext(ctx, logger)
	for {
		if ctx.Err() != nil {
			logger.Info("Consumer stopped")
			return
		}

		err := runOnce(ctx)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			logger.Info("Consumer stopped")
			return
		}

		logger.Error("Consumer batch failed", zap.Error(err))
		opts.timer.Sleep(ctx, opts.retryDelay)
	}
}

// SendConsumer reads the send stream and calls the vendor in order
type SendConsumer struct {
	consumer streamlog.Consumer
	sender   *Sender
	opts     consumerOptions
}

// NewSendConsumer ...
func NewSendConsumer(consumer streamlog.Consumer, sender *Sender, options ...ConsumerOption) *SendConsumer {
	return &SendConsumer{
		consumer: consumer,
		sender:   sender,
		opts:     newConsumerOptions(options),
	}
}

// Run blocks until ctx is done
func (c *SendConsumer) Run(ctx context.Context) {
	runLoop(ctx, c.opts, StreamSend, c.RunOnce)
}

// RunOnce processes one batch, a delivery error stops the batch and leaves the rest unacknowledged
func (c *SendConsumer) RunOnce(ctx context.Context) error {
	entries, err := c.consumer.Read(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	ctx, span := c.opts.tracer.Start(ctx, "delivery.SendBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	logger := otellib.Extract(ctx)

	ids := make([]string, 0, len(entries))
	delivered := 0
	malformed := 0

	var deliverErr error
	for _, entry := range entries {
		event, err := decodeSendEvent(entry.Payload)
		if err != nil {
			logger.Warn("Skip malformed send event", zap.String("id", entry.ID), zap.Error(err))
			malformed++
			ids = append(ids, entry.ID)
			continue
		}

		if err := c.sender.Deliver(ctx, event); err != nil {
			deliverErr = err
			break
		}
		delivered++
		ids = append(ids, entry.ID)
	}

	metrics.AddEntries(StreamSend, metrics.ResultOK, delivered)
	metrics.AddEntries(StreamSend, metrics.ResultMalformed, malformed)

	if len(ids) > 0 {
		if err := c.consumer.Ack(ctx, ids...); err != nil {
			return err
		}
	}

	if deliverErr != nil {
		metrics.AddEntries(StreamSend, metrics.ResultFailed, 1)
		span.RecordError(deliverErr)
		return deliverErr
	}
	return nil
}

// ReceiptConsumer reads the receipts stream and applies each batch in one transaction
type ReceiptConsumer struct {
	consumer streamlog.Consumer
	applier  *ReceiptApplier
	opts     consumerOptions
}

// NewReceiptConsumer ...
func NewReceiptConsumer(consumer streamlog.Consumer, applier *ReceiptApplier, options ...ConsumerOption) *ReceiptConsumer {
	return &ReceiptConsumer{
		consumer: consumer,
		applier:  applier,
		opts:     newConsumerOptions(options),
	}
}

// Run blocks until ctx is done
func (c *ReceiptConsumer) Run(ctx context.Context) {
	runLoop(ctx, c.opts, StreamReceipts, c.RunOnce)
}

// RunOnce applies one batch, nothing of the batch is acknowledged on failure
func (c *ReceiptConsumer) RunOnce(ctx context.Context) error {
	entries, err := c.consumer.Read(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	ctx, span := c.opts.tracer.Start(ctx, "delivery.ReceiptBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	logger := otellib.Extract(ctx)

	ids := make([]string, 0, len(entries))
	receipts := make([]Receipt, 0, len(entries))
	malformed := 0

	for _, entry := range entries {
		ids = append(ids, entry.ID)

		receipt, err := decodeReceipt(entry.Payload)
		if err != nil {
			logger.Warn("Skip malformed receipt", zap.String("id", entry.ID), zap.Error(err))
			malformed++
			continue
		}
		receipts = append(receipts, receipt)
	}

	result, err := c.applier.Apply(ctx, receipts)
	if err != nil {
		metrics.AddEntries(StreamReceipts, metrics.ResultFailed, len(receipts))
		span.RecordError(err)
		return err
	}

	if err := c.consumer.Ack(ctx, ids...); err != nil {
		return err
	}

	metrics.AddEntries(StreamReceipts, metrics.ResultOK, result.Applied)
	metrics.AddEntries(StreamReceipts, metrics.ResultDuplicate, result.Duplicates)
	metrics.AddEntries(StreamReceipts, metrics.ResultMalformed, malformed)

	if result.Duplicates > 0 {
		logger.Debug("Dropped duplicate receipts", zap.Int("count", result.Duplicates))
	}
	return nil
}
