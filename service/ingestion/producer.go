package ingestion

import (
	"context"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/google/uuid"
	"time"
)

// Result of an ingestion request
type Result struct {
	ID string `json:"id"`

	// Enqueued is false when the mutation was applied inline
	Enqueued bool `json:"enqueued"`
}

type producerOptions struct {
	newID func() string
	now   func() time.Time
}

// ProducerOption ...
type ProducerOption func(opts *producerOptions)

// WithIDGenerator ...
func WithIDGenerator(newID func() string) ProducerOption {
	return func(opts *producerOptions) {
		opts.newID = newID
	}
}

// WithClock ...
func WithClock(now func() time.Time) ProducerOption {
	return func(opts *producerOptions) {
		opts.now = now
	}
}

// Producer validates writes and appends them to the ingestion streams
type Producer struct {
	log     streamlog.Log
	applier *Applier
	opts    producerOptions
}

// NewProducer creates a Producer, a nil log applies every write inline
func NewProducer(log streamlog.Log, applier *Applier, options ...ProducerOption) *Producer {
	opts := producerOptions{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Producer{
		log:     log,
		applier: applier,
		opts:    opts,
	}
}

func (p *Producer) now() time.Time {
	return p.opts.now().UTC().Truncate(time.Microsecond)
}

func (p *Producer) append(ctx context.Context, stream string, event interface{}) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}
	_, err = p.log.Append(ctx, stream, data)
	return err
}

// IngestCustomer ...
func (p *Producer) IngestCustomer(ctx context.Context, input CustomerInput) (Result, error) {
	event, err := input.toEvent(p.opts.newID(), p.now())
	if err != nil {
		return Result{}, err
	}

	if p.log == nil {
		if _, err := p.applier.ApplyCustomer(ctx, event); err != nil {
			return Result{}, err
		}
		return Result{ID: event.ID}, nil
	}

	if err := p.append(ctx, StreamCustomers, event); err != nil {
		return Result{}, err
	}
	return Result{ID: event.ID, Enqueued: true}, nil
}

// IngestOrder ...
func (p *Producer) IngestOrder(ctx context.Context, input OrderInput) (Result, error) {
	event, err := input.toEvent(p.opts.newID(), p.now())
	if err != nil {
		return Result{}, err
	}

	if p.log == nil {
		if _, err := p.applier.ApplyOrder(ctx, event); err != nil {
			return Result{}, err
		}
		return Result{ID: event.ID}, nil
	}

	if err := p.append(ctx, StreamOrders, event); err != nil {
		return Result{}, err
	}
	return Result{ID: event.ID, Enqueued: true}, nil
}
