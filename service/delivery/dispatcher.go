package delivery

import (
	"context"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
)

// LogDispatcher is the send producer, it appends to the send stream
type LogDispatcher struct {
	log streamlog.Log
}

var _ Dispatcher = &LogDispatcher{}

// NewLogDispatcher ...
func NewLogDispatcher(log streamlog.Log) *LogDispatcher {
	return &LogDispatcher{
		log: log,
	}
}

// Dispatch ...
func (d *LogDispatcher) Dispatch(ctx context.Context, event SendEvent) error {
	data, err := encodeSendEvent(event)
	if err != nil {
		return err
	}
	_, err = d.log.Append(ctx, StreamSend, data)
	return err
}

// InlineDispatcher delivers synchronously, used when no durable log is configured
type InlineDispatcher struct {
	sender *Sender
}

var _ Dispatcher = &InlineDispatcher{}

// NewInlineDispatcher expects a sender publishing to a StoreReceiptSink
func NewInlineDispatcher(sender *Sender) *InlineDispatcher {
	return &InlineDispatcher{
		sender: sender,
	}
}

// Dispatch ...
func (d *InlineDispatcher) Dispatch(ctx context.Context, event SendEvent) error {
	return d.sender.Deliver(ctx, event)
}
