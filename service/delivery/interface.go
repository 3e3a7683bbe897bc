package delivery

import (
	"context"
	"github.com/QuangTung97/minicrm/service/vendor"
)

//go:generate moq -out delivery_mocks_test.go . Vendor NameLookup ReceiptSink

// Vendor delivers one rendered message, an error is a transport error
type Vendor interface {
	Send(ctx context.Context, req vendor.Request) (vendor.Response, error)
}

// NameLookup returns the display name of a customer, empty when the customer is unknown
type NameLookup interface {
	LookupName(ctx context.Context, customerID string) (string, error)
}

// ReceiptSink receives vendor outcomes, either appending them to the receipts stream or applying them
type ReceiptSink interface {
	Publish(ctx context.Context, receipt Receipt) error
}

// Dispatcher hands a send event to the delivery pipeline
type Dispatcher interface {
	Dispatch(ctx context.Context, event SendEvent) error
}

var _ Vendor = &vendor.Client{}
var _ Vendor = &vendor.Simulator{}
