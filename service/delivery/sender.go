package delivery

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/minicrm/pkg/metrics"
	"github.com/QuangTung97/minicrm/service/vendor"
	"time"
)

// ErrVendorTransport wraps network level vendor errors, the send is retried
var ErrVendorTransport = errors.New("delivery: vendor transport error")

// Sender renders and delivers one send event, it never writes the delivery log
type Sender struct {
	names  NameLookup
	vendor Vendor
	sink   ReceiptSink
}

// NewSender creates a Sender, sink is nil when the vendor reports receipts by itself
func NewSender(names NameLookup, v Vendor, sink ReceiptSink) *Sender {
	return &Sender{
		names:  names,
		vendor: v,
		sink:   sink,
	}
}

// Deliver calls the vendor, a FAILED outcome is not an error and still produces a receipt
func (s *Sender) Deliver(ctx context.Context, event SendEvent) error {
	name, err := s.names.LookupName(ctx, event.CustomerID)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := s.vendor.Send(ctx, vendor.Request{
		CampaignID: event.CampaignID,
		CustomerID: event.CustomerID,
		Message:    RenderMessage(name, event.MessageTemplate),
	})
	metrics.VendorLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.VendorRequests.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", ErrVendorTransport, err)
	}
	metrics.VendorRequests.WithLabelValues(string(resp.Status)).Inc()

	if s.sink == nil {
		return nil
	}

	return s.sink.Publish(ctx, Receipt{
		CampaignID:  event.CampaignID,
		CustomerID:  event.CustomerID,
		VendorMsgID: resp.VendorMsgID,
		Status:      resp.Status,
		Error:       resp.Error,
	})
}
