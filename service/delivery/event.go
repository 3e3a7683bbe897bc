package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/QuangTung97/minicrm/model"
	"strings"
)

// Streams and consumer groups of the delivery pipeline
const (
	StreamSend     = "delivery:send"
	StreamReceipts = "delivery:receipts"

	GroupSender   = "delivery-sender"
	GroupReceipts = "delivery-receipts"
)

// DefaultFailureReason is used for a FAILED receipt without error text
const DefaultFailureReason = "vendor reported failure"

// ErrMalformedEntry when a log entry payload can not be decoded
var ErrMalformedEntry = errors.New("delivery: malformed entry")

// ErrInvalidReceipt ...
var ErrInvalidReceipt = errors.New("delivery: invalid receipt")

// SendEvent asks the send consumer to deliver one message
type SendEvent struct {
	CampaignID      string `json:"campaignId"`
	CustomerID      string `json:"customerId"`
	MessageTemplate string `json:"messageTemplate"`
}

// Receipt is the outcome reported by the vendor for one delivery
type Receipt struct {
	CampaignID  string               `json:"campaignId"`
	CustomerID  string               `json:"customerId"`
	VendorMsgID string               `json:"vendorMsgId"`
	Status      model.DeliveryStatus `json:"status"`
	Error       string               `json:"error,omitempty"`
	Message     string               `json:"message,omitempty"`
}

// Normalize checks a receipt and fills the default failure reason
func (r Receipt) Normalize() (Receipt, error) {
	if r.CampaignID == "" || r.CustomerID == "" {
		return Receipt{}, fmt.Errorf("%w: campaignId and customerId are required", ErrInvalidReceipt)
	}
	if !r.Status.IsTerminal() {
		return Receipt{}, fmt.Errorf("%w: status must be SENT or FAILED, got %q", ErrInvalidReceipt, r.Status)
	}

	if r.Status == model.DeliveryStatusSent {
		r.Error = ""
	} else if strings.TrimSpace(r.Error) == "" {
		r.Error = DefaultFailureReason
	}
	return r, nil
}

func encodeSendEvent(e SendEvent) ([]byte, error) {
	return json.Marshal(e)
}

func decodeSendEvent(data []byte) (SendEvent, error) {
	var e SendEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return SendEvent{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if e.CampaignID == "" || e.CustomerID == "" {
		return SendEvent{}, fmt.Errorf("%w: campaignId and customerId are required", ErrMalformedEntry)
	}
	return e, nil
}

func encodeReceipt(r Receipt) ([]byte, error) {
	return json.Marshal(r)
}

func decodeReceipt(data []byte) (Receipt, error) {
	var r Receipt
	if err := json.Unmarshal(data, &r); err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	r, err := r.Normalize()
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	return r, nil
}
