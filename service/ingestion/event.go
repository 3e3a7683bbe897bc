package ingestion

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Streams and the consumer group of the ingestion pipeline
const (
	StreamCustomers = "ingest:customers"
	StreamOrders    = "ingest:orders"

	GroupIngestion = "ingestion"
)

// ErrInvalidInput ...
var ErrInvalidInput = errors.New("ingestion: invalid input")

// ErrMalformedEntry when a log entry payload can not be decoded
var ErrMalformedEntry = errors.New("ingestion: malformed entry")

// CustomerInput ...
type CustomerInput struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TotalSpend   int64  `json:"totalSpend,omitempty"`
	Visits       int64  `json:"visits,omitempty"`
	LastActiveAt string `json:"lastActiveAt,omitempty"`
}

// OrderInput ...
type OrderInput struct {
	CustomerID string `json:"customerId"`
	Amount     int64  `json:"amount"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// CustomerEvent is a validated customer with its id minted by the producer
type CustomerEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	TotalSpend   int64     `json:"totalSpend"`
	Visits       int64     `json:"visits"`
	LastActiveAt time.Time `json:"lastActiveAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

// OrderEvent is a validated order with its id minted by the producer
type OrderEvent struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func parseTimestamp(field string, value string, defaultValue time.Time) (time.Time, error) {
	if value == "" {
		return defaultValue, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, invalidInput("%s must be an ISO-8601 timestamp", field)
	}
	return t.UTC().Truncate(time.Microsecond), nil
}

func (in CustomerInput) toEvent(id string, now time.Time) (CustomerEvent, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CustomerEvent{}, invalidInput("name is required")
	}
	if in.Email != "" {
		addr, err := mail.ParseAddress(in.Email)
		if err != nil || addr.Address != in.Email {
			return CustomerEvent{}, invalidInput("email %q is not valid", in.Email)
		}
	}
	if in.TotalSpend < 0 {
		return CustomerEvent{}, invalidInput("totalSpend must not be negative")
	}
	if in.Visits < 0 {
		return CustomerEvent{}, invalidInput("visits must not be negative")
	}

	lastActiveAt, err := parseTimestamp("lastActiveAt", in.LastActiveAt, now)
	if err != nil {
		return CustomerEvent{}, err
	}

	return CustomerEvent{
		ID:           id,
		Name:         name,
		Email:        in.Email,
		Phone:        in.Phone,
		TotalSpend:   in.TotalSpend,
		Visits:       in.Visits,
		LastActiveAt: lastActiveAt,
		CreatedAt:    now,
	}, nil
}

func (in OrderInput) toEvent(id string, now time.Time) (OrderEvent, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return OrderEvent{}, invalidInput("customerId is required")
	}
	if in.Amount <= 0 {
		return OrderEvent{}, invalidInput("amount must be positive")
	}

	createdAt, err := parseTimestamp("createdAt", in.CreatedAt, now)
	if err != nil {
		return OrderEvent{}, err
	}

	return OrderEvent{
		ID:         id,
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		CreatedAt:  createdAt,
	}, nil
}

func decodeCustomerEvent(data []byte) (CustomerEvent, error) {
	var e CustomerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return CustomerEvent{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if e.ID == "" || e.Name == "" {
		return CustomerEvent{}, fmt.Errorf("%w: id and name are required", ErrMalformedEntry)
	}
	return e, nil
}

func decodeOrderEvent(data []byte) (OrderEvent, error) {
	var e OrderEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return OrderEvent{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}
	if e.ID == "" || e.CustomerID == "" || e.Amount <= 0 {
		return OrderEvent{}, fmt.Errorf("%w: id, customerId and a positive amount are required", ErrMalformedEntry)
	}
	return e, nil
}

func encodeEvent(event interface{}) ([]byte, error) {
	return json.Marshal(event)
}
