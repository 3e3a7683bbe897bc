package model

import (
	"database/sql"
	"time"
)

// DeliveryLog is one recipient of a campaign, unique by (campaign_id, customer_id)
type DeliveryLog struct {
	ID          string         `db:"id"`
	CampaignID  string         `db:"campaign_id"`
	CustomerID  string         `db:"customer_id"`
	Status      DeliveryStatus `db:"status"`
	Message     string         `db:"message"`
	Error       sql.NullString `db:"error"`
	VendorMsgID sql.NullString `db:"vendor_msg_id"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// DeliveryStatus of a delivery log, PENDING => SENT | FAILED
type DeliveryStatus string

const (
	// DeliveryStatusPending is the initial status
	DeliveryStatusPending DeliveryStatus = "PENDING"

	// DeliveryStatusSent is terminal
	DeliveryStatusSent DeliveryStatus = "SENT"

	// DeliveryStatusFailed is terminal
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

// IsTerminal ...
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusSent || s == DeliveryStatusFailed
}

// IsValid ...
func (s DeliveryStatus) IsValid() bool {
	return s == DeliveryStatusPending || s.IsTerminal()
}
