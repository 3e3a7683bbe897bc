package repository

import (
	"database/sql"
	"github.com/QuangTung97/minicrm/model"
	"time"
)

// VisitsCount is the number of customers having the same visit count
type VisitsCount struct {
	Visits int64 `db:"visits"`
	Count  int64 `db:"num"`
}

// OrderTotals ...
type OrderTotals struct {
	Count  int64 `db:"num"`
	Amount int64 `db:"amount"`
}

// DailyAmount day in YYYY-MM-DD (UTC)
type DailyAmount struct {
	Day    string `db:"day"`
	Amount int64  `db:"amount"`
}

// StatusCount ...
type StatusCount struct {
	Status model.DeliveryStatus `db:"status"`
	Count  int64                `db:"num"`
}

// CampaignStatusCount ...
type CampaignStatusCount struct {
	CampaignID string               `db:"campaign_id"`
	Status     model.DeliveryStatus `db:"status"`
	Count      int64                `db:"num"`
}

// DailyStatusCount ...
type DailyStatusCount struct {
	Day    string               `db:"day"`
	Status model.DeliveryStatus `db:"status"`
	Count  int64                `db:"num"`
}

// DeliveryResult is the terminal outcome written to a PENDING delivery log
type DeliveryResult struct {
	CampaignID  string
	CustomerID  string
	Status      model.DeliveryStatus
	Error       sql.NullString
	VendorMsgID sql.NullString
	UpdatedAt   time.Time
}
