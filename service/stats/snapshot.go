package stats

import (
	"github.com/shopspring/decimal"
	"time"
)

// KPIs ...
type KPIs struct {
	Customers     int64           `json:"customers"`
	Orders        int64           `json:"orders"`
	Campaigns     int64           `json:"campaigns"`
	Sent          int64           `json:"sent"`
	Failed        int64           `json:"failed"`
	Revenue       int64           `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
}

// Series holds one value per day, oldest first
type Series struct {
	Days    []string `json:"days"`
	Revenue []int64  `json:"revenue"`
	Sent    []int64  `json:"sent"`
	Failed  []int64  `json:"failed"`
}

// FunnelStage ...
type FunnelStage struct {
	Stage string `json:"stage"`
	Value int64  `json:"value"`
}

// Milestone is the number of customers in a visits bucket
type Milestone struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Snapshot is everything the dashboard shows
type Snapshot struct {
	GeneratedAt time.Time     `json:"generatedAt"`
	KPIs        KPIs          `json:"kpis"`
	Series      Series        `json:"series"`
	Funnel      []FunnelStage `json:"funnel"`
	Milestones  []Milestone   `json:"milestones"`
}
