package stats

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
	"github.com/QuangTung97/minicrm/repository"
	"github.com/QuangTung97/minicrm/service/rules"
	"github.com/shopspring/decimal"
	"time"
)

// SeriesDays is the length of the daily series
const SeriesDays = 30

const dayLayout = "2006-01-02"

// Computer reads the aggregates of a snapshot from the store
type Computer struct {
	provider     repository.Provider
	customerRepo repository.Customer
	orderRepo    repository.Order
	campaignRepo repository.Campaign
	logRepo      repository.DeliveryLog
}

// NewComputer ...
func NewComputer(
	provider repository.Provider,
	customerRepo repository.Customer,
	orderRepo repository.Order,
	campaignRepo repository.Campaign,
	logRepo repository.DeliveryLog,
) *Computer {
	return &Computer{
		provider:     provider,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		campaignRepo: campaignRepo,
		logRepo:      logRepo,
	}
}

func averageOrderValue(totals repository.OrderTotals) decimal.Decimal {
	if totals.Count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(totals.Amount).DivRound(decimal.NewFromInt(totals.Count), 2)
}

// seriesDays returns the last SeriesDays days in UTC ending today
func seriesDays(now time.Time) []string {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	days := make([]string, 0, SeriesDays)
	for i := SeriesDays - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i).Format(dayLayout))
	}
	return days
}

func seriesStart(now time.Time) time.Time {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -(SeriesDays - 1))
}

func milestones(counts []repository.VisitsCount) []Milestone {
	result := []Milestone{
		{Label: "New (0 visits)"},
		{Label: "1-2 visits"},
		{Label: "3-5 visits"},
		{Label: "6+ visits"},
	}
	for _, c := range counts {
		switch {
		case c.Visits <= 0:
			result[0].Value += c.Count
		case c.Visits <= 2:
			result[1].Value += c.Count
		case c.Visits <= 5:
			result[2].Value += c.Count
		default:
			result[3].Value += c.Count
		}
	}
	return result
}

// Compute builds a snapshot from one read-only context
func (c *Computer) Compute(ctx context.Context, now time.Time) (Snapshot, error) {
	ctx = c.provider.Readonly(ctx)

	customers, err := c.customerRepo.CountCustomers(ctx, rules.Const{Value: true})
	if err != nil {
		return Snapshot{}, err
	}

	totals, err := c.orderRepo.GetOrderTotals(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	campaigns, err := c.campaignRepo.CountCampaigns(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	statusCounts, err := c.logRepo.CountByStatus(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	since := seriesStart(now)
	amounts, err := c.orderRepo.SumAmountByDay(ctx, since)
	if err != nil {
		return Snapshot{}, err
	}

	dailyStatus, err := c.logRepo.CountByDayStatus(ctx, since)
	if err != nil {
		return Snapshot{}, err
	}

	visits, err := c.customerRepo.CountCustomersByVisits(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	var queued, sent, failed int64
	for _, s := range statusCounts {
		queued += s.Count
		switch s.Status {
		case model.DeliveryStatusSent:
			sent += s.Count
		case model.DeliveryStatusFailed:
			failed += s.Count
		}
	}

	days := seriesDays(now)
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d] = i
	}

	series := Series{
		Days:    days,
		Revenue: make([]int64, len(days)),
		Sent:    make([]int64, len(days)),
		Failed:  make([]int64, len(days)),
	}
	for _, a := range amounts {
		if i, ok := index[a.Day]; ok {
			series.Revenue[i] += a.Amount
		}
	}
	for _, d := range dailyStatus {
		i, ok := index[d.Day]
		if !ok {
			continue
		}
		switch d.Status {
		case model.DeliveryStatusSent:
			series.Sent[i] += d.Count
		case model.DeliveryStatusFailed:
			series.Failed[i] += d.Count
		}
	}

	return Snapshot{
		GeneratedAt: now,
		KPIs: KPIs{
			Customers:     customers,
			Orders:        totals.Count,
			Campaigns:     campaigns,
			Sent:          sent,
			Failed:        failed,
			Revenue:       totals.Amount,
			AvgOrderValue: averageOrderValue(totals),
		},
		Series: series,
		Funnel: []FunnelStage{
			{Stage: "Queued", Value: queued},
			{Stage: "Sent", Value: sent},
			{Stage: "Failed", Value: failed},
		},
		Milestones: milestones(visits),
	}, nil
}
