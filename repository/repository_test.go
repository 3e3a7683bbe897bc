package repository

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/minicrm/model"
	"github.com/QuangTung97/minicrm/pkg/integration"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newNullString(s string) sql.NullString {
	return sql.NullString{Valid: true, String: s}
}

type rawFilter struct {
	where string
	args  []interface{}
}

func (f rawFilter) SQL() (string, []interface{}) {
	return f.where, f.args
}

type repoTest struct {
	tc       *integration.TestCase
	provider Provider

	customer    Customer
	order       Order
	segment     Segment
	campaign    Campaign
	deliveryLog DeliveryLog
}

func newRepoTest() *repoTest {
	tc := integration.NewTestCase()
	tc.TruncateAll()
	return &repoTest{
		tc:       tc,
		provider: NewProvider(tc.DB),

		customer:    NewCustomer(),
		order:       NewOrder(),
		segment:     NewSegment(),
		campaign:    NewCampaign(),
		deliveryLog: NewDeliveryLog(),
	}
}

func (r *repoTest) insertCustomer(t *testing.T, customer model.Customer) {
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		inserted, err := r.customer.InsertCustomerIfAbsent(ctx, customer)
		assert.Equal(t, true, inserted)
		return err
	})
	assert.Equal(t, nil, err)
}

func newCustomer(id string, name string, spend int64, visits int64, lastActive string) model.Customer {
	return model.Customer{
		ID:           id,
		Name:         name,
		TotalSpend:   spend,
		Visits:       visits,
		LastActiveAt: newTime(lastActive),
		CreatedAt:    newTime("2024-01-01T00:00:00Z"),
		UpdatedAt:    newTime("2024-01-01T00:00:00Z"),
	}
}

func (r *repoTest) insertCampaign(t *testing.T, campaignID string) {
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		err := r.segment.InsertSegment(ctx, model.Segment{
			ID:        "segment-" + campaignID,
			Name:      "segment",
			RulesJSON: `{"op":"AND","rules":[]}`,
			CreatedBy: "tester",
			CreatedAt: newTime("2024-01-02T00:00:00Z"),
		})
		if err != nil {
			return err
		}
		return r.campaign.InsertCampaign(ctx, model.Campaign{
			ID:              campaignID,
			Name:            "campaign " + campaignID,
			SegmentID:       "segment-" + campaignID,
			MessageTemplate: "hello",
			CreatedBy:       "tester",
			CreatedAt:       newTime("2024-01-02T00:00:00Z"),
		})
	})
	assert.Equal(t, nil, err)
}

func TestCustomer_Insert_Get_Apply_Order(t *testing.T) {
	r := newRepoTest()

	customer := newCustomer("c-01", "Aisha", 0, 0, "2024-01-05T10:00:00Z")
	customer.Email = newNullString("aisha@example.com")
	r.insertCustomer(t, customer)

	//---------------------------------------
	// Insert duplicated
	//---------------------------------------
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		dup := customer
		dup.Name = "Other"
		inserted, err := r.customer.InsertCustomerIfAbsent(ctx, dup)
		assert.Equal(t, false, inserted)
		return err
	})
	assert.Equal(t, nil, err)

	//---------------------------------------
	// Apply Order
	//---------------------------------------
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		return r.customer.ApplyOrder(ctx, "c-01", 1500, newTime("2024-02-01T08:00:00Z"))
	})
	assert.Equal(t, nil, err)

	result, err := r.customer.GetCustomer(r.provider.Readonly(newContext()), "c-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Aisha", result.Name)
	assert.Equal(t, int64(1500), result.TotalSpend)
	assert.Equal(t, int64(1), result.Visits)
	assert.Equal(t, newTime("2024-02-01T08:00:00Z"), result.LastActiveAt)
	assert.Equal(t, newNullString("aisha@example.com"), result.Email)
	assert.Equal(t, false, result.Phone.Valid)

	//---------------------------------------
	// Not Found
	//---------------------------------------
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		return r.customer.ApplyOrder(ctx, "c-not-found", 1500, newTime("2024-02-01T08:00:00Z"))
	})
	assert.Equal(t, ErrNotFound, err)

	_, err = r.customer.GetCustomer(r.provider.Readonly(newContext()), "c-not-found")
	assert.Equal(t, ErrNotFound, err)
}

func TestCustomer_Count_And_Select_By_Filter(t *testing.T) {
	r := newRepoTest()

	r.insertCustomer(t, newCustomer("c-03", "Meera", 25000, 1, "2023-01-01T00:00:00Z"))
	r.insertCustomer(t, newCustomer("c-01", "Aisha", 12000, 2, "2024-01-01T00:00:00Z"))
	r.insertCustomer(t, newCustomer("c-02", "Rahul", 3500, 5, "2024-06-01T00:00:00Z"))

	ctx := r.provider.Readonly(newContext())
	filter := rawFilter{where: "total_spend > ?", args: []interface{}{int64(10000)}}

	count, err := r.customer.CountCustomers(ctx, filter)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	ids, err := r.customer.SelectCustomerIDs(ctx, filter)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"c-01", "c-03"}, ids)

	ids, err = r.customer.SelectCustomerIDs(ctx, rawFilter{where: "1 = 0"})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ids))

	page, err := r.customer.ScanCustomers(ctx, "c-01", 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(page))
	assert.Equal(t, "c-02", page[0].ID)

	visits, err := r.customer.CountCustomersByVisits(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, []VisitsCount{
		{Visits: 1, Count: 1},
		{Visits: 2, Count: 1},
		{Visits: 5, Count: 1},
	}, visits)
}

func TestCustomer_Search(t *testing.T) {
	r := newRepoTest()

	aisha := newCustomer("c-01", "Aisha", 0, 0, "2024-01-01T00:00:00Z")
	aisha.Email = newNullString("aisha@example.com")
	r.insertCustomer(t, aisha)

	rahul := newCustomer("c-02", "Rahul_K", 0, 0, "2024-01-01T00:00:00Z")
	rahul.CreatedAt = newTime("2024-01-03T00:00:00Z")
	r.insertCustomer(t, rahul)

	ctx := r.provider.Readonly(newContext())

	result, err := r.customer.SearchCustomers(ctx, "EXAMPLE", 20)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(result))
	assert.Equal(t, "c-01", result[0].ID)

	// underscore is matched literally
	result, err = r.customer.SearchCustomers(ctx, "l_k", 20)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(result))
	assert.Equal(t, "c-02", result[0].ID)

	result, err = r.customer.SearchCustomers(ctx, "", 20)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, "c-02", result[0].ID)
}

func TestOrder_Insert_And_Aggregates(t *testing.T) {
	r := newRepoTest()
	r.insertCustomer(t, newCustomer("c-01", "Aisha", 0, 0, "2024-01-01T00:00:00Z"))

	order := model.Order{
		ID:         "o-01",
		CustomerID: "c-01",
		Amount:     1500,
		CreatedAt:  newTime("2024-03-01T10:00:00Z"),
	}

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		inserted, err := r.order.InsertOrderIfAbsent(ctx, order)
		assert.Equal(t, true, inserted)
		if err != nil {
			return err
		}

		inserted, err = r.order.InsertOrderIfAbsent(ctx, order)
		assert.Equal(t, false, inserted)
		if err != nil {
			return err
		}

		inserted, err = r.order.InsertOrderIfAbsent(ctx, model.Order{
			ID:         "o-02",
			CustomerID: "c-01",
			Amount:     2500,
			CreatedAt:  newTime("2024-03-02T23:59:00Z"),
		})
		assert.Equal(t, true, inserted)
		return err
	})
	assert.Equal(t, nil, err)

	// unknown customer violates the foreign key
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := r.order.InsertOrderIfAbsent(ctx, model.Order{
			ID:         "o-03",
			CustomerID: "c-unknown",
			Amount:     100,
			CreatedAt:  newTime("2024-03-02T00:00:00Z"),
		})
		return err
	})
	assert.NotEqual(t, nil, err)

	ctx := r.provider.Readonly(newContext())

	totals, err := r.order.GetOrderTotals(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, OrderTotals{Count: 2, Amount: 4000}, totals)

	days, err := r.order.SumAmountByDay(ctx, newTime("2024-03-02T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, []DailyAmount{{Day: "2024-03-02", Amount: 2500}}, days)
}

func TestCampaign_Insert_List(t *testing.T) {
	r := newRepoTest()
	r.insertCampaign(t, "camp-01")

	ctx := r.provider.Readonly(newContext())

	campaign, err := r.campaign.GetCampaign(ctx, "camp-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.Campaign{
		ID:              "camp-01",
		Name:            "campaign camp-01",
		SegmentID:       "segment-camp-01",
		MessageTemplate: "hello",
		CreatedBy:       "tester",
		CreatedAt:       newTime("2024-01-02T00:00:00Z"),
	}, campaign)

	campaigns, err := r.campaign.ListCampaigns(ctx, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.Campaign{campaign}, campaigns)

	count, err := r.campaign.CountCampaigns(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	_, err = r.campaign.GetCampaign(ctx, "camp-02")
	assert.Equal(t, ErrNotFound, err)
}

func TestDeliveryLog_Conditional_Update(t *testing.T) {
	r := newRepoTest()
	r.insertCustomer(t, newCustomer("c-01", "Aisha", 0, 0, "2024-01-01T00:00:00Z"))
	r.insertCustomer(t, newCustomer("c-02", "Rahul", 0, 0, "2024-01-01T00:00:00Z"))
	r.insertCampaign(t, "camp-01")

	pending := func(id string, customerID string) model.DeliveryLog {
		return model.DeliveryLog{
			ID:         id,
			CampaignID: "camp-01",
			CustomerID: customerID,
			Status:     model.DeliveryStatusPending,
			Message:    "hello",
			UpdatedAt:  newTime("2024-01-03T00:00:00Z"),
		}
	}

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		return r.deliveryLog.InsertDeliveryLogs(ctx, []model.DeliveryLog{
			pending("log-01", "c-01"),
			pending("log-02", "c-02"),
		})
	})
	assert.Equal(t, nil, err)

	sent := DeliveryResult{
		CampaignID:  "camp-01",
		CustomerID:  "c-01",
		Status:      model.DeliveryStatusSent,
		VendorMsgID: newNullString("v_01"),
		UpdatedAt:   newTime("2024-01-03T00:00:05Z"),
	}

	//---------------------------------------
	// First receipt wins
	//---------------------------------------
	var updated bool
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		updated, err = r.deliveryLog.UpdatePendingDeliveryLog(ctx, sent)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, updated)

	//---------------------------------------
	// Later receipt is a no-op
	//---------------------------------------
	failed := sent
	failed.Status = model.DeliveryStatusFailed
	failed.Error = newNullString("late failure")
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		updated, err = r.deliveryLog.UpdatePendingDeliveryLog(ctx, failed)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, updated)

	ctx := r.provider.Readonly(newContext())

	log, err := r.deliveryLog.GetDeliveryLog(ctx, "camp-01", "c-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.DeliveryStatusSent, log.Status)
	assert.Equal(t, newNullString("v_01"), log.VendorMsgID)
	assert.Equal(t, false, log.Error.Valid)

	logs, err := r.deliveryLog.ListDeliveryLogs(ctx, "camp-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(logs))

	counts, err := r.deliveryLog.CountByCampaignStatus(ctx, []string{"camp-01"})
	assert.Equal(t, nil, err)
	assert.ElementsMatch(t, []CampaignStatusCount{
		{CampaignID: "camp-01", Status: model.DeliveryStatusSent, Count: 1},
		{CampaignID: "camp-01", Status: model.DeliveryStatusPending, Count: 1},
	}, counts)

	byStatus, err := r.deliveryLog.CountByStatus(ctx)
	assert.Equal(t, nil, err)
	assert.ElementsMatch(t, []StatusCount{
		{Status: model.DeliveryStatusSent, Count: 1},
		{Status: model.DeliveryStatusPending, Count: 1},
	}, byStatus)

	byDay, err := r.deliveryLog.CountByDayStatus(ctx, newTime("2024-01-01T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.ElementsMatch(t, []DailyStatusCount{
		{Day: "2024-01-03", Status: model.DeliveryStatusSent, Count: 1},
		{Day: "2024-01-03", Status: model.DeliveryStatusPending, Count: 1},
	}, byDay)

	// unknown row
	err = r.provider.Transact(newContext(), func(ctx context.Context) error {
		unknown := sent
		unknown.CustomerID = "c-unknown"
		var err error
		updated, err = r.deliveryLog.UpdatePendingDeliveryLog(ctx, unknown)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, updated)
}

func TestDeliveryLog_Unique_Campaign_Customer(t *testing.T) {
	r := newRepoTest()
	r.insertCustomer(t, newCustomer("c-01", "Aisha", 0, 0, "2024-01-01T00:00:00Z"))
	r.insertCampaign(t, "camp-01")

	log := model.DeliveryLog{
		ID:         "log-01",
		CampaignID: "camp-01",
		CustomerID: "c-01",
		Status:     model.DeliveryStatusPending,
		Message:    "hello",
		UpdatedAt:  newTime("2024-01-03T00:00:00Z"),
	}
	dup := log
	dup.ID = "log-02"

	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		return r.deliveryLog.InsertDeliveryLogs(ctx, []model.DeliveryLog{log, dup})
	})
	assert.NotEqual(t, nil, err)

	logs, err := r.deliveryLog.ListDeliveryLogs(r.provider.Readonly(newContext()), "camp-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(logs))
}
