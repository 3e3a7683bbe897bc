package ingestion

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/minicrm/model"
	"github.com/QuangTung97/minicrm/pkg/util"
	"github.com/QuangTung97/minicrm/repository"
	"time"
)

// Applier writes ingested entries to the store, replaying an entry is a no-op
type Applier struct {
	provider     repository.Provider
	customerRepo repository.Customer
	orderRepo    repository.Order
	timer        util.Timer
}

// NewApplier ...
func NewApplier(
	provider repository.Provider, customerRepo repository.Customer, orderRepo repository.Order, timer util.Timer,
) *Applier {
	return &Applier{
		provider:     provider,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		timer:        timer,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ApplyCustomer returns false when the customer already exists
func (a *Applier) ApplyCustomer(ctx context.Context, e CustomerEvent) (bool, error) {
	var created bool
	err := a.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		created, err = a.customerRepo.InsertCustomerIfAbsent(ctx, model.Customer{
			ID:           e.ID,
			Name:         e.Name,
			Email:        nullString(e.Email),
			Phone:        nullString(e.Phone),
			TotalSpend:   e.TotalSpend,
			Visits:       e.Visits,
			LastActiveAt: e.LastActiveAt,
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.CreatedAt,
		})
		return err
	})
	return created, err
}

// ApplyOrder inserts the order and updates the customer's aggregates in one transaction,
// the aggregates change only when the order row is new
func (a *Applier) ApplyOrder(ctx context.Context, e OrderEvent) (bool, error) {
	now := a.timer.Now().UTC().Truncate(time.Microsecond)

	var applied bool
	err := a.provider.Transact(ctx, func(ctx context.Context) error {
		inserted, err := a.orderRepo.InsertOrderIfAbsent(ctx, model.Order{
			ID:         e.ID,
			CustomerID: e.CustomerID,
			Amount:     e.Amount,
			CreatedAt:  e.CreatedAt,
		})
		if err != nil {
			return err
		}
		if !inserted {
			applied = false
			return nil
		}

		if err := a.customerRepo.ApplyOrder(ctx, e.CustomerID, e.Amount, now); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}
