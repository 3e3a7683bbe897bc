package app

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/minicrm/model"
	"github.com/google/uuid"
	"time"
)

type seedCustomer struct {
	name         string
	email        string
	totalSpend   int64
	visits       int64
	inactiveDays int
}

var seedCustomers = []seedCustomer{
	{name: "Aisha", email: "aisha@example.com", totalSpend: 12000, visits: 2, inactiveDays: 200},
	{name: "Rahul", email: "rahul@example.com", totalSpend: 3500, visits: 5, inactiveDays: 20},
	{name: "Meera", email: "meera@example.com", totalSpend: 25000, visits: 1, inactiveDays: 380},
}

var seedOrderAmounts = []int64{1500, 2500}

// Seed writes the demo customers with two orders each in one transaction.
// Orders are inserted as history, the customer totals are taken as given.
func (a *App) Seed(ctx context.Context) ([]model.Customer, error) {
	now := a.Timer.Now().UTC().Truncate(time.Microsecond)

	customers := make([]model.Customer, 0, len(seedCustomers))
	for _, c := range seedCustomers {
		customers = append(customers, model.Customer{
			ID:           uuid.NewString(),
			Name:         c.name,
			Email:        sql.NullString{String: c.email, Valid: true},
			TotalSpend:   c.totalSpend,
			Visits:       c.visits,
			LastActiveAt: now.AddDate(0, 0, -c.inactiveDays),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	err := a.Provider.Transact(ctx, func(ctx context.Context) error {
		for _, c := range customers {
			if _, err := a.CustomerRepo.InsertCustomerIfAbsent(ctx, c); err != nil {
				return err
			}
			for _, amount := range seedOrderAmounts {
				_, err := a.OrderRepo.InsertOrderIfAbsent(ctx, model.Order{
					ID:         uuid.NewString(),
					CustomerID: c.ID,
					Amount:     amount,
					CreatedAt:  now,
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}
