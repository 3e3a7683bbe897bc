package repository

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
	"time"
)

// Customer ...
type Customer interface {
	// InsertCustomerIfAbsent returns false when a customer with the same id already existed
	InsertCustomerIfAbsent(ctx context.Context, customer model.Customer) (bool, error)

	GetCustomer(ctx context.Context, id string) (model.Customer, error)

	// ApplyOrder adds the amount to total spend, increments visits and sets last active
	ApplyOrder(ctx context.Context, customerID string, amount int64, activeAt time.Time) error

	CountCustomers(ctx context.Context, filter Filter) (int64, error)

	// SelectCustomerIDs returns matching ids ordered by id
	SelectCustomerIDs(ctx context.Context, filter Filter) ([]string, error)

	// ScanCustomers pages through all customers ordered by id, starting after afterID
	ScanCustomers(ctx context.Context, afterID string, limit uint64) ([]model.Customer, error)

	// SearchCustomers matches a case-insensitive substring of name or email, newest first
	SearchCustomers(ctx context.Context, query string, limit uint64) ([]model.Customer, error)

	CountCustomersByVisits(ctx context.Context) ([]VisitsCount, error)
}

type customerRepo struct {
}

var _ Customer = &customerRepo{}

// NewCustomer ...
func NewCustomer() Customer {
	return &customerRepo{}
}

const selectCustomerColumns = `
SELECT id, name, email, phone, total_spend, visits, last_active_at, created_at, updated_at
FROM customer
`

func (r *customerRepo) InsertCustomerIfAbsent(ctx context.Context, customer model.Customer) (bool, error) {
	query := `
INSERT INTO customer (id, name, email, phone, total_spend, visits, last_active_at, created_at, updated_at)
VALUES (:id, :name, :email, :phone, :total_spend, :visits, :last_active_at, :created_at, :updated_at)
ON DUPLICATE KEY UPDATE id = id
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, customer)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *customerRepo) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	query := selectCustomerColumns + `WHERE id = ?`

	var result model.Customer
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err != nil {
		return model.Customer{}, wrapNotFound(err)
	}
	return result, nil
}

func (r *customerRepo) ApplyOrder(ctx context.Context, customerID string, amount int64, activeAt time.Time) error {
	query := `
UPDATE customer
SET total_spend = total_spend + ?, visits = visits + 1, last_active_at = ?
WHERE id = ?
`
	result, err := GetTx(ctx).ExecContext(ctx, query, amount, activeAt, customerID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *customerRepo) CountCustomers(ctx context.Context, filter Filter) (int64, error) {
	where, args := filter.SQL()
	query := `SELECT COUNT(*) FROM customer WHERE ` + where

	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *customerRepo) SelectCustomerIDs(ctx context.Context, filter Filter) ([]string, error) {
	where, args := filter.SQL()
	query := `SELECT id FROM customer WHERE ` + where + ` ORDER BY id`

	var result []string
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

func (r *customerRepo) ScanCustomers(ctx context.Context, afterID string, limit uint64) ([]model.Customer, error) {
	query := selectCustomerColumns + `WHERE id > ? ORDER BY id LIMIT ?`

	var result []model.Customer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, afterID, limit)
	return result, err
}

func (r *customerRepo) SearchCustomers(ctx context.Context, query string, limit uint64) ([]model.Customer, error) {
	var result []model.Customer
	if query == "" {
		err := GetReadonly(ctx).SelectContext(ctx, &result,
			selectCustomerColumns+`ORDER BY created_at DESC, id LIMIT ?`, limit)
		return result, err
	}

	pattern := containsPattern(query)
	sqlQuery := selectCustomerColumns + `
WHERE LOWER(name) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ?
ORDER BY created_at DESC, id LIMIT ?
`
	err := GetReadonly(ctx).SelectContext(ctx, &result, sqlQuery, pattern, pattern, limit)
	return result, err
}

func (r *customerRepo) CountCustomersByVisits(ctx context.Context) ([]VisitsCount, error) {
	query := `SELECT visits, COUNT(*) AS num FROM customer GROUP BY visits ORDER BY visits`

	var result []VisitsCount
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
