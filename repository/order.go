package repository

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
	"time"
)

// Order ...
type Order interface {
	// InsertOrderIfAbsent returns false when the order id already existed
	InsertOrderIfAbsent(ctx context.Context, order model.Order) (bool, error)

	GetOrderTotals(ctx context.Context) (OrderTotals, error)

	// SumAmountByDay groups orders created at or after since by UTC day
	SumAmountByDay(ctx context.Context, since time.Time) ([]DailyAmount, error)
}

type orderRepo struct {
}

var _ Order = &orderRepo{}

// NewOrder ...
func NewOrder() Order {
	return &orderRepo{}
}

func (r *orderRepo) InsertOrderIfAbsent(ctx context.Context, order model.Order) (bool, error) {
	query := `
INSERT INTO orders (id, customer_id, amount, created_at)
VALUES (:id, :customer_id, :amount, :created_at)
ON DUPLICATE KEY UPDATE id = id
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, order)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *orderRepo) GetOrderTotals(ctx context.Context) (OrderTotals, error) {
	query := `SELECT COUNT(*) AS num, CAST(COALESCE(SUM(amount), 0) AS SIGNED) AS amount FROM orders`

	var result OrderTotals
	err := GetReadonly(ctx).GetContext(ctx, &result, query)
	return result, err
}

func (r *orderRepo) SumAmountByDay(ctx context.Context, since time.Time) ([]DailyAmount, error) {
	query := `
SELECT DATE_FORMAT(created_at, '%Y-%m-%d') AS day, CAST(SUM(amount) AS SIGNED) AS amount
FROM orders WHERE created_at >= ?
GROUP BY day ORDER BY day
`
	var result []DailyAmount
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, since)
	return result, err
}
