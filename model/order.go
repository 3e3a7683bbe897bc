package model

import "time"

// Order is append-only, never updated after creation
type Order struct {
	ID         string    `db:"id"`
	CustomerID string    `db:"customer_id"`
	Amount     int64     `db:"amount"`
	CreatedAt  time.Time `db:"created_at"`
}
