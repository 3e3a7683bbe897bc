package model

import (
	"database/sql"
	"time"
)

// Customer ...
type Customer struct {
	ID    string         `db:"id"`
	Name  string         `db:"name"`
	Email sql.NullString `db:"email"`
	Phone sql.NullString `db:"phone"`

	TotalSpend   int64     `db:"total_spend"`
	Visits       int64     `db:"visits"`
	LastActiveAt time.Time `db:"last_active_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
