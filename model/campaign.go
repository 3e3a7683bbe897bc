package model

import "time"

// Campaign ...
type Campaign struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	SegmentID       string    `db:"segment_id"`
	MessageTemplate string    `db:"message_template"`
	CreatedBy       string    `db:"created_by"`
	CreatedAt       time.Time `db:"created_at"`
}
