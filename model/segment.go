package model

import "time"

// Segment stores the rule tree exactly as it was submitted
type Segment struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	RulesJSON string    `db:"rules_json"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}
