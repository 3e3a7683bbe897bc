package repository

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
)

// Segment ...
type Segment interface {
	InsertSegment(ctx context.Context, segment model.Segment) error
	GetSegment(ctx context.Context, id string) (model.Segment, error)
}

type segmentRepo struct {
}

var _ Segment = &segmentRepo{}

// NewSegment ...
func NewSegment() Segment {
	return &segmentRepo{}
}

func (r *segmentRepo) InsertSegment(ctx context.Context, segment model.Segment) error {
	query := `
INSERT INTO segment (id, name, rules_json, created_by, created_at)
VALUES (:id, :name, :rules_json, :created_by, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, segment)
	return err
}

func (r *segmentRepo) GetSegment(ctx context.Context, id string) (model.Segment, error) {
	query := `SELECT id, name, rules_json, created_by, created_at FROM segment WHERE id = ?`

	var result model.Segment
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err != nil {
		return model.Segment{}, wrapNotFound(err)
	}
	return result, nil
}
