package repository

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
)

// Campaign ...
type Campaign interface {
	InsertCampaign(ctx context.Context, campaign model.Campaign) error
	GetCampaign(ctx context.Context, id string) (model.Campaign, error)

	// ListCampaigns returns the newest campaigns first
	ListCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error)

	CountCampaigns(ctx context.Context) (int64, error)
}

type campaignRepo struct {
}

var _ Campaign = &campaignRepo{}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignRepo{}
}

const selectCampaignColumns = `
SELECT id, name, segment_id, message_template, created_by, created_at
FROM campaign
`

func (r *campaignRepo) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (id, name, segment_id, message_template, created_by, created_at)
VALUES (:id, :name, :segment_id, :message_template, :created_by, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

func (r *campaignRepo) GetCampaign(ctx context.Context, id string) (model.Campaign, error) {
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, selectCampaignColumns+`WHERE id = ?`, id)
	if err != nil {
		return model.Campaign{}, wrapNotFound(err)
	}
	return result, nil
}

func (r *campaignRepo) ListCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error) {
	query := selectCampaignColumns + `ORDER BY created_at DESC, id LIMIT ?`

	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, limit)
	return result, err
}

func (r *campaignRepo) CountCampaigns(ctx context.Context) (int64, error) {
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, `SELECT COUNT(*) FROM campaign`)
	return count, err
}
