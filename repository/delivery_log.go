package repository

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
	"github.com/jmoiron/sqlx"
	"time"
)

// DeliveryLog ...
type DeliveryLog interface {
	// InsertDeliveryLogs bulk inserts logs in chunks
	InsertDeliveryLogs(ctx context.Context, logs []model.DeliveryLog) error

	// UpdatePendingDeliveryLog applies a terminal result only while the log is still PENDING,
	// returns false when the log is already terminal or does not exist
	UpdatePendingDeliveryLog(ctx context.Context, result DeliveryResult) (bool, error)

	GetDeliveryLog(ctx context.Context, campaignID string, customerID string) (model.DeliveryLog, error)
	ListDeliveryLogs(ctx context.Context, campaignID string) ([]model.DeliveryLog, error)

	CountByCampaignStatus(ctx context.Context, campaignIDs []string) ([]CampaignStatusCount, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)

	// CountByDayStatus groups logs updated at or after since by UTC day and status
	CountByDayStatus(ctx context.Context, since time.Time) ([]DailyStatusCount, error)
}

const deliveryLogInsertChunk = 1000

type deliveryLogRepo struct {
}

var _ DeliveryLog = &deliveryLogRepo{}

// NewDeliveryLog ...
func NewDeliveryLog() DeliveryLog {
	return &deliveryLogRepo{}
}

const selectDeliveryLogColumns = `
SELECT id, campaign_id, customer_id, status, message, error, vendor_msg_id, updated_at
FROM delivery_log
`

func (r *deliveryLogRepo) InsertDeliveryLogs(ctx context.Context, logs []model.DeliveryLog) error {
	query := `
INSERT INTO delivery_log (id, campaign_id, customer_id, status, message, error, vendor_msg_id, updated_at)
VALUES (:id, :campaign_id, :customer_id, :status, :message, :error, :vendor_msg_id, :updated_at)
`
	tx := GetTx(ctx)
	for len(logs) > 0 {
		n := len(logs)
		if n > deliveryLogInsertChunk {
			n = deliveryLogInsertChunk
		}

		_, err := tx.NamedExecContext(ctx, query, logs[:n])
		if err != nil {
			return err
		}
		logs = logs[n:]
	}
	return nil
}

func (r *deliveryLogRepo) UpdatePendingDeliveryLog(ctx context.Context, result DeliveryResult) (bool, error) {
	query := `
UPDATE delivery_log
SET status = ?, error = ?, vendor_msg_id = ?, updated_at = ?
WHERE campaign_id = ? AND customer_id = ? AND status = ?
`
	res, err := GetTx(ctx).ExecContext(ctx, query,
		result.Status, result.Error, result.VendorMsgID, result.UpdatedAt,
		result.CampaignID, result.CustomerID, model.DeliveryStatusPending,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *deliveryLogRepo) GetDeliveryLog(
	ctx context.Context, campaignID string, customerID string,
) (model.DeliveryLog, error) {
	query := selectDeliveryLogColumns + `WHERE campaign_id = ? AND customer_id = ?`

	var result model.DeliveryLog
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID, customerID)
	if err != nil {
		return model.DeliveryLog{}, wrapNotFound(err)
	}
	return result, nil
}

func (r *deliveryLogRepo) ListDeliveryLogs(ctx context.Context, campaignID string) ([]model.DeliveryLog, error) {
	query := selectDeliveryLogColumns + `WHERE campaign_id = ? ORDER BY customer_id`

	var result []model.DeliveryLog
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

func (r *deliveryLogRepo) CountByCampaignStatus(
	ctx context.Context, campaignIDs []string,
) ([]CampaignStatusCount, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT campaign_id, status, COUNT(*) AS num
FROM delivery_log WHERE campaign_id IN (?)
GROUP BY campaign_id, status
`, campaignIDs)
	if err != nil {
		return nil, err
	}

	var result []CampaignStatusCount
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

func (r *deliveryLogRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	query := `SELECT status, COUNT(*) AS num FROM delivery_log GROUP BY status`

	var result []StatusCount
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

func (r *deliveryLogRepo) CountByDayStatus(ctx context.Context, since time.Time) ([]DailyStatusCount, error) {
	query := `
SELECT DATE_FORMAT(updated_at, '%Y-%m-%d') AS day, status, COUNT(*) AS num
FROM delivery_log WHERE updated_at >= ?
GROUP BY day, status ORDER BY day
`
	var result []DailyStatusCount
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, since)
	return result, err
}
