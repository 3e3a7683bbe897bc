package delivery

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/minicrm/pkg/streamlog"
	"github.com/QuangTung97/minicrm/pkg/util"
	"github.com/QuangTung97/minicrm/repository"
	"github.com/QuangTung97/minicrm/service/vendor"
)

// ApplyResult counts the outcome of applying a batch of receipts
type ApplyResult struct {
	Applied int

	// Duplicates are receipts for entries already resolved, dropped by the PENDING guard
	Duplicates int
}

// ReceiptApplier writes receipts to the delivery log, the only writer of terminal statuses
type ReceiptApplier struct {
	provider repository.Provider
	repo     repository.DeliveryLog
	timer    util.Timer
}

// NewReceiptApplier ...
func NewReceiptApplier(provider repository.Provider, repo repository.DeliveryLog, timer util.Timer) *ReceiptApplier {
	return &ReceiptApplier{
		provider: provider,
		repo:     repo,
		timer:    timer,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Apply updates every receipt in one transaction, a failure rolls back the whole batch
func (a *ReceiptApplier) Apply(ctx context.Context, receipts []Receipt) (ApplyResult, error) {
	if len(receipts) == 0 {
		return ApplyResult{}, nil
	}

	now := a.timer.Now()

	var result ApplyResult
	err := a.provider.Transact(ctx, func(ctx context.Context) error {
		result = ApplyResult{}
		for _, r := range receipts {
			updated, err := a.repo.UpdatePendingDeliveryLog(ctx, repository.DeliveryResult{
				CampaignID:  r.CampaignID,
				CustomerID:  r.CustomerID,
				Status:      r.Status,
				Error:       nullString(r.Error),
				VendorMsgID: nullString(r.VendorMsgID),
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
			if updated {
				result.Applied++
			} else {
				result.Duplicates++
			}
		}
		return nil
	})
	if err != nil {
		return ApplyResult{}, err
	}
	return result, nil
}

// StoreReceiptSink applies a receipt directly, the inline mode receipt producer
type StoreReceiptSink struct {
	applier *ReceiptApplier
}

var _ ReceiptSink = &StoreReceiptSink{}

// NewStoreReceiptSink ...
func NewStoreReceiptSink(applier *ReceiptApplier) *StoreReceiptSink {
	return &StoreReceiptSink{
		applier: applier,
	}
}

// Publish ...
func (s *StoreReceiptSink) Publish(ctx context.Context, receipt Receipt) error {
	receipt, err := receipt.Normalize()
	if err != nil {
		return err
	}
	_, err = s.applier.Apply(ctx, []Receipt{receipt})
	return err
}

// LogReceiptSink is the receipt producer, it appends to the receipts stream
type LogReceiptSink struct {
	log streamlog.Log
}

var _ ReceiptSink = &LogReceiptSink{}

// NewLogReceiptSink ...
func NewLogReceiptSink(log streamlog.Log) *LogReceiptSink {
	return &LogReceiptSink{
		log: log,
	}
}

// Publish ...
func (s *LogReceiptSink) Publish(ctx context.Context, receipt Receipt) error {
	receipt, err := receipt.Normalize()
	if err != nil {
		return err
	}
	data, err := encodeReceipt(receipt)
	if err != nil {
		return err
	}
	_, err = s.log.Append(ctx, StreamReceipts, data)
	return err
}

// ReceiptCallback lets a vendor simulator report its outcomes to the sink
func ReceiptCallback(sink ReceiptSink) vendor.Callback {
	return func(ctx context.Context, req vendor.Request, resp vendor.Response) error {
		return sink.Publish(ctx, Receipt{
			CampaignID:  req.CampaignID,
			CustomerID:  req.CustomerID,
			VendorMsgID: resp.VendorMsgID,
			Status:      resp.Status,
			Error:       resp.Error,
			Message:     req.Message,
		})
	}
}
