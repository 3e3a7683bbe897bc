package campaign

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/minicrm/model"
	"github.com/QuangTung97/minicrm/pkg/metrics"
	"github.com/QuangTung97/minicrm/pkg/otellib"
	"github.com/QuangTung97/minicrm/repository"
	"github.com/QuangTung97/minicrm/service/delivery"
	"github.com/QuangTung97/minicrm/service/rules"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"strings"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out campaign_mocks_test.go . Selector
//go:generate moq -out dispatcher_mocks_test.go -pkg campaign ../delivery Dispatcher

// IService ...
type IService interface {
	PreviewAudience(ctx context.Context, group rules.Group) (int64, error)
	CreateCampaign(ctx context.Context, input Input) (Output, error)
	ListCampaigns(ctx context.Context) ([]Summary, error)
	GetCampaign(ctx context.Context, id string) (Detail, error)
}

// ErrInvalidInput ...
var ErrInvalidInput = errors.New("campaign: invalid input")

// Input ...
type Input struct {
	Name     string
	Rules    rules.Group
	Template string
	OwnerID  string
}

// Output ...
type Output struct {
	SegmentID    string `json:"segmentId"`
	CampaignID   string `json:"campaignId"`
	AudienceSize int    `json:"audienceSize"`

	// Enqueued is the number of send events accepted by the dispatcher
	Enqueued int `json:"enqueued"`

	// DispatchFailed entries stay PENDING
	DispatchFailed int `json:"dispatchFailed"`
}

// Summary of a campaign with its delivery counts
type Summary struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SegmentID       string    `json:"segmentId"`
	MessageTemplate string    `json:"messageTemplate"`
	CreatedBy       string    `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`

	AudienceSize int64 `json:"audienceSize"`
	Sent         int64 `json:"sent"`
	Failed       int64 `json:"failed"`
	Pending      int64 `json:"pending"`
}

// Detail ...
type Detail struct {
	Summary
	Logs []model.DeliveryLog `json:"logs"`
}

// Selector selects the audience inside the caller's repository context
type Selector interface {
	Select(ctx context.Context, pred rules.Predicate) ([]string, error)
	Preview(ctx context.Context, group rules.Group) (int64, error)
}

const listLimit = 100

// campaign names carry the creation time the way toISOString prints it
const nameTimeLayout = "2006-01-02T15:04:05.000Z"

type serviceOptions struct {
	newID func() string
	now   func() time.Time
}

// Option ...
type Option func(opts *serviceOptions)

// WithIDGenerator ...
func WithIDGenerator(newID func() string) Option {
	return func(opts *serviceOptions) {
		opts.newID = newID
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(opts *serviceOptions) {
		opts.now = now
	}
}

// Service materializes campaigns
type Service struct {
	provider     repository.Provider
	segmentRepo  repository.Segment
	campaignRepo repository.Campaign
	logRepo      repository.DeliveryLog
	selector     Selector
	dispatcher   delivery.Dispatcher

	opts serviceOptions
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	segmentRepo repository.Segment,
	campaignRepo repository.Campaign,
	logRepo repository.DeliveryLog,
	selector Selector,
	dispatcher delivery.Dispatcher,
	options ...Option,
) *Service {
	opts := serviceOptions{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, fn := range options {
		fn(&opts)
	}

	return &Service{
		provider:     provider,
		segmentRepo:  segmentRepo,
		campaignRepo: campaignRepo,
		logRepo:      logRepo,
		selector:     selector,
		dispatcher:   dispatcher,

		opts: opts,
	}
}

func (i Input) validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(i.Template) == "" {
		return fmt.Errorf("%w: message template is required", ErrInvalidInput)
	}
	if err := rules.Validate(i.Rules); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// PreviewAudience counts the customers matching the rules
func (s *Service) PreviewAudience(ctx context.Context, group rules.Group) (int64, error) {
	if err := rules.Validate(group); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return s.selector.Preview(ctx, group)
}

// CreateCampaign writes segment, campaign and one PENDING delivery log per customer in one transaction,
// then dispatches the send events
func (s *Service) CreateCampaign(ctx context.Context, input Input) (Output, error) {
	if err := input.validate(); err != nil {
		return Output{}, err
	}

	rulesJSON, err := rules.Marshal(input.Rules)
	if err != nil {
		return Output{}, err
	}

	now := s.opts.now().UTC().Truncate(time.Microsecond)
	pred := rules.Compile(input.Rules, now)

	segment := model.Segment{
		ID:        s.opts.newID(),
		Name:      input.Name,
		RulesJSON: rulesJSON,
		CreatedBy: input.OwnerID,
		CreatedAt: now,
	}
	campaign := model.Campaign{
		ID:              s.opts.newID(),
		Name:            input.Name + " - " + now.Format(nameTimeLayout),
		SegmentID:       segment.ID,
		MessageTemplate: input.Template,
		CreatedBy:       input.OwnerID,
		CreatedAt:       now,
	}

	var customerIDs []string
	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := s.segmentRepo.InsertSegment(ctx, segment); err != nil {
			return err
		}
		if err := s.campaignRepo.InsertCampaign(ctx, campaign); err != nil {
			return err
		}

		ids, err := s.selector.Select(ctx, pred)
		if err != nil {
			return err
		}

		logs := make([]model.DeliveryLog, 0, len(ids))
		for _, customerID := range ids {
			logs = append(logs, model.DeliveryLog{
				ID:         s.opts.newID(),
				CampaignID: campaign.ID,
				CustomerID: customerID,
				Status:     model.DeliveryStatusPending,
				Message:    input.Template,
				UpdatedAt:  now,
			})
		}
		if err := s.logRepo.InsertDeliveryLogs(ctx, logs); err != nil {
			return err
		}

		customerIDs = ids
		return nil
	})
	if err != nil {
		return Output{}, err
	}

	output := Output{
		SegmentID:    segment.ID,
		CampaignID:   campaign.ID,
		AudienceSize: len(customerIDs),
	}

	logger := otellib.Extract(ctx)
	for _, customerID := range customerIDs {
		err := s.dispatcher.Dispatch(ctx, delivery.SendEvent{
			CampaignID:      campaign.ID,
			CustomerID:      customerID,
			MessageTemplate: input.Template,
		})
		if err != nil {
			output.DispatchFailed++
			metrics.DispatchFailures.Inc()
			logger.Error("Dispatch send event failed",
				zap.String("campaign_id", campaign.ID),
				zap.String("customer_id", customerID),
				zap.Error(err),
			)
			continue
		}
		output.Enqueued++
	}
	return output, nil
}

func newSummary(c model.Campaign) Summary {
	return Summary{
		ID:              c.ID,
		Name:            c.Name,
		SegmentID:       c.SegmentID,
		MessageTemplate: c.MessageTemplate,
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
	}
}

func (s *Summary) addCount(status model.DeliveryStatus, count int64) {
	s.AudienceSize += count
	switch status {
	case model.DeliveryStatusSent:
		s.Sent += count
	case model.DeliveryStatusFailed:
		s.Failed += count
	case model.DeliveryStatusPending:
		s.Pending += count
	}
}

// ListCampaigns returns the newest campaigns with their delivery counts
func (s *Service) ListCampaigns(ctx context.Context) ([]Summary, error) {
	ctx = s.provider.Readonly(ctx)

	campaigns, err := s.campaignRepo.ListCampaigns(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	counts, err := s.logRepo.CountByCampaignStatus(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(campaigns))
	index := map[string]int{}
	for i, c := range campaigns {
		summaries = append(summaries, newSummary(c))
		index[c.ID] = i
	}
	for _, count := range counts {
		i, ok := index[count.CampaignID]
		if !ok {
			continue
		}
		summaries[i].addCount(count.Status, count.Count)
	}
	return summaries, nil
}

// GetCampaign returns repository.ErrNotFound for an unknown id
func (s *Service) GetCampaign(ctx context.Context, id string) (Detail, error) {
	ctx = s.provider.Readonly(ctx)

	c, err := s.campaignRepo.GetCampaign(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	logs, err := s.logRepo.ListDeliveryLogs(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	detail := Detail{
		Summary: newSummary(c),
		Logs:    logs,
	}
	for _, l := range logs {
		detail.addCount(l.Status, 1)
	}
	return detail, nil
}
