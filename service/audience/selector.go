package audience

import (
	"context"
	"github.com/QuangTung97/minicrm/repository"
	"github.com/QuangTung97/minicrm/service/rules"
	"time"
)

type selectorOptions struct {
	inMemory bool
	pageSize uint64
	now      func() time.Time
}

func defaultSelectorOptions() selectorOptions {
	return selectorOptions{
		pageSize: 500,
		now:      time.Now,
	}
}

// Option ...
type Option func(opts *selectorOptions)

// WithInMemoryFilter scans customers page by page and evaluates the predicate in memory
// instead of pushing it down as a WHERE clause
func WithInMemoryFilter(pageSize uint64) Option {
	return func(opts *selectorOptions) {
		opts.inMemory = true
		if pageSize > 0 {
			opts.pageSize = pageSize
		}
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(opts *selectorOptions) {
		opts.now = now
	}
}

// Selector resolves a predicate to a set of customer ids.
// Reads use the transaction in ctx when there is one, so the result is a single snapshot
type Selector struct {
	provider     repository.Provider
	customerRepo repository.Customer
	opts         selectorOptions
}

// NewSelector ...
func NewSelector(
	provider repository.Provider, customerRepo repository.Customer, options ...Option,
) *Selector {
	opts := defaultSelectorOptions()
	for _, fn := range options {
		fn(&opts)
	}

	return &Selector{
		provider:     provider,
		customerRepo: customerRepo,
		opts:         opts,
	}
}

// Select returns the ids of matched customers, ordered by id
func (s *Selector) Select(ctx context.Context, pred rules.Predicate) ([]string, error) {
	ctx = s.provider.Readonly(ctx)

	if !s.opts.inMemory {
		return s.customerRepo.SelectCustomerIDs(ctx, pred)
	}

	var result []string
	err := s.scan(ctx, pred, func(id string) {
		result = append(result, id)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PreviewSize counts matched customers
func (s *Selector) PreviewSize(ctx context.Context, pred rules.Predicate) (int64, error) {
	ctx = s.provider.Readonly(ctx)

	if !s.opts.inMemory {
		return s.customerRepo.CountCustomers(ctx, pred)
	}

	var count int64
	err := s.scan(ctx, pred, func(string) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Preview compiles the tree with the current time then counts
func (s *Selector) Preview(ctx context.Context, group rules.Group) (int64, error) {
	return s.PreviewSize(ctx, rules.Compile(group, s.opts.now()))
}

func (s *Selector) scan(ctx context.Context, pred rules.Predicate, fn func(id string)) error {
	afterID := ""
	for {
		customers, err := s.customerRepo.ScanCustomers(ctx, afterID, s.opts.pageSize)
		if err != nil {
			return err
		}

		for _, c := range customers {
			if pred.Match(c) {
				fn(c.ID)
			}
		}

		if uint64(len(customers)) < s.opts.pageSize {
			return nil
		}
		afterID = customers[len(customers)-1].ID
	}
}
