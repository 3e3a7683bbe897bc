package app

import (
	"context"
	"github.com/QuangTung97/minicrm/model"
	"strings"
)

// Search limits
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// SearchCustomers matches query case-insensitively against name and email, newest first
func (a *App) SearchCustomers(ctx context.Context, query string, limit int) ([]model.Customer, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	ctx = a.Provider.Readonly(ctx)
	return a.CustomerRepo.SearchCustomers(ctx, strings.TrimSpace(query), uint64(limit))
}
