package provider

import (
	"context"
	"fmt"
	"time"
)

// Window is the inclusive date range a cost fetch covers.
type Window struct {
	From time.Time
	To   time.Time
}

// YesterdayWindow returns the previous calendar day relative to now
// shifted by the given whole-hour UTC offset: [00:00:00, 23:59:59] of
// the shifted clock's yesterday. The job runs shortly after local
// midnight and settles the day that just ended.
func YesterdayWindow(now time.Time, timezone int) Window {
	local := now.UTC().Add(time.Duration(timezone) * time.Hour)
	y := local.AddDate(0, 0, -1)
	from := time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
	return Window{
		From: from,
		To:   from.Add(24*time.Hour - time.Second),
	}
}

// Provider is the capability contract an advertising-network adapter
// implements. All transport and authentication detail is private to the
// implementation.
type Provider interface {
	// Name returns the registry name of this provider.
	Name() string

	// ListCampaigns returns all campaigns of this provider keyed by ID,
	// fetching from the upstream API only on the first call. On failure
	// the cache stays empty so a later run can retry from clean state.
	ListCampaigns(ctx context.Context) (map[string]*Campaign, error)

	// Match returns every campaign whose URL contains destinationURL as
	// a substring. Lists campaigns first if not yet cached.
	Match(ctx context.Context, destinationURL string) ([]*Campaign, error)

	// FetchCost fetches aggregate spend per campaign ID over the window
	// in the given whole-hour UTC offset, stores each fetched value on
	// the corresponding cached campaign, and returns cost by ID for
	// every cached campaign that has a cost set. IDs with no reported
	// stats keep their prior cost state.
	FetchCost(ctx context.Context, ids []string, window Window, timezone int) (map[string]float64, error)
}

// ListError reports a failed campaign listing. Fatal for the run:
// matching against a partial campaign list would silently under-report.
type ListError struct {
	Provider string
	Err      error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("provider %s: listing campaigns failed: %v", e.Provider, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// CostError reports a failed cost fetch. Fatal for the run: treating a
// failed fetch as zero spend would falsify the reconciled cost.
type CostError struct {
	Provider string
	Err      error
}

func (e *CostError) Error() string {
	return fmt.Sprintf("provider %s: cost fetch failed: %v", e.Provider, e.Err)
}

func (e *CostError) Unwrap() error {
	return e.Err
}
