package propeller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cost-sync/feature/provider"
)

// Status is a PropellerAds campaign status.
type Status int

const (
	StatusDraft             Status = 1
	StatusModerationPending Status = 2
	StatusRejected          Status = 3
	StatusReady             Status = 4
	StatusTestRun           Status = 5
	StatusWorking           Status = 6
	StatusPaused            Status = 7
	StatusStopped           Status = 8
	StatusCompleted         Status = 9
)

// listedStatuses are the statuses whose campaigns can carry reconcilable
// spend. Draft and moderation states never served traffic.
var listedStatuses = []Status{StatusWorking, StatusPaused, StatusStopped, StatusCompleted}

// Provider is the PropellerAds adapter. It implements provider.Provider
// and owns the cost field of every campaign it lists.
type Provider struct {
	name    string
	api     *api
	catalog provider.Catalog
}

// Option adjusts a Provider.
type Option func(*Provider)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(p *Provider) {
		p.api.baseURL = baseURL
	}
}

// New returns a PropellerAds provider registered under name.
func New(name, apiKey string, opts ...Option) *Provider {
	p := &Provider{
		name: name,
		api:  newAPI(apiKey, defaultBaseURL),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the registry name of this provider.
func (p *Provider) Name() string {
	return p.name
}

// ListCampaigns fetches and caches all reconcilable campaigns. The
// upstream API is hit once per provider lifetime; a failed fetch leaves
// the cache empty for retry on the next run.
func (p *Provider) ListCampaigns(ctx context.Context) (map[string]*provider.Campaign, error) {
	campaigns, err := p.catalog.Load(ctx, func(ctx context.Context) (map[string]*provider.Campaign, error) {
		payload, err := p.api.campaigns(ctx, listedStatuses)
		if err != nil {
			return nil, err
		}

		result := make(map[string]*provider.Campaign, len(payload))
		for _, c := range payload {
			id := strconv.Itoa(c.ID)
			result[id] = &provider.Campaign{
				Provider: p.name,
				ID:       id,
				URL:      c.TargetURL,
				Name:     c.Name,
			}
		}
		return result, nil
	})
	if err != nil {
		return nil, &provider.ListError{Provider: p.name, Err: err}
	}
	return campaigns, nil
}

// Match returns every cached campaign whose landing URL contains
// destinationURL as a substring.
func (p *Provider) Match(ctx context.Context, destinationURL string) ([]*provider.Campaign, error) {
	campaigns, err := p.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*provider.Campaign
	for _, campaign := range campaigns {
		if strings.Contains(campaign.URL, destinationURL) {
			matched = append(matched, campaign)
		}
	}
	return matched, nil
}

// FetchCost fetches aggregate spend for the given campaign IDs over the
// window, stores each reported value on the cached campaign, and
// returns cost by ID for every cached campaign with a cost set. IDs
// absent from the statistics keep their prior cost state.
func (p *Provider) FetchCost(ctx context.Context, ids []string, window provider.Window, timezone int) (map[string]float64, error) {
	campaigns, err := p.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	numericIDs := make([]int, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("propellerads: non-numeric campaign id %q", id)
		}
		numericIDs = append(numericIDs, n)
	}

	rows, err := p.api.statistics(ctx, statisticsRequest{
		GroupBy:     "campaign_id",
		DayFrom:     window.From.Format("2006-01-02 15:04:05"),
		DayTo:       window.To.Format("2006-01-02 15:04:05"),
		TZ:          formatTimezone(timezone),
		CampaignIDs: numericIDs,
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if campaign, ok := campaigns[strconv.Itoa(row.CampaignID)]; ok {
			campaign.SetCost(row.Money)
		}
	}

	costs := make(map[string]float64)
	for id, campaign := range campaigns {
		if cost, ok := campaign.Cost(); ok {
			costs[id] = cost
		}
	}
	return costs, nil
}

// formatTimezone renders a whole-hour UTC offset the way the statistics
// endpoint expects it, e.g. +0300 or -0500.
func formatTimezone(timezone int) string {
	sign := "-"
	if timezone > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%02d00", sign, abs(timezone))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
