package binom

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"

	"cost-sync/feature/tracker"
)

const requestTimeout = 30 * time.Second

// Client talks to a Binom tracker instance. It implements
// tracker.Client.
type Client struct {
	domain string
	apiKey string
	http   *http.Client
}

// NewClient returns a client for the tracker at trackingDomain.
// A trailing slash on the domain is ignored.
func NewClient(trackingDomain, apiKey string) *Client {
	return &Client{
		domain: strings.TrimRight(trackingDomain, "/"),
		apiKey: apiKey,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

// TrackingDomain returns the tracker's base URL.
func (c *Client) TrackingDomain() string {
	return c.domain
}

// v1 returns a request builder for the v1 API, which lives on the
// tracking domain root and dispatches on the "page" query parameter.
func (c *Client) v1(page string) *requests.Builder {
	return requests.
		URL(c.domain).
		Client(c.http).
		Param("page", page).
		Param("api_key", c.apiKey)
}

// v2 returns a request builder for the v2 API, which lives on arm.php
// and dispatches on the "action" query parameter.
func (c *Client) v2(action string) *requests.Builder {
	return requests.
		URL(c.domain).
		Client(c.http).
		Path("arm.php").
		Param("action", action).
		Param("api_key", c.apiKey)
}

// ListCampaigns returns all tracker campaigns in listing order.
func (c *Client) ListCampaigns(ctx context.Context) ([]tracker.Campaign, error) {
	var payload []campaignPayload

	err := c.v2("campaign@get_all").
		ToJSON(&payload).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("binom: listing campaigns: %w", err)
	}

	campaigns := make([]tracker.Campaign, 0, len(payload))
	for _, p := range payload {
		campaigns = append(campaigns, p.campaign())
	}
	return campaigns, nil
}

// GetCampaign returns a single tracker campaign by ID.
func (c *Client) GetCampaign(ctx context.Context, campaignID int) (tracker.Campaign, error) {
	var payload campaignPayload

	err := c.v2("campaign@get").
		Param("id", strconv.Itoa(campaignID)).
		ToJSON(&payload).
		Fetch(ctx)
	if err != nil {
		return tracker.Campaign{}, fmt.Errorf("binom: fetching campaign %d: %w", campaignID, err)
	}

	return payload.campaign(), nil
}

// UpdateCost writes a new cost for one campaign via the v1 cost-update
// page.
func (c *Client) UpdateCost(ctx context.Context, campaignID int, costType tracker.CostType, date tracker.DatePreset, timezone int, cost float64) (tracker.UpdateResponse, error) {
	var payload updateCostPayload

	err := c.v1("save_update_costs").
		Param("camp_id", strconv.Itoa(campaignID)).
		Param("type", strconv.Itoa(int(costType))).
		Param("date", strconv.Itoa(int(date))).
		Param("timezone", strconv.Itoa(timezone)).
		Param("cost", strconv.FormatFloat(cost, 'f', -1, 64)).
		ToJSON(&payload).
		Fetch(ctx)
	if err != nil {
		return tracker.UpdateResponse{}, fmt.Errorf("binom: updating cost for campaign %d: %w", campaignID, err)
	}

	return tracker.UpdateResponse{
		Updated:  payload.UpdateStatus.value,
		Warnings: payload.Warning,
	}, nil
}
