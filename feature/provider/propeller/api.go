package propeller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/carlmjohnson/requests"
)

const (
	defaultBaseURL = "https://ssp-api.propellerads.com/v5/"
	requestTimeout = 30 * time.Second
)

// api is the PropellerAds SSP v5 HTTP client.
type api struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newAPI(apiKey, baseURL string) *api {
	return &api{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (a *api) builder(endpoint string) *requests.Builder {
	return requests.
		URL(a.baseURL).
		Client(a.http).
		Path(endpoint).
		Header("Authorization", "Bearer "+a.apiKey)
}

// campaignsResponse is the adv/campaigns wire shape.
type campaignsResponse struct {
	Result []campaignPayload `json:"result"`
}

type campaignPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TargetURL string `json:"target_url"`
}

// campaigns lists non-archived campaigns in the given statuses.
func (a *api) campaigns(ctx context.Context, statuses []Status) ([]campaignPayload, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, strconv.Itoa(int(s)))
	}

	var response campaignsResponse
	err := a.builder("adv/campaigns").
		Param("is_archived", "0").
		Param("status[]", values...).
		ToJSON(&response).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("propellerads: listing campaigns: %w", err)
	}
	return response.Result, nil
}

// statisticsRequest is the adv/statistics request body.
type statisticsRequest struct {
	GroupBy     string `json:"group_by"`
	DayFrom     string `json:"day_from"`
	DayTo       string `json:"day_to"`
	TZ          string `json:"tz"`
	CampaignIDs []int  `json:"campaign_id"`
}

// statisticsRow is one grouped statistics entry.
type statisticsRow struct {
	CampaignID int     `json:"campaign_id"`
	Money      float64 `json:"money"`
}

// statistics fetches grouped spend statistics.
func (a *api) statistics(ctx context.Context, request statisticsRequest) ([]statisticsRow, error) {
	var rows []statisticsRow

	err := a.builder("adv/statistics").
		BodyJSON(&request).
		ToJSON(&rows).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("propellerads: fetching statistics: %w", err)
	}
	return rows, nil
}
