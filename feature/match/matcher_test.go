package match

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cost-sync/feature/provider"
	"cost-sync/feature/tracker"
)

// fakeTracker serves a fixed campaign list.
type fakeTracker struct {
	domain    string
	campaigns []tracker.Campaign
	listErr   error
}

func (f *fakeTracker) ListCampaigns(ctx context.Context) ([]tracker.Campaign, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.campaigns, nil
}

func (f *fakeTracker) UpdateCost(ctx context.Context, campaignID int, costType tracker.CostType, date tracker.DatePreset, timezone int, cost float64) (tracker.UpdateResponse, error) {
	return tracker.UpdateResponse{}, nil
}

func (f *fakeTracker) TrackingDomain() string {
	return f.domain
}

// fakeProvider matches by substring containment over fixed campaigns.
type fakeProvider struct {
	name      string
	campaigns []*provider.Campaign
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) ListCampaigns(ctx context.Context) (map[string]*provider.Campaign, error) {
	byID := make(map[string]*provider.Campaign)
	for _, c := range f.campaigns {
		byID[c.ID] = c
	}
	return byID, nil
}

func (f *fakeProvider) Match(ctx context.Context, destinationURL string) ([]*provider.Campaign, error) {
	var matched []*provider.Campaign
	for _, c := range f.campaigns {
		if strings.Contains(c.URL, destinationURL) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeProvider) FetchCost(ctx context.Context, ids []string, window provider.Window, timezone int) (map[string]float64, error) {
	return nil, nil
}

func landing(key string) string {
	return fmt.Sprintf("https://x.com/?r=https://t.example/click.php?key=%s", key)
}

func TestCampaigns_EndToEnd(t *testing.T) {
	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 10, ClickKey: "abc"},
		},
	}

	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{
		{Provider: "net1", ID: "99", URL: landing("abc")},
	}})

	matches, index, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, 10, matches[0].TrackerCampaign.ID)
	assert.True(t, matches[0].Has("net1", "99"))
	assert.Equal(t, []string{"99"}, index.IDs("net1"))
}

func TestCampaigns_SkipsCampaignsWithoutClickKey(t *testing.T) {
	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 10, ClickKey: ""},
		},
	}

	// Provider campaign whose URL would match anything, proving the
	// skip happens before matching.
	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{
		{Provider: "net1", ID: "99", URL: "https://t.example/click.php?key="},
	}})

	matches, index, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, index)
}

func TestCampaigns_DropsZeroMatchCampaigns(t *testing.T) {
	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 10, ClickKey: "abc"},
			{ID: 11, ClickKey: "nothing-matches-this"},
		},
	}

	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{
		{Provider: "net1", ID: "99", URL: landing("abc")},
	}})

	matches, _, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 10, matches[0].TrackerCampaign.ID)
}

func TestCampaigns_PreservesTrackerListingOrder(t *testing.T) {
	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 3, ClickKey: "c"},
			{ID: 1, ClickKey: "a"},
			{ID: 2, ClickKey: "b"},
		},
	}

	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{
		{Provider: "net1", ID: "31", URL: landing("c")},
		{Provider: "net1", ID: "11", URL: landing("a")},
		{Provider: "net1", ID: "21", URL: landing("b")},
	}})

	matches, _, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)

	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.TrackerCampaign.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestCampaigns_ProviderCampaignMayMatchMultipleTrackerCampaigns(t *testing.T) {
	// A landing URL embedding two click keys matches both campaigns;
	// its cost then legitimately counts once per match.
	doubled := &provider.Campaign{
		Provider: "net1",
		ID:       "99",
		URL:      landing("abc") + "&fallback=https://t.example/click.php?key=def",
	}

	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 10, ClickKey: "abc"},
			{ID: 11, ClickKey: "def"},
		},
	}

	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{doubled}})

	matches, index, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.True(t, matches[0].Has("net1", "99"))
	assert.True(t, matches[1].Has("net1", "99"))
	// The index records the campaign once per match.
	assert.Equal(t, []string{"99", "99"}, index.IDs("net1"))
}

func TestCampaigns_MultiProvider(t *testing.T) {
	client := &fakeTracker{
		domain: "https://t.example",
		campaigns: []tracker.Campaign{
			{ID: 10, ClickKey: "abc"},
		},
	}

	registry := provider.NewRegistry()
	registry.Add("net1", &fakeProvider{name: "net1", campaigns: []*provider.Campaign{
		{Provider: "net1", ID: "99", URL: landing("abc")},
	}})
	registry.Add("net2", &fakeProvider{name: "net2", campaigns: []*provider.Campaign{
		{Provider: "net2", ID: "55", URL: landing("abc")},
	}})

	matches, index, err := Campaigns(context.Background(), client, registry)
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, []string{"net1", "net2"}, matches[0].Providers())
	assert.Equal(t, []string{"99"}, index.IDs("net1"))
	assert.Equal(t, []string{"55"}, index.IDs("net2"))
}

func TestCampaigns_ListErrorIsFatal(t *testing.T) {
	client := &fakeTracker{
		domain:  "https://t.example",
		listErr: fmt.Errorf("tracker down"),
	}

	_, _, err := Campaigns(context.Background(), client, provider.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracker down")
}
