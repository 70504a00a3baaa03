package match

import (
	"context"
	"fmt"
	"strings"

	"cost-sync/feature/provider"
	"cost-sync/feature/tracker"
)

// DestinationURL builds the click-tracking redirect URL the tracker
// hands out for a campaign. Provider campaigns embed this URL inside
// their landing URL.
func DestinationURL(trackingDomain, clickKey string) string {
	return fmt.Sprintf("%s/click.php?key=%s", strings.TrimRight(trackingDomain, "/"), clickKey)
}

// Campaigns lists all tracker campaigns and matches each one against
// every registered provider. It returns the matches in tracker listing
// order and the index of all matched provider campaigns.
//
// Tracker campaigns without a click key are skipped; tracker campaigns
// matching no provider campaign are silently dropped.
func Campaigns(ctx context.Context, client tracker.Client, registry *provider.Registry) ([]*Match, Index, error) {
	campaigns, err := client.ListCampaigns(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing tracker campaigns: %w", err)
	}

	var matches []*Match
	index := make(Index)
	domain := client.TrackingDomain()

	for _, campaign := range campaigns {
		if !campaign.Matchable() {
			continue
		}

		m := NewMatch(campaign)
		destination := DestinationURL(domain, campaign.ClickKey)

		results, err := registry.Match(ctx, destination)
		if err != nil {
			return nil, nil, err
		}

		for _, result := range results {
			for _, pc := range result.Campaigns {
				m.Add(result.Provider, pc)
				index[result.Provider] = append(index[result.Provider], pc)
			}
		}

		if m.Total() > 0 {
			matches = append(matches, m)
		}
	}

	return matches, index, nil
}
