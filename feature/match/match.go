package match

import (
	"cost-sync/feature/provider"
	"cost-sync/feature/tracker"
)

// Match pairs one tracker campaign with the provider campaigns whose
// landing URL embeds its destination URL, grouped by provider name and
// keyed by provider campaign ID. Built fresh per run.
type Match struct {
	TrackerCampaign tracker.Campaign

	providers []string
	campaigns map[string]map[string]*provider.Campaign
}

// NewMatch returns an empty match for the given tracker campaign.
func NewMatch(campaign tracker.Campaign) *Match {
	return &Match{
		TrackerCampaign: campaign,
		campaigns:       make(map[string]map[string]*provider.Campaign),
	}
}

// Add records a matched provider campaign. A later campaign with the
// same provider and ID overwrites the earlier one.
func (m *Match) Add(providerName string, campaign *provider.Campaign) {
	if _, ok := m.campaigns[providerName]; !ok {
		m.providers = append(m.providers, providerName)
		m.campaigns[providerName] = make(map[string]*provider.Campaign)
	}
	m.campaigns[providerName][campaign.ID] = campaign
}

// Has reports whether the match contains the given provider campaign.
func (m *Match) Has(providerName, campaignID string) bool {
	byID, ok := m.campaigns[providerName]
	if !ok {
		return false
	}
	_, ok = byID[campaignID]
	return ok
}

// CampaignsFor returns the matched campaigns of one provider, keyed by
// campaign ID. The returned map is nil when the provider contributed
// nothing.
func (m *Match) CampaignsFor(providerName string) map[string]*provider.Campaign {
	return m.campaigns[providerName]
}

// Providers returns the names of providers with at least one matched
// campaign, in the order they were first added.
func (m *Match) Providers() []string {
	names := make([]string, len(m.providers))
	copy(names, m.providers)
	return names
}

// Total returns the matched campaign count summed across providers.
func (m *Match) Total() int {
	total := 0
	for _, byID := range m.campaigns {
		total += len(byID)
	}
	return total
}

// Index groups every matched provider campaign by provider name. A
// campaign matching multiple tracker campaigns appears once per match;
// the synchronizer only needs every matched ID present, not uniqueness.
type Index map[string][]*provider.Campaign

// IDs returns the campaign IDs recorded for one provider.
func (x Index) IDs(providerName string) []string {
	campaigns := x[providerName]
	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	return ids
}
