package provider

import "context"

// Registry is a name-keyed collection of providers. It is built once
// per run, populated before matching begins, and read-only afterwards.
type Registry struct {
	names     []string
	providers map[string]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
	}
}

// Add registers a provider under name, replacing any previous provider
// with the same name while keeping its original position.
func (r *Registry) Add(name string, p Provider) {
	if _, exists := r.providers[name]; !exists {
		r.names = append(r.names, name)
	}
	r.providers[name] = p
}

// Get returns the provider registered under name. Absence is a valid,
// non-fatal outcome.
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names returns the provider names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// MatchResult is one provider's contribution to a fan-out match.
type MatchResult struct {
	Provider  string
	Campaigns []*Campaign
}

// Match fans the destination URL out to every registered provider in
// registration order. Providers matching nothing contribute no entry.
func (r *Registry) Match(ctx context.Context, destinationURL string) ([]MatchResult, error) {
	var results []MatchResult

	for _, name := range r.names {
		campaigns, err := r.providers[name].Match(ctx, destinationURL)
		if err != nil {
			return nil, err
		}
		if len(campaigns) == 0 {
			continue
		}
		results = append(results, MatchResult{Provider: name, Campaigns: campaigns})
	}

	return results, nil
}

// Campaigns lists every registered provider's campaigns, in
// registration order.
func (r *Registry) Campaigns(ctx context.Context) ([]MatchResult, error) {
	var results []MatchResult

	for _, name := range r.names {
		byID, err := r.providers[name].ListCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		campaigns := make([]*Campaign, 0, len(byID))
		for _, c := range byID {
			campaigns = append(campaigns, c)
		}
		results = append(results, MatchResult{Provider: name, Campaigns: campaigns})
	}

	return results, nil
}
