package provider

import "context"

// Catalog holds an adapter's campaign cache with an explicit
// loaded/not-loaded state, so "fetch exactly once" is a property of the
// type rather than a nil check. The zero value is a not-loaded catalog.
type Catalog struct {
	loaded    bool
	campaigns map[string]*Campaign
}

// Loaded reports whether a fetch has completed.
func (c *Catalog) Loaded() bool {
	return c.loaded
}

// Load returns the cached campaigns, invoking fetch on the first call
// only. A failed fetch leaves the catalog not-loaded so a subsequent
// run can retry.
func (c *Catalog) Load(ctx context.Context, fetch func(ctx context.Context) (map[string]*Campaign, error)) (map[string]*Campaign, error) {
	if c.loaded {
		return c.campaigns, nil
	}

	campaigns, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.campaigns = campaigns
	c.loaded = true
	return c.campaigns, nil
}

// Get returns a cached campaign by ID. It never triggers a fetch.
func (c *Catalog) Get(id string) (*Campaign, bool) {
	campaign, ok := c.campaigns[id]
	return campaign, ok
}
