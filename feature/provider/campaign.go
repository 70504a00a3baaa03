package provider

// Campaign is an advertising-network campaign normalized into the shape
// the pipeline works with, regardless of which network reported it.
// The owning adapter is the only writer of the cost field.
type Campaign struct {
	// Provider names the adapter that owns this campaign.
	Provider string

	// ID is the provider-native campaign identifier. It is opaque to the
	// pipeline; adapters with numeric IDs convert at the boundary.
	ID string

	// URL is the campaign's landing URL. Matching checks whether a
	// tracker destination URL appears inside it as a substring.
	URL string

	// Name is the provider-side display name.
	Name string

	cost    float64
	costSet bool
}

// SetCost stores a fetched cost value. Zero is a valid value.
func (c *Campaign) SetCost(cost float64) {
	c.cost = cost
	c.costSet = true
}

// Cost returns the fetched cost and whether one has been fetched at all.
func (c *Campaign) Cost() (float64, bool) {
	return c.cost, c.costSet
}
