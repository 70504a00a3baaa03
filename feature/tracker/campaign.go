package tracker

// Campaign is a tracker campaign as returned by the tracker's listing API.
// Fields beyond the ones needed for matching are treated as opaque and
// stay inside the concrete client.
type Campaign struct {
	// ID is the tracker-native campaign identifier.
	ID int

	// Name is the display name of the campaign.
	Name string

	// ClickKey is the tracker-issued token identifying the campaign's
	// click-tracking redirect URL. A campaign with an empty ClickKey can
	// never participate in matching.
	ClickKey string
}

// Matchable reports whether the campaign can take part in URL matching.
func (c Campaign) Matchable() bool {
	return c.ClickKey != ""
}
