package tracker

import (
	"context"
	"fmt"
)

// CostType selects how the tracker applies an updated cost value.
type CostType int

const (
	CostTypeFull CostType = 1
	CostTypeCPC  CostType = 2
)

// DatePreset selects the tracker-side date range a cost update applies to.
type DatePreset int

const (
	DateToday        DatePreset = 1
	DateYesterday    DatePreset = 2
	DateLast7Days    DatePreset = 3
	DateLast14Days   DatePreset = 4
	DateCurrentMonth DatePreset = 5
	DateLastMonth    DatePreset = 6
	DateCurrentYear  DatePreset = 7
	DateLastYear     DatePreset = 8
	DateAllTime      DatePreset = 9
	DateCurrentWeek  DatePreset = 11
	DateCustom       DatePreset = 12
)

// UpdateResponse is the tracker's answer to a cost update.
type UpdateResponse struct {
	// Updated reports whether the tracker acknowledged the new cost.
	Updated bool

	// Warnings holds tracker-supplied warning lines, one per entry.
	// Warnings do not imply failure.
	Warnings []string
}

// Client is the tracker capability consumed by the matching and
// synchronization pipeline.
type Client interface {
	// ListCampaigns returns every campaign known to the tracker, in the
	// tracker's listing order.
	ListCampaigns(ctx context.Context) ([]Campaign, error)

	// UpdateCost writes a new aggregate cost for one campaign.
	UpdateCost(ctx context.Context, campaignID int, costType CostType, date DatePreset, timezone int, cost float64) (UpdateResponse, error)

	// TrackingDomain returns the base URL used to build a campaign's
	// click-tracking destination URL.
	TrackingDomain() string
}

// WriteError reports a failed cost write-back for a single campaign.
// Write failures do not abort the run; callers log them and continue
// with the remaining campaigns.
type WriteError struct {
	CampaignID int
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("tracker: cost update for campaign %d failed: %v", e.CampaignID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
