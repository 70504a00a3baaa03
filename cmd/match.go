package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cost-sync/feature/match"
)

// matchCmd reports matches without fetching cost or writing anything.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Report tracker/provider campaign matches (no cost fetch)",
	Long: `Match lists tracker campaigns, matches each against every configured
provider by destination URL, and reports the result. No provider
statistics are fetched and nothing is written back.`,
	RunE: runMatch,
}

func init() {
	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	matches, index, err := match.Campaigns(ctx, buildTracker(cfg), registry)
	if err != nil {
		return err
	}

	for _, m := range matches {
		for _, name := range m.Providers() {
			for id, campaign := range m.CampaignsFor(name) {
				l.Info("match",
					zap.Int("tracker_campaign", m.TrackerCampaign.ID),
					zap.String("provider", name),
					zap.String("provider_campaign", id),
					zap.String("name", campaign.Name),
				)
			}
		}
	}

	total := 0
	for _, campaigns := range index {
		total += len(campaigns)
	}
	l.Info("Match report", zap.Int("matches", len(matches)), zap.Int("provider_campaigns", total))

	return nil
}
