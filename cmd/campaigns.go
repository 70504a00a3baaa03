package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// campaignsCmd lists each configured provider's campaigns.
var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List campaigns per configured provider",
	RunE:  runCampaigns,
}

func init() {
	RootCmd.AddCommand(campaignsCmd)
}

func runCampaigns(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	results, err := registry.Campaigns(ctx)
	if err != nil {
		return err
	}

	for _, result := range results {
		for _, campaign := range result.Campaigns {
			l.Info("campaign",
				zap.String("provider", result.Provider),
				zap.String("id", campaign.ID),
				zap.String("name", campaign.Name),
				zap.String("url", campaign.URL),
			)
		}
		l.Info("Provider campaign count",
			zap.String("provider", result.Provider),
			zap.Int("count", len(result.Campaigns)),
		)
	}

	return nil
}
