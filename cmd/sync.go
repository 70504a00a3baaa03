package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cost-sync/core/history"
	costsync "cost-sync/feature/sync"
)

var dryRunSync bool

// syncCmd performs one cost reconciliation run.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile yesterday's spend into the tracker",
	Long: `Sync matches tracker campaigns against provider campaigns by
destination URL, fetches each involved provider's spend for yesterday's
window, and writes aggregated nonzero costs back to the tracker.

Examples:
  # Full run
  cost-sync sync

  # Match and fetch cost, but skip tracker write-backs
  cost-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRunSync, "dry-run", false, "Skip tracker write-backs (match and fetch only)")
	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := setup()
	if err != nil {
		return err
	}

	l.Info("Starting cost synchronization", zap.Int("timezone", cfg.Sync.Timezone))

	registry, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	var recorder costsync.Recorder
	if cfg.History.Enabled {
		db, err := history.Connect(cfg.History)
		if err != nil {
			return fmt.Errorf("failed to connect to history database: %w", err)
		}
		store, err := history.NewStore(db)
		if err != nil {
			return err
		}
		recorder = store
	}

	synchronizer := costsync.New(
		buildTracker(cfg),
		registry,
		cfg.Sync.Timezone,
		l,
		recorder,
		costsync.Options{DryRun: dryRunSync},
	)

	report, err := synchronizer.Sync(ctx)
	if err != nil {
		return err
	}

	l.Info("Synchronization finished",
		zap.String("run_id", report.RunID),
		zap.Int("matched", report.Matched),
		zap.Int("updated", report.Updated),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)

	if report.Failed > 0 {
		l.Warn("Some cost updates failed; see per-campaign errors above",
			zap.Int("failed", report.Failed))
	}

	return nil
}
