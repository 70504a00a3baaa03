package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	corelogger "cost-sync/core/logger"
	"cost-sync/feature/match"
	"cost-sync/feature/provider"
	"cost-sync/feature/tracker"
)

// UpdateRecord describes one applied cost update, for audit storage.
type UpdateRecord struct {
	RunID      string
	CampaignID int
	Cost       float64
	Providers  []string
	From       time.Time
	To         time.Time
}

// Recorder persists applied cost updates. Implementations must tolerate
// being called once per updated campaign within a run.
type Recorder interface {
	Record(ctx context.Context, record UpdateRecord) error
}

// Options controls synchronizer behavior.
type Options struct {
	// DryRun matches and fetches cost but skips tracker write-backs.
	DryRun bool
}

// Report summarizes one run.
type Report struct {
	RunID   string
	Matched int
	Updated int
	Skipped int
	Failed  int
}

// Synchronizer performs one cost reconciliation run. Per-run state
// (fetched-cost cache, matched index) lives on the struct; construct a
// new one per invocation.
type Synchronizer struct {
	tracker  tracker.Client
	registry *provider.Registry
	timezone int
	window   provider.Window
	logger   *zap.Logger
	recorder Recorder
	opts     Options

	costs map[string]map[string]float64
	index match.Index
}

// New returns a synchronizer for a single run. recorder may be nil.
func New(client tracker.Client, registry *provider.Registry, timezone int, logger *zap.Logger, recorder Recorder, opts Options) *Synchronizer {
	return &Synchronizer{
		tracker:  client,
		registry: registry,
		timezone: timezone,
		window:   provider.YesterdayWindow(time.Now(), timezone),
		logger:   logger,
		recorder: recorder,
		opts:     opts,
		costs:    make(map[string]map[string]float64),
	}
}

// Window returns the date window this run settles.
func (s *Synchronizer) Window() provider.Window {
	return s.window
}

// Sync runs the full pipeline. Listing and cost-fetch failures abort
// the run; write-back failures are logged and the run continues.
func (s *Synchronizer) Sync(ctx context.Context) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	logger := corelogger.WithRun(s.logger, report.RunID)

	matches, index, err := match.Campaigns(ctx, s.tracker, s.registry)
	if err != nil {
		return report, err
	}
	s.index = index
	report.Matched = len(matches)

	logger.Info("matched campaigns",
		zap.Int("matches", len(matches)),
		zap.Time("window_from", s.window.From),
		zap.Time("window_to", s.window.To),
	)

	for _, m := range matches {
		realCost := 0.0

		for _, name := range m.Providers() {
			if err := s.fetchCost(ctx, name); err != nil {
				return report, err
			}
			for _, campaign := range m.CampaignsFor(name) {
				if cost, ok := campaign.Cost(); ok {
					realCost += cost
				}
			}
		}

		// A zero or entirely-unset aggregate is not pushed.
		if realCost == 0.0 {
			report.Skipped++
			continue
		}

		if s.opts.DryRun {
			logger.Info("dry-run: would update cost",
				zap.Int("campaign_id", m.TrackerCampaign.ID),
				zap.Float64("cost", realCost),
			)
			report.Updated++
			continue
		}

		if s.updateCost(ctx, logger, m, realCost, report.RunID) {
			report.Updated++
		} else {
			report.Failed++
		}
	}

	return report, nil
}

// fetchCost ensures the named provider's cost has been fetched this
// run. The fetch is batched over the union of all matched IDs for that
// provider, so campaigns sharing a provider cost a single upstream call.
func (s *Synchronizer) fetchCost(ctx context.Context, providerName string) error {
	if _, done := s.costs[providerName]; done {
		return nil
	}

	p, ok := s.registry.Get(providerName)
	if !ok {
		// Matches only reference registered providers; an unknown name
		// here means the index and registry are out of step.
		return &provider.CostError{Provider: providerName, Err: errUnknownProvider}
	}

	costs, err := p.FetchCost(ctx, s.index.IDs(providerName), s.window, s.timezone)
	if err != nil {
		return &provider.CostError{Provider: providerName, Err: err}
	}

	s.costs[providerName] = costs
	return nil
}

func (s *Synchronizer) updateCost(ctx context.Context, logger *zap.Logger, m *match.Match, cost float64, runID string) bool {
	campaignID := m.TrackerCampaign.ID

	response, err := s.tracker.UpdateCost(ctx, campaignID, tracker.CostTypeFull, tracker.DateYesterday, s.timezone, cost)
	if err != nil {
		werr := &tracker.WriteError{CampaignID: campaignID, Err: err}
		logger.Error("cost update failed", zap.Int("campaign_id", campaignID), zap.Error(werr))
		return false
	}

	if response.Updated {
		logger.Info("updated campaign cost",
			zap.Int("campaign_id", campaignID),
			zap.Float64("cost", cost),
			zap.Time("date", s.window.From),
		)
	}

	for _, warning := range response.Warnings {
		logger.Warn("tracker warning",
			zap.Int("campaign_id", campaignID),
			zap.String("warning", warning),
		)
	}

	if s.recorder != nil {
		record := UpdateRecord{
			RunID:      runID,
			CampaignID: campaignID,
			Cost:       cost,
			Providers:  m.Providers(),
			From:       s.window.From,
			To:         s.window.To,
		}
		if err := s.recorder.Record(ctx, record); err != nil {
			logger.Warn("recording update failed", zap.Int("campaign_id", campaignID), zap.Error(err))
		}
	}

	return true
}
