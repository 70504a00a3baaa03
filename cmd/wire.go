package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"cost-sync/core/config"
	"cost-sync/core/logger"
	"cost-sync/feature/provider"
	"cost-sync/feature/provider/propeller"
	"cost-sync/feature/tracker/binom"
)

// providerPropellerAds is the registry name of the PropellerAds adapter.
const providerPropellerAds = "propeller_ads"

// setup loads and validates configuration and builds the logger shared
// by every command.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// buildTracker constructs the tracker client from configuration.
func buildTracker(cfg *config.Config) *binom.Client {
	return binom.NewClient(cfg.Tracker.Domain, cfg.Tracker.APIKey)
}

// buildRegistry constructs a fresh provider registry for one run.
// Providers without credentials are left unregistered. This is the place
// where new providers get wired in.
func buildRegistry(cfg *config.Config) (*provider.Registry, error) {
	registry := provider.NewRegistry()

	if key := cfg.Providers.PropellerAds.APIKey; key != "" {
		registry.Add(providerPropellerAds, propeller.New(providerPropellerAds, key))
	}

	if len(registry.Names()) == 0 {
		return nil, fmt.Errorf("no providers configured: set at least one provider API key")
	}

	return registry, nil
}
