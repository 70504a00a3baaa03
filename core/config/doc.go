// Package config provides configuration management for the cost sync job.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Tracker: tracking domain and API key
//   - Providers: per-network API credentials
//   - Sync: timezone offset for the reconciliation window
//   - Log: logging level and format
//   - History: optional MySQL audit store
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
