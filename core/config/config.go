package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cost-sync/core/history"
	"cost-sync/core/logger"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Tracker holds configuration for the tracker connection.
	Tracker TrackerConfig `mapstructure:"tracker"`
	// Providers holds per-network API credentials.
	Providers ProvidersConfig `mapstructure:"providers"`
	// Sync holds settings of the reconciliation run itself.
	Sync SyncConfig `mapstructure:"sync"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// History holds configuration for the audit database.
	History history.Config `mapstructure:"history"`
}

// TrackerConfig identifies and authenticates the tracker instance.
type TrackerConfig struct {
	// Domain is the tracker base URL, e.g. https://t.example.
	Domain string `mapstructure:"domain" default:""`
	// APIKey authenticates against the tracker API.
	APIKey string `mapstructure:"api_key" default:""`
}

// ProvidersConfig holds credentials per advertising network. A provider
// with an empty key is simply not registered for the run.
type ProvidersConfig struct {
	PropellerAds ProviderCredentials `mapstructure:"propellerads"`
}

// ProviderCredentials authenticates one advertising network.
type ProviderCredentials struct {
	APIKey string `mapstructure:"api_key" default:""`
}

// SyncConfig holds run-level settings.
type SyncConfig struct {
	// Timezone is the signed whole-hour UTC offset used for the
	// reconciliation window and the tracker write-back.
	Timezone int `mapstructure:"timezone" default:"0"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. TRACKER_DOMAIN -> tracker.domain)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Error reports invalid or missing configuration. It is fatal at
// startup, before any network call.
type Error struct {
	Setting string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s %s", e.Setting, e.Reason)
}

// Validate checks the settings the run cannot start without.
func (c *Config) Validate() error {
	if c.Tracker.Domain == "" {
		return &Error{Setting: "tracker.domain", Reason: "is required"}
	}
	if c.Tracker.APIKey == "" {
		return &Error{Setting: "tracker.api_key", Reason: "is required"}
	}
	if c.Sync.Timezone < -12 || c.Sync.Timezone > 14 {
		return &Error{Setting: "sync.timezone", Reason: "must be a whole-hour UTC offset between -12 and 14"}
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
