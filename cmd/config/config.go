package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the planner CLI and services need. Values
// come from defaults, an optional config.yaml next to the binary, and
// APP_-prefixed environment variables, in increasing precedence.
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Match    MatchConfig    `mapstructure:"match"`
	Planner  PlannerConfig  `mapstructure:"planner"`
	Shopping ShoppingConfig `mapstructure:"shopping"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

type MatchConfig struct {
	ExpiringWindowDays int `mapstructure:"expiring_window_days"`
}

type PlannerConfig struct {
	TopK int   `mapstructure:"top_k"`
	Seed int64 `mapstructure:"seed"`
}

type ShoppingConfig struct {
	HorizonDays int `mapstructure:"horizon_days"`
}

type CatalogConfig struct {
	// Source is either a local JSON file path or an http(s) base URL
	// of the shared catalog service.
	Source  string        `mapstructure:"source"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SnapshotConfig struct {
	HouseholdPath string `mapstructure:"household_path"`
	PlansPath     string `mapstructure:"plans_path"`
}

func LoadConfig() (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("log_level", "info")

	viper.SetDefault("match.expiring_window_days", 7)

	viper.SetDefault("planner.top_k", 5)
	viper.SetDefault("planner.seed", 0) // 0 = time-seeded

	viper.SetDefault("shopping.horizon_days", 7)

	viper.SetDefault("catalog.source", "catalog.json")
	viper.SetDefault("catalog.timeout", "10s")

	viper.SetDefault("snapshot.household_path", "household.yaml")
	viper.SetDefault("snapshot.plans_path", "plans.json")
}

func validateConfig(config *Config) error {
	if config.Match.ExpiringWindowDays <= 0 {
		return fmt.Errorf("match expiring window must be positive")
	}
	if config.Planner.TopK <= 0 {
		return fmt.Errorf("planner top_k must be positive")
	}
	if config.Shopping.HorizonDays <= 0 {
		return fmt.Errorf("shopping horizon must be positive")
	}
	if config.Catalog.Source == "" {
		return fmt.Errorf("catalog source is required")
	}
	return nil
}
