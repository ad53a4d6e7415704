package config

import (
	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/config"
)

// Sheets holds upstream screening-sheet source configuration.
type Sheets struct {
	BaseURL             string `mapstructure:"base_url"`
	SheetID             string `mapstructure:"sheet_id"`
	Range               string `mapstructure:"range"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Cache holds scan cache configuration.
type Cache struct {
	Duration string `mapstructure:"duration"`
}

// Scanner holds aggregation configuration.
type Scanner struct {
	CapitalBase float64 `mapstructure:"capital_base"`
}

// Alerts holds the background alert sweep configuration.
type Alerts struct {
	SweepSchedule       string `mapstructure:"sweep_schedule"`
	NotifyCacheDuration string `mapstructure:"notify_cache_duration"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	API      config.API      `mapstructure:"api"`
	Storage  config.Storage  `mapstructure:"storage"`
	Telegram config.Telegram `mapstructure:"telegram"`
	Sheets   Sheets          `mapstructure:"sheets"`
	Cache    Cache           `mapstructure:"cache"`
	Scanner  Scanner         `mapstructure:"scanner"`
	Alerts   Alerts          `mapstructure:"alerts"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
