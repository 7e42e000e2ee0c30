package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Asset describes one tradable instrument known to the dashboard.
type Asset struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"` // provider ticker
}

// Timeframe describes one selectable bar interval.
type Timeframe struct {
	Name         string `yaml:"name"`     // e.g. "15m"
	Interval     string `yaml:"interval"` // provider interval string
	LookbackDays int    `yaml:"lookback_days"`
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Assets     []Asset     `yaml:"assets"`
	Timeframes []Timeframe `yaml:"timeframes"`
	Signal     struct {
		WickRatio float64 `yaml:"wick_ratio"`
	} `yaml:"signal"`
	Session struct {
		Timezone  string `yaml:"timezone"`
		OpenHour  int    `yaml:"open_hour"`
		CloseHour int    `yaml:"close_hour"` // inclusive
	} `yaml:"session"`
	Cache struct {
		PriceTTLSeconds    int `yaml:"price_ttl_seconds"`
		StrengthTTLSeconds int `yaml:"strength_ttl_seconds"`
	} `yaml:"cache"`
	Alerts struct {
		Enabled   bool `yaml:"enabled"`
		NewsPause bool `yaml:"news_pause"`
	} `yaml:"alerts"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	LogCSVPath string `yaml:"log_csv_path"`
	Proxy      string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Alerts.Enabled = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("ALERTS_ENABLED"); v != "" {
		cfg.Alerts.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("NEWS_PAUSE"); v != "" {
		cfg.Alerts.NewsPause = v == "true" || v == "1"
	}

	// Defaults
	if len(cfg.Assets) == 0 {
		cfg.Assets = []Asset{
			{Name: "EURUSD", Symbol: "EURUSD=X"},
			{Name: "GOLD", Symbol: "GC=F"},
			{Name: "USD/PHP", Symbol: "PHP=X"},
		}
	}
	if len(cfg.Timeframes) == 0 {
		cfg.Timeframes = []Timeframe{
			{Name: "5m", Interval: "5m", LookbackDays: 5},
			{Name: "15m", Interval: "15m", LookbackDays: 10},
			{Name: "1h", Interval: "1h", LookbackDays: 10},
		}
	}
	if cfg.Signal.WickRatio == 0 {
		cfg.Signal.WickRatio = 0.3
	}
	if cfg.Session.Timezone == "" {
		cfg.Session.Timezone = "Asia/Manila"
	}
	if cfg.Session.OpenHour == 0 && cfg.Session.CloseHour == 0 {
		cfg.Session.OpenHour = 15
		cfg.Session.CloseHour = 23
	}
	if cfg.Cache.PriceTTLSeconds == 0 {
		cfg.Cache.PriceTTLSeconds = 60
	}
	if cfg.Cache.StrengthTTLSeconds == 0 {
		cfg.Cache.StrengthTTLSeconds = 300
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.LogCSVPath == "" {
		cfg.LogCSVPath = "trading_log.csv"
	}

	return cfg, nil
}

// Validate checks configuration consistency. Telegram credentials are
// optional: without them the notification step is skipped, not an error.
func (c *Config) Validate() error {
	if len(c.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	if len(c.Timeframes) == 0 {
		return fmt.Errorf("at least one timeframe is required")
	}
	if c.Signal.WickRatio <= 0 {
		return fmt.Errorf("signal.wick_ratio must be positive")
	}
	if c.Session.OpenHour < 0 || c.Session.OpenHour > 23 ||
		c.Session.CloseHour < 0 || c.Session.CloseHour > 23 {
		return fmt.Errorf("session hours must be within 0-23")
	}
	if c.Session.OpenHour > c.Session.CloseHour {
		return fmt.Errorf("session.open_hour must not exceed session.close_hour")
	}
	if _, err := time.LoadLocation(c.Session.Timezone); err != nil {
		return fmt.Errorf("session.timezone: %w", err)
	}
	return nil
}

// AssetByName returns the asset with the given name, or the first asset
// if the name is unknown.
func (c *Config) AssetByName(name string) Asset {
	for _, a := range c.Assets {
		if a.Name == name {
			return a
		}
	}
	return c.Assets[0]
}

// TimeframeByName returns the timeframe with the given name, or the
// second timeframe (the 15m default) if the name is unknown.
func (c *Config) TimeframeByName(name string) Timeframe {
	for _, tf := range c.Timeframes {
		if tf.Name == name {
			return tf
		}
	}
	if len(c.Timeframes) > 1 {
		return c.Timeframes[1]
	}
	return c.Timeframes[0]
}

// PriceTTL returns the candle-data memoization window.
func (c *Config) PriceTTL() time.Duration {
	return time.Duration(c.Cache.PriceTTLSeconds) * time.Second
}

// StrengthTTL returns the daily-close memoization window.
func (c *Config) StrengthTTL() time.Duration {
	return time.Duration(c.Cache.StrengthTTLSeconds) * time.Second
}
