package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"btis/internal/composite"
	"btis/internal/model"
)

// Config holds all application configuration. Values come from the YAML
// file, then struct defaults for anything unset, then environment variable
// overrides.
type Config struct {
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	} `yaml:"log"`

	Feeds struct {
		// PriceSource selects the interchangeable price history adapter.
		PriceSource    string `yaml:"price_source" default:"coingecko" validate:"oneof=coingecko binance yahoo" envconfig:"BTIS_PRICE_SOURCE"`
		LookbackDays   int    `yaml:"lookback_days" default:"4000" validate:"gte=2"`
		TimeoutSeconds int    `yaml:"timeout_seconds" default:"30" validate:"gte=1"`

		CoinGeckoBaseURL      string `yaml:"coingecko_base_url"`
		BinanceSpotBaseURL    string `yaml:"binance_spot_base_url"`
		BinanceFuturesBaseURL string `yaml:"binance_futures_base_url"`
		FearGreedBaseURL      string `yaml:"feargreed_base_url"`
	} `yaml:"feeds"`

	Glassnode struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key" envconfig:"GLASSNODE_API_KEY"`
	} `yaml:"glassnode"`

	// Index exposes every tunable of the composite score. The defaults are
	// the documented heuristics, not statistically derived values.
	Index struct {
		RSIPeriod   int     `yaml:"rsi_period" default:"14" validate:"gte=1"`
		RSIWindow   int     `yaml:"rsi_window" default:"250" validate:"gte=2"`
		RSILo       float64 `yaml:"rsi_lo" default:"30"`
		RSIHi       float64 `yaml:"rsi_hi" default:"80"`
		FundingLo   float64 `yaml:"funding_lo"`
		FundingHi   float64 `yaml:"funding_hi" default:"0.10"`
		ValuationLo float64 `yaml:"valuation_lo"`
		ValuationHi float64 `yaml:"valuation_hi" default:"9.0"`

		// Weights maps component name to weight; missing entries fall back
		// to the defaults. Weights need not sum to 1.
		Weights map[string]float64 `yaml:"weights"`
	} `yaml:"index"`

	Output struct {
		Path string `yaml:"path" default:"data/btis.json" envconfig:"BTIS_OUTPUT_PATH"`
	} `yaml:"output"`

	Schedule struct {
		// Cron is a 6-field expression; empty means run once and exit.
		Cron string `yaml:"cron" envconfig:"BTIS_CRON"`
	} `yaml:"schedule"`

	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`

	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file (missing file is fine: defaults apply),
// fills defaults, applies environment overrides, and validates.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := envconfig.Process("btis", cfg); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	for name, w := range cfg.Index.Weights {
		if !knownComponent(name) {
			return nil, fmt.Errorf("index.weights: unknown component %q", name)
		}
		if w < 0 {
			return nil, fmt.Errorf("index.weights: %q must be non-negative", name)
		}
	}
	return cfg, nil
}

func knownComponent(name string) bool {
	switch name {
	case model.NameRSI, model.NameValuation, model.NameSentiment, model.NameLogRange, model.NameFunding:
		return true
	}
	return false
}

// Timeout returns the per-call feed timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Feeds.TimeoutSeconds) * time.Second
}

// Settings builds the composite index settings from the configured
// overrides on top of the documented defaults.
func (c *Config) Settings() composite.Settings {
	s := composite.DefaultSettings()
	s.RSIPeriod = c.Index.RSIPeriod
	s.RSIWindow = c.Index.RSIWindow
	s.RSIDomain = composite.Domain{Lo: c.Index.RSILo, Hi: c.Index.RSIHi}
	s.FundingDomain = composite.Domain{Lo: c.Index.FundingLo, Hi: c.Index.FundingHi}
	s.ValuationDomain = composite.Domain{Lo: c.Index.ValuationLo, Hi: c.Index.ValuationHi}
	for name, w := range c.Index.Weights {
		s.Weights[name] = w
	}
	return s
}
