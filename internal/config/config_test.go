package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btis/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "coingecko", cfg.Feeds.PriceSource)
	assert.Equal(t, 4000, cfg.Feeds.LookbackDays)
	assert.Equal(t, 30, cfg.Feeds.TimeoutSeconds)
	assert.Equal(t, 14, cfg.Index.RSIPeriod)
	assert.Equal(t, 250, cfg.Index.RSIWindow)
	assert.Equal(t, "data/btis.json", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Schedule.Cron)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := writeConfig(t, `
feeds:
  price_source: binance
  lookback_days: 1000
index:
  rsi_hi: 90
  weights:
    "RSI(14)": 0.5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "binance", cfg.Feeds.PriceSource)
	assert.Equal(t, 1000, cfg.Feeds.LookbackDays)
	assert.Equal(t, 90.0, cfg.Index.RSIHi)
	// Unset fields still get defaults.
	assert.Equal(t, 14, cfg.Index.RSIPeriod)

	s := cfg.Settings()
	assert.Equal(t, 0.5, s.Weights[model.NameRSI])
	// Weights not overridden keep their documented defaults.
	assert.Equal(t, 0.25, s.Weights[model.NameValuation])
	assert.Equal(t, 90.0, s.RSIDomain.Hi)
}

func TestLoad_InvalidPriceSource(t *testing.T) {
	path := writeConfig(t, "feeds:\n  price_source: kraken\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownWeightName(t *testing.T) {
	path := writeConfig(t, "index:\n  weights:\n    \"No Such Component\": 0.3\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component")
}

func TestLoad_NegativeWeight(t *testing.T) {
	path := writeConfig(t, "index:\n  weights:\n    \"RSI(14)\": -0.1\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GLASSNODE_API_KEY", "secret-key")
	t.Setenv("BTIS_OUTPUT_PATH", "/tmp/out.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "secret-key", cfg.Glassnode.APIKey)
	assert.Equal(t, "/tmp/out.json", cfg.Output.Path)
}

func TestSettings_DefaultDomains(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	s := cfg.Settings()
	assert.Equal(t, 30.0, s.RSIDomain.Lo)
	assert.Equal(t, 80.0, s.RSIDomain.Hi)
	assert.Equal(t, 0.10, s.FundingDomain.Hi)
	assert.Equal(t, 9.0, s.ValuationDomain.Hi)
}
