package composite

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btis/internal/model"
)

// risingHistory builds a log-spaced, strictly increasing 260-day price
// series from 20000 to 80000.
func risingHistory() model.PriceSeries {
	const n = 260
	closes := make(model.PriceSeries, n)
	for i := 0; i < n; i++ {
		closes[i] = 20000 * math.Pow(4, float64(i)/float64(n-1))
	}
	return closes
}

func TestEvaluate_EndToEndScenario(t *testing.T) {
	r := &model.RawReadings{
		Prices:     risingHistory(),
		Sentiment:  model.Float(75),
		FundingPct: model.Float(0.05),
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	idx := Evaluate(r, DefaultSettings(), now)
	require.NotNil(t, idx)
	require.Len(t, idx.Components, 5)

	byName := map[string]model.Indicator{}
	for _, c := range idx.Components {
		byName[c.Name] = c
	}

	// Strictly increasing window: RSI saturates at 100, which clips to 100
	// over the 30~80 domain.
	rsi := byName[model.NameRSI]
	require.NotNil(t, rsi.Normalized)
	assert.Equal(t, 100.0, *rsi.Normalized)
	assert.Equal(t, "100.00", rsi.Detail)

	// Last price is the series max, so the log percentile is exactly 100.
	pct := byName[model.NameLogRange]
	require.NotNil(t, pct.Normalized)
	assert.InDelta(t, 100.0, *pct.Normalized, 1e-9)
	assert.Equal(t, "100 pctile", pct.Detail)

	// Funding 0.05% is the midpoint of the 0~0.10 domain.
	funding := byName[model.NameFunding]
	require.NotNil(t, funding.Normalized)
	assert.InDelta(t, 50.0, *funding.Normalized, 1e-9)
	assert.Equal(t, "0.0500%", funding.Detail)

	// Sentiment passes through unchanged.
	sentiment := byName[model.NameSentiment]
	require.NotNil(t, sentiment.Normalized)
	assert.Equal(t, 75.0, *sentiment.Normalized)
	assert.Equal(t, "75", sentiment.Detail)

	// Valuation is not configured: absent, with its 0.25 weight dropped.
	valuation := byName[model.NameValuation]
	assert.Nil(t, valuation.Normalized)
	assert.Equal(t, "n/a", valuation.Detail)

	// (100*0.20 + 75*0.20 + 100*0.20 + 50*0.15) / 0.75
	require.NotNil(t, idx.BTIS)
	assert.InDelta(t, 62.5/0.75, *idx.BTIS, 1e-6)

	assert.Equal(t, "2025-06-01T12:00:00Z", idx.GeneratedAt)
}

func TestEvaluate_ComponentOrderIsFixed(t *testing.T) {
	idx := Evaluate(&model.RawReadings{}, DefaultSettings(), time.Now())
	require.Len(t, idx.Components, 5)
	want := []string{
		model.NameRSI,
		model.NameValuation,
		model.NameSentiment,
		model.NameLogRange,
		model.NameFunding,
	}
	for i, c := range idx.Components {
		assert.Equal(t, want[i], c.Name)
	}
}

func TestEvaluate_AllFeedsAbsent(t *testing.T) {
	idx := Evaluate(&model.RawReadings{}, DefaultSettings(), time.Now())
	assert.Nil(t, idx.BTIS)
	for _, c := range idx.Components {
		assert.Nil(t, c.Normalized, c.Name)
	}
}

func TestEvaluate_ShortHistory(t *testing.T) {
	// Two closes: RSI is absent, the percentile is still computable.
	r := &model.RawReadings{Prices: model.PriceSeries{30000, 60000}}
	idx := Evaluate(r, DefaultSettings(), time.Now())

	assert.Nil(t, idx.Components[0].Normalized)
	assert.Equal(t, "—", idx.Components[0].Detail)

	pct := idx.Components[3].Normalized
	require.NotNil(t, pct)
	assert.InDelta(t, 100.0, *pct, 1e-9)
	require.NotNil(t, idx.BTIS)
}

func TestEvaluate_Idempotent(t *testing.T) {
	r := &model.RawReadings{
		Prices:     risingHistory(),
		Sentiment:  model.Float(75),
		FundingPct: model.Float(0.05),
		ValuationZ: model.Float(3.1),
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := DefaultSettings()

	a := Evaluate(r, s, now)
	b := Evaluate(r, s, now)
	assert.Equal(t, a, b)
}

func TestEvaluate_SentimentClampedToInvariant(t *testing.T) {
	r := &model.RawReadings{Sentiment: model.Float(130)}
	idx := Evaluate(r, DefaultSettings(), time.Now())
	sentiment := idx.Components[2].Normalized
	require.NotNil(t, sentiment)
	assert.Equal(t, 100.0, *sentiment)
}

func TestBand_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		label string
	}{
		{100, "Overheated"},
		{90, "Overheated"},
		{80, "Hot"},
		{60, "Warm"},
		{50, "Neutral"},
		{30, "Cool"},
		{15, "Cold"},
		{5, "Frozen"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, Band(model.Float(tt.score)), "score %.0f", tt.score)
	}
	assert.Equal(t, "unknown", Band(nil))
}
