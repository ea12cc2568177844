package composite

import (
	"fmt"
	"time"

	"btis/internal/calculator"
	"btis/internal/model"
)

// Evaluate turns one run's raw feed readings into the composite index.
// Deterministic given (r, s, now): the caller supplies the generation
// timestamp so identical inputs produce identical output.
func Evaluate(r *model.RawReadings, s Settings, now time.Time) *model.CompositeIndex {
	// RSI over the most recent window only, for stability; the percentile
	// looks at the full history.
	rsiVal := calculator.RSI(tail(r.Prices, s.RSIWindow), s.RSIPeriod)
	logPct := calculator.LogRangePercentile(r.Prices)

	components := []model.Indicator{
		{
			Name:       model.NameRSI,
			Normalized: Normalize(rsiVal, s.RSIDomain.Lo, s.RSIDomain.Hi, true),
			Detail:     detail(rsiVal, "%.2f", "—"),
		},
		{
			Name:       model.NameValuation,
			Normalized: Normalize(r.ValuationZ, s.ValuationDomain.Lo, s.ValuationDomain.Hi, true),
			Detail:     detail(r.ValuationZ, "%.2f", "n/a"),
		},
		{
			Name:       model.NameSentiment,
			Normalized: passthrough(r.Sentiment),
			Detail:     detail(r.Sentiment, "%.0f", "n/a"),
		},
		{
			Name:       model.NameLogRange,
			Normalized: logPct,
			Detail:     detail(logPct, "%.0f pctile", "—"),
		},
		{
			Name:       model.NameFunding,
			Normalized: Normalize(r.FundingPct, s.FundingDomain.Lo, s.FundingDomain.Hi, true),
			Detail:     detail(r.FundingPct, "%.4f%%", "n/a"),
		},
	}

	pairs := make([]WeightedValue, 0, len(components))
	for _, c := range components {
		pairs = append(pairs, WeightedValue{Value: c.Normalized, Weight: s.Weights[c.Name]})
	}

	return &model.CompositeIndex{
		BTIS:        WeightedMean(pairs),
		Components:  components,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
}

// tail returns the last n elements of the series (or all of it).
func tail(p model.PriceSeries, n int) model.PriceSeries {
	if n <= 0 || len(p) <= n {
		return p
	}
	return p[len(p)-n:]
}

// passthrough keeps an already 0~100 scaled reading as-is, clamped so the
// indicator invariant holds even against a misbehaving feed.
func passthrough(v *float64) *float64 {
	if v == nil {
		return nil
	}
	x := *v
	if x < 0 {
		x = 0
	}
	if x > 100 {
		x = 100
	}
	return model.Float(x)
}

func detail(v *float64, format, missing string) string {
	if v == nil {
		return missing
	}
	return fmt.Sprintf(format, *v)
}
