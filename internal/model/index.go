package model

// PriceSeries holds chronologically ordered (oldest first) daily closing
// prices. Fetched once per run and never mutated afterwards.
type PriceSeries []float64

// Last returns the most recent close, or 0 if the series is empty.
func (p PriceSeries) Last() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// RawReadings is the per-run snapshot of every upstream feed. A nil pointer
// means the feed produced no value this run; it is not an error state.
type RawReadings struct {
	Prices     PriceSeries
	Sentiment  *float64 // 0..100
	FundingPct *float64 // percent per 8h
	ValuationZ *float64 // MVRV Z-Score
}

// Component names as they appear in the persisted artifact.
const (
	NameRSI       = "RSI(14)"
	NameValuation = "MVRV Z-Score"
	NameSentiment = "Fear & Greed"
	NameLogRange  = "Price vs Log Range"
	NameFunding   = "Funding Rate (8h %)"
)

// Indicator is one named sub-signal of the composite index.
// Normalized is either nil or within [0,100].
type Indicator struct {
	Name       string   `json:"name"`
	Normalized *float64 `json:"normalized"`
	Detail     string   `json:"detail"`
}

// CompositeIndex is the sole output record of a run. BTIS is nil when every
// configured indicator was absent.
type CompositeIndex struct {
	BTIS        *float64    `json:"btis"`
	Components  []Indicator `json:"components"`
	GeneratedAt string      `json:"generated_at"` // UTC, ISO-8601, trailing Z
}

// Float returns a pointer to v, for building optional readings inline.
func Float(v float64) *float64 { return &v }
