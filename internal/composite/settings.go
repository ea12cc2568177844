package composite

import "btis/internal/model"

// Domain is the (lo, hi) range an indicator's raw value is normalized over.
type Domain struct {
	Lo float64
	Hi float64
}

// Settings holds every tunable of the index: the RSI parameters, the
// normalization domains and the weight table. The domains are empirically
// chosen configuration, not derived from data: RSI rarely leaves 30~80 in
// practice, 0.10% funding per 8h is treated as the overheated ceiling, and
// an MVRV Z-Score of 9 has historically marked cycle tops.
type Settings struct {
	RSIPeriod int // Wilder period, default 14
	RSIWindow int // most recent closes fed to the RSI walk, default 250

	RSIDomain       Domain
	FundingDomain   Domain
	ValuationDomain Domain

	Weights map[string]float64
}

// DefaultSettings returns the documented default configuration.
func DefaultSettings() Settings {
	return Settings{
		RSIPeriod:       14,
		RSIWindow:       250,
		RSIDomain:       Domain{Lo: 30, Hi: 80},
		FundingDomain:   Domain{Lo: 0.0, Hi: 0.10},
		ValuationDomain: Domain{Lo: 0.0, Hi: 9.0},
		Weights: map[string]float64{
			model.NameRSI:       0.20,
			model.NameValuation: 0.25,
			model.NameSentiment: 0.20,
			model.NameLogRange:  0.20,
			model.NameFunding:   0.15,
		},
	}
}
