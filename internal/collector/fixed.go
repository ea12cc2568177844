package collector

import (
	"context"

	"btis/internal/model"
)

// FixedPriceSource returns controllable fixed data for development and
// testing.
type FixedPriceSource struct {
	Closes model.PriceSeries
	Err    error
}

func (f *FixedPriceSource) Name() string { return "fixed" }

func (f *FixedPriceSource) FetchDailyCloses(_ context.Context, days int) (model.PriceSeries, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Closes) > days {
		return f.Closes[len(f.Closes)-days:], nil
	}
	return f.Closes, nil
}

// FixedScalarSource serves a fixed scalar as sentiment, funding, or
// valuation.
type FixedScalarSource struct {
	Value *float64
	Err   error
}

func (f *FixedScalarSource) Name() string { return "fixed" }

func (f *FixedScalarSource) FetchSentiment(_ context.Context) (float64, error) {
	if f.Err != nil {
		return 0, f.Err
	}
	if f.Value == nil {
		return 0, nil
	}
	return *f.Value, nil
}

func (f *FixedScalarSource) FetchFundingRate(_ context.Context) (*float64, error) {
	return f.Value, f.Err
}

func (f *FixedScalarSource) FetchValuation(_ context.Context) (*float64, error) {
	return f.Value, f.Err
}
