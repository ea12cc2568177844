package collector

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"

	"btis/internal/model"
)

// Collector gathers one reading from every configured feed, strictly
// sequentially. Price and sentiment are required: any fetch error aborts the
// run. Funding and valuation are optional: a stalled feed (timeout) or an
// empty reading degrades to absence and only shrinks the active indicator
// set, while a malformed or refused response is still fatal.
type Collector struct {
	Prices    PriceSource
	Sentiment SentimentSource
	Funding   FundingSource
	Valuation ValuationSource // may be nil when not configured

	Lookback int // days of price history to request
}

// NewCollector creates a Collector. valuation may be nil.
func NewCollector(prices PriceSource, sentiment SentimentSource, funding FundingSource, valuation ValuationSource, lookback int) *Collector {
	return &Collector{
		Prices:    prices,
		Sentiment: sentiment,
		Funding:   funding,
		Valuation: valuation,
		Lookback:  lookback,
	}
}

// Collect fetches all feeds and assembles the raw readings for one run.
func (c *Collector) Collect(ctx context.Context) (*model.RawReadings, error) {
	closes, err := c.Prices.FetchDailyCloses(ctx, c.Lookback)
	if err != nil {
		return nil, fmt.Errorf("fetch price history (%s): %w", c.Prices.Name(), err)
	}

	sentiment, err := c.Sentiment.FetchSentiment(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch sentiment (%s): %w", c.Sentiment.Name(), err)
	}

	r := &model.RawReadings{
		Prices:    closes,
		Sentiment: model.Float(sentiment),
	}

	funding, err := c.Funding.FetchFundingRate(ctx)
	switch {
	case err == nil:
		r.FundingPct = funding
	case isTimeout(err):
		log.Warn().Err(err).Str("source", c.Funding.Name()).
			Msg("funding feed stalled, continuing without it")
	default:
		return nil, fmt.Errorf("fetch funding rate (%s): %w", c.Funding.Name(), err)
	}

	if c.Valuation != nil {
		valuation, err := c.Valuation.FetchValuation(ctx)
		switch {
		case err == nil:
			r.ValuationZ = valuation
		case isTimeout(err):
			log.Warn().Err(err).Str("source", c.Valuation.Name()).
				Msg("valuation feed stalled, continuing without it")
		default:
			return nil, fmt.Errorf("fetch valuation (%s): %w", c.Valuation.Name(), err)
		}
	}

	return r, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
