package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"btis/internal/model"
)

const (
	// DefaultBinanceSpotBaseURL serves the public spot klines endpoint.
	DefaultBinanceSpotBaseURL = "https://api.binance.com"
	// DefaultBinanceFuturesBaseURL serves the public perpetual-futures
	// funding endpoint.
	DefaultBinanceFuturesBaseURL = "https://fapi.binance.com"

	// binanceMaxKlines is the hard per-request limit of the klines endpoint.
	// Requests for a longer lookback return a shorter series, which the
	// indicator engine tolerates.
	binanceMaxKlines = 1000
)

// BinanceKlinesSource implements PriceSource using Binance spot daily
// candles.
type BinanceKlinesSource struct {
	BaseURL string
	Symbol  string
	Client  *http.Client
}

// NewBinanceKlinesSource creates a Binance spot price source.
func NewBinanceKlinesSource(baseURL string, timeout time.Duration, proxyURL string) *BinanceKlinesSource {
	if baseURL == "" {
		baseURL = DefaultBinanceSpotBaseURL
	}
	return &BinanceKlinesSource{
		BaseURL: baseURL,
		Symbol:  "BTCUSDT",
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *BinanceKlinesSource) Name() string { return "binance" }

func (s *BinanceKlinesSource) FetchDailyCloses(ctx context.Context, days int) (model.PriceSeries, error) {
	limit := days
	if limit > binanceMaxKlines {
		limit = binanceMaxKlines
	}
	u := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=1d&limit=%d", s.BaseURL, s.Symbol, limit)

	body, err := getBody(ctx, s.Client, u, "binance klines")
	if err != nil {
		return nil, err
	}

	// Each kline is a mixed-type array; index 4 is the close as a string.
	var klines [][]interface{}
	if err := json.Unmarshal(body, &klines); err != nil {
		return nil, fmt.Errorf("binance klines decode: %w", err)
	}
	if len(klines) == 0 {
		return nil, fmt.Errorf("binance klines: no data returned")
	}

	closes := make(model.PriceSeries, 0, len(klines))
	for _, k := range klines {
		if len(k) < 5 {
			continue
		}
		raw, ok := k[4].(string)
		if !ok {
			continue
		}
		c, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("binance klines parse close %q: %w", raw, err)
		}
		closes = append(closes, c)
	}
	return closes, nil
}

// BinanceFundingSource implements FundingSource using the perpetual-futures
// funding rate endpoint.
type BinanceFundingSource struct {
	BaseURL string
	Symbol  string
	Client  *http.Client
}

// NewBinanceFundingSource creates a Binance funding rate source.
func NewBinanceFundingSource(baseURL string, timeout time.Duration, proxyURL string) *BinanceFundingSource {
	if baseURL == "" {
		baseURL = DefaultBinanceFuturesBaseURL
	}
	return &BinanceFundingSource{
		BaseURL: baseURL,
		Symbol:  "BTCUSDT",
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *BinanceFundingSource) Name() string { return "binance-funding" }

type binanceFundingEntry struct {
	FundingRate string `json:"fundingRate"`
}

// FetchFundingRate returns the latest funding rate converted to percent per
// 8h interval. An empty response means the instrument has no funding data
// and yields nil, not an error.
func (s *BinanceFundingSource) FetchFundingRate(ctx context.Context) (*float64, error) {
	u := fmt.Sprintf("%s/fapi/v1/fundingRate?symbol=%s&limit=1", s.BaseURL, s.Symbol)

	body, err := getBody(ctx, s.Client, u, "binance funding")
	if err != nil {
		return nil, err
	}

	var entries []binanceFundingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("binance funding decode: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	rate, err := strconv.ParseFloat(entries[0].FundingRate, 64)
	if err != nil {
		return nil, fmt.Errorf("binance funding parse %q: %w", entries[0].FundingRate, err)
	}
	return model.Float(rate * 100), nil // fraction to percent
}
