package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"btis/internal/model"
)

// DefaultCoinGeckoBaseURL is the public, unauthenticated CoinGecko API.
const DefaultCoinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoSource implements PriceSource using the CoinGecko market chart
// endpoint.
type CoinGeckoSource struct {
	BaseURL string
	Coin    string
	Client  *http.Client
}

// NewCoinGeckoSource creates a CoinGecko price source with optional proxy
// support.
func NewCoinGeckoSource(baseURL string, timeout time.Duration, proxyURL string) *CoinGeckoSource {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoBaseURL
	}
	return &CoinGeckoSource{
		BaseURL: baseURL,
		Coin:    "bitcoin",
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *CoinGeckoSource) Name() string { return "coingecko" }

// coinGeckoChart is the market_chart response; each price entry is a
// [timestamp_ms, price] pair.
type coinGeckoChart struct {
	Prices [][]float64 `json:"prices"`
}

func (s *CoinGeckoSource) FetchDailyCloses(ctx context.Context, days int) (model.PriceSeries, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		s.BaseURL, s.Coin, days)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coingecko read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart coinGeckoChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("coingecko: no price data returned")
	}

	closes := make(model.PriceSeries, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		if len(p) < 2 {
			continue
		}
		closes = append(closes, p[1])
	}
	return closes, nil
}
