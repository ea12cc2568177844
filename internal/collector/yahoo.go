package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"btis/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance chart API.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooSource implements PriceSource using the Yahoo Finance public chart
// API.
type YahooSource struct {
	BaseURL string
	Symbol  string
	Client  *http.Client
}

// NewYahooSource creates a Yahoo Finance price source with optional proxy
// support.
func NewYahooSource(timeout time.Duration, proxyURL string) *YahooSource {
	return &YahooSource{
		BaseURL: DefaultYahooBaseURL,
		Symbol:  "BTC-USD",
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *YahooSource) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// yahooRange maps a day count to the coarse range parameter the chart API
// accepts.
func yahooRange(days int) string {
	switch {
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	case days <= 730:
		return "2y"
	case days <= 1825:
		return "5y"
	case days <= 3650:
		return "10y"
	default:
		return "max"
	}
}

func (s *YahooSource) FetchDailyCloses(ctx context.Context, days int) (model.PriceSeries, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		s.BaseURL, url.PathEscape(s.Symbol), yahooRange(days))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data returned")
	}
	quote := result.Indicators.Quote[0]

	closes := make(model.PriceSeries, 0, len(quote.Close))
	for _, v := range quote.Close {
		c := toFloat(v)
		if c == 0 {
			continue // skip null bars (holidays etc.)
		}
		closes = append(closes, c)
	}

	// Trim to the requested count; the chart API only takes coarse ranges.
	if len(closes) > days {
		closes = closes[len(closes)-days:]
	}
	return closes, nil
}
