package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"btis/internal/model"
)

// PriceSource fetches an ordered, chronological series of daily closing
// prices covering at least `days` periods when available. Implementations
// may return fewer closes if upstream history is shorter; downstream code
// tolerates short series.
type PriceSource interface {
	FetchDailyCloses(ctx context.Context, days int) (model.PriceSeries, error)
	Name() string
}

// SentimentSource fetches the latest sentiment reading, already scaled 0~100.
type SentimentSource interface {
	FetchSentiment(ctx context.Context) (float64, error)
	Name() string
}

// FundingSource fetches the latest periodic funding rate in percent per
// interval. A nil value with a nil error means the instrument currently has
// no funding data, which is a legitimate outcome.
type FundingSource interface {
	FetchFundingRate(ctx context.Context) (*float64, error)
	Name() string
}

// ValuationSource fetches an optional on-chain valuation metric (MVRV
// Z-Score). Nil value, nil error means no reading is available.
type ValuationSource interface {
	FetchValuation(ctx context.Context) (*float64, error)
	Name() string
}

// newHTTPClient builds the per-source HTTP client. The timeout bounds every
// call; a stalled feed surfaces as a timeout error rather than hanging the
// run.
func newHTTPClient(timeout time.Duration, proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// getBody performs a plain GET and returns the body on a 200 response.
func getBody(ctx context.Context, client *http.Client, u, label string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s fetch: %w", label, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s read body: %w", label, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d, body: %s", label, resp.StatusCode, string(body))
	}
	return body, nil
}
