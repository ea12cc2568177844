package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"btis/internal/model"
)

// DefaultGlassnodeBaseURL is the Glassnode metrics API.
const DefaultGlassnodeBaseURL = "https://api.glassnode.com"

// GlassnodeSource implements ValuationSource using the Glassnode MVRV
// Z-Score metric. Requires an API key; the source is simply not wired when
// no key is configured.
type GlassnodeSource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewGlassnodeSource creates a Glassnode valuation source.
func NewGlassnodeSource(baseURL, apiKey string, timeout time.Duration, proxyURL string) *GlassnodeSource {
	if baseURL == "" {
		baseURL = DefaultGlassnodeBaseURL
	}
	return &GlassnodeSource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *GlassnodeSource) Name() string { return "glassnode" }

// glassnodePoint is one daily metric sample; V is null for days without a
// computed value.
type glassnodePoint struct {
	T int64    `json:"t"`
	V *float64 `json:"v"`
}

// FetchValuation returns the most recent non-null MVRV Z-Score, or nil when
// the feed has no usable samples.
func (s *GlassnodeSource) FetchValuation(ctx context.Context) (*float64, error) {
	u := fmt.Sprintf("%s/v1/metrics/market/mvrv_z_score?api_key=%s&a=BTC&i=1d",
		s.BaseURL, url.QueryEscape(s.APIKey))

	body, err := getBody(ctx, s.Client, u, "glassnode")
	if err != nil {
		return nil, err
	}

	var points []glassnodePoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("glassnode decode: %w", err)
	}

	for i := len(points) - 1; i >= 0; i-- {
		if points[i].V != nil {
			return model.Float(*points[i].V), nil
		}
	}
	return nil, nil
}
