package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// DefaultFearGreedBaseURL is the alternative.me Fear & Greed API.
const DefaultFearGreedBaseURL = "https://api.alternative.me"

// FearGreedSource implements SentimentSource using the alternative.me
// Fear & Greed index (already scaled 0~100).
type FearGreedSource struct {
	BaseURL string
	Client  *http.Client
}

// NewFearGreedSource creates a Fear & Greed sentiment source.
func NewFearGreedSource(baseURL string, timeout time.Duration, proxyURL string) *FearGreedSource {
	if baseURL == "" {
		baseURL = DefaultFearGreedBaseURL
	}
	return &FearGreedSource{
		BaseURL: baseURL,
		Client:  newHTTPClient(timeout, proxyURL),
	}
}

func (s *FearGreedSource) Name() string { return "feargreed" }

// fearGreedResponse carries the index value as a string-encoded number.
type fearGreedResponse struct {
	Data []struct {
		Value string `json:"value"`
	} `json:"data"`
}

func (s *FearGreedSource) FetchSentiment(ctx context.Context) (float64, error) {
	body, err := getBody(ctx, s.Client, s.BaseURL+"/fng/?limit=1", "feargreed")
	if err != nil {
		return 0, err
	}

	var fg fearGreedResponse
	if err := json.Unmarshal(body, &fg); err != nil {
		return 0, fmt.Errorf("feargreed decode: %w", err)
	}
	if len(fg.Data) == 0 {
		return 0, fmt.Errorf("feargreed: no data returned")
	}
	v, err := strconv.ParseFloat(fg.Data[0].Value, 64)
	if err != nil {
		return 0, fmt.Errorf("feargreed parse %q: %w", fg.Data[0].Value, err)
	}
	return v, nil
}
