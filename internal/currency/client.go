package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds rate API client configuration.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout returns the configured timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Client fetches exchange rates from an exchangerate-api.com compatible
// endpoint (GET {base_url}/v4/latest/{base} returning {"rates": {...}}).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate API client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

type latestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Fetch retrieves the latest rates for a base currency.
func (c *Client) Fetch(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching rates for %s: %w", base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate API returned status %d", resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding rate response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("rate response contained no rates")
	}

	rates := make(map[string]decimal.Decimal, len(parsed.Rates))
	for quote, value := range parsed.Rates {
		if value <= 0 {
			continue
		}
		rates[quote] = decimal.NewFromFloat(value)
	}
	return rates, nil
}
