package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"fxconverter/internal/domain"
	"net/http"
	"net/url"
	"strings"
)

// ExchangeRateClient talks to a Frankfurter compatible "latest rates" endpoint.
type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
}

// Pointer fields let the decoder tell a missing field from an empty one.
type latestResponse struct {
	Base  *string             `json:"base"`
	Date  *string             `json:"date"`
	Rates *map[string]float64 `json:"rates"`
}

func (r *latestResponse) validate() error {
	switch {
	case r.Base == nil:
		return fmt.Errorf("missing 'base' field")
	case r.Date == nil:
		return fmt.Errorf("missing 'date' field")
	case r.Rates == nil:
		return fmt.Errorf("missing 'rates' object")
	}
	return nil
}

func (c *ExchangeRateClient) GetLatestRates(ctx context.Context, base string) (*domain.Snapshot, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse base URL: %w", domain.ErrUpstreamFetch, err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/latest"
	q := u.Query()
	q.Set("base", base)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request for currency %q: %w", domain.ErrUpstreamFetch, base, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request for currency %q: %w", domain.ErrUpstreamFetch, base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d for currency %q: %s", domain.ErrUpstreamFetch, resp.StatusCode, base, resp.Status)
	}

	var body latestResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response for currency %q: %w", domain.ErrUpstreamFetch, base, err)
	}
	if err = body.validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid response for currency %q: %w", domain.ErrUpstreamFetch, base, err)
	}

	snapshot, err := domain.NewSnapshot(*body.Base, *body.Date, *body.Rates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}
	return snapshot, nil
}

func NewExchangeRateClient(httpClient *http.Client, baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL}
}
