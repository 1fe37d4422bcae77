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

// GeolocationClient resolves IP addresses to country codes with an ip-api compatible endpoint.
type GeolocationClient struct {
	http    *http.Client
	baseURL string
}

type geoResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	CountryCode string `json:"countryCode"`
}

func (c *GeolocationClient) CountryCode(ctx context.Context, ip string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse base URL: %w", domain.ErrGeolocation, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + url.PathEscape(ip)
	q := u.Query()
	q.Set("fields", "status,message,countryCode")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request for ip %q: %w", domain.ErrGeolocation, ip, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request for ip %q: %w", domain.ErrGeolocation, ip, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status code %d for ip %q", domain.ErrGeolocation, resp.StatusCode, ip)
	}

	var body geoResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: failed to decode response for ip %q: %w", domain.ErrGeolocation, ip, err)
	}
	// ip-api reports private and reserved ranges as "fail" with a message
	if body.Status != "" && body.Status != "success" {
		return "", fmt.Errorf("%w: lookup for ip %q returned %s: %s", domain.ErrGeolocation, ip, body.Status, body.Message)
	}
	if body.CountryCode == "" {
		return "", fmt.Errorf("%w: missing 'countryCode' for ip %q", domain.ErrGeolocation, ip)
	}
	return body.CountryCode, nil
}

func NewGeolocationClient(httpClient *http.Client, baseURL string) *GeolocationClient {
	return &GeolocationClient{http: httpClient, baseURL: baseURL}
}
