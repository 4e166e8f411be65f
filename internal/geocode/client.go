// Package geocode resolves institution names to coordinates through the
// Nominatim search API and maintains a persistent CSV cache of results.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Location is a single geocoding match.
type Location struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// Client geocodes a free-text query. A nil Location with a nil error means
// the provider had no match for the query.
type Client interface {
	Geocode(ctx context.Context, query string) (*Location, error)
}

// NominatimClient is a Client backed by the Nominatim search endpoint.
// Calls are serialized through a rate limiter so successive lookups are
// at least one interval apart, per the provider's usage policy.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
}

// Option configures a NominatimClient.
type Option func(*NominatimClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *NominatimClient) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the Nominatim endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *NominatimClient) {
		c.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Nominatim rejects requests without an identifying agent.
func WithUserAgent(ua string) Option {
	return func(c *NominatimClient) {
		c.userAgent = ua
	}
}

// WithMinInterval sets the minimum spacing between successive lookups.
func WithMinInterval(d time.Duration) Option {
	return func(c *NominatimClient) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewNominatimClient creates a client with a 1 request/second limit.
func NewNominatimClient(opts ...Option) *NominatimClient {
	c := &NominatimClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		userAgent:  "canada_vote_geocoder",
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// nominatimPlace is one entry of the jsonv2 search response. Coordinates
// arrive as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode looks up the query and returns the first match, or nil when the
// provider returns an empty result set.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (*Location, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode: rate limit wait: %w", err)
	}

	params := url.Values{
		"q":      {query},
		"format": {"jsonv2"},
		"limit":  {"1"},
	}
	reqURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("geocode: failed to read response: %w", err)
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("geocode: failed to parse response: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: invalid latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocode: invalid longitude %q: %w", places[0].Lon, err)
	}

	return &Location{Latitude: lat, Longitude: lon, DisplayName: places[0].DisplayName}, nil
}
