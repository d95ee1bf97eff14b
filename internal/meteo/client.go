// Package meteo implements the HTTP clients for the upstream weather,
// geocoding, IP-location and air-quality services. All methods are
// context-aware, respect the shared rate limiter, and retry transient
// failures with a bounded linear backoff.
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultWeatherURL = "https://wttr.in/"
	defaultGeocodeURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultIPURL      = "http://ip-api.com/json"
	defaultAirURL     = "https://air-quality-api.open-meteo.com/v1/air-quality"

	maxRetries = 3
	retryStep  = 200 * time.Millisecond
)

// ─── Error taxonomy ───────────────────────────────────────────────────────────

// NotFoundError means the location could not be resolved: the geocoder
// returned zero results or the weather service answered 404.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	if e.Query == "" {
		return "location not found"
	}
	return fmt.Sprintf("location not found: %q", e.Query)
}

// FetchError wraps a transport-level failure (timeout, connectivity,
// unparseable body) after retries are exhausted.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "fetch failed: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// MalformedError means the request succeeded but the payload is missing a
// required sub-record and cannot be rendered.
type MalformedError struct {
	Missing string
}

func (e *MalformedError) Error() string {
	return "malformed response: missing " + e.Missing
}

// ─── Client ───────────────────────────────────────────────────────────────────

// Endpoints overrides the upstream base URLs; zero values use the defaults.
// Tests point these at httptest servers.
type Endpoints struct {
	Weather string
	Geocode string
	IP      string
	Air     string
}

// Client performs all upstream HTTP calls.
type Client struct {
	ep         Endpoints
	httpClient *http.Client
	limiter    *rate.Limiter
	debug      bool
}

// NewClient creates a Client with the given timeout and request rate.
func NewClient(ep Endpoints, timeout time.Duration, ratePerSec float64, debug bool) *Client {
	if ep.Weather == "" {
		ep.Weather = defaultWeatherURL
	}
	if ep.Geocode == "" {
		ep.Geocode = defaultGeocodeURL
	}
	if ep.IP == "" {
		ep.IP = defaultIPURL
	}
	if ep.Air == "" {
		ep.Air = defaultAirURL
	}
	burst := int(ratePerSec)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		ep: ep,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), burst),
		debug:   debug,
	}
}

// get performs a GET request, handling rate limiting and retries. On failure
// it sleeps attempt×200ms and tries again, up to maxRetries attempts; the
// last error is surfaced as a *FetchError. A 404 maps to *NotFoundError
// immediately — retrying cannot make a place exist.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if c.debug {
		slog.Debug("meteo request", "url", reqURL)
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		body, retryable, err := c.doOnce(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
		if attempt >= maxRetries {
			return nil, &FetchError{Err: fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)}
		}
		backoff := time.Duration(attempt) * retryStep
		if c.debug {
			slog.Debug("retrying after backoff", "attempt", attempt, "backoff", backoff)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// doOnce performs a single request. retryable is false for terminal
// failures (bad request construction, 404).
func (c *Client) doOnce(ctx context.Context, reqURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nimbus-cli/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading body: %w", err)
	}

	if c.debug {
		slog.Debug("meteo response", "status", resp.StatusCode, "bytes", len(body))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, &NotFoundError{}
	case resp.StatusCode != http.StatusOK:
		return nil, true, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, false, nil
}

// getJSON fetches reqURL and decodes the body into out. An undecodable body
// counts as a fetch failure, not a malformed payload: the distinction
// between the two is whether the response parsed at all.
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) ([]byte, error) {
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	return body, nil
}
