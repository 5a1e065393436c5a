package adsb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/unklstewy/airforcenone/internal/errors"
)

const (
	// DefaultBaseURL is the ADSB.One API root
	DefaultBaseURL = "https://api.adsb.one"

	// DefaultUserAgent identifies this client to the API
	DefaultUserAgent = "AirForceNone/2.0"

	// DefaultTimeout bounds every request; a timeout is reported as a source fault
	DefaultTimeout = 30 * time.Second
)

// Client talks to the ADSB.One v2 API.
// API Documentation: https://github.com/ADSB-One/api
// Rate Limit: 1 request per second (enforced by RateLimitedSource, not here)
type Client struct {
	// baseURL is the API base URL (default: https://api.adsb.one)
	baseURL string

	// userAgent is sent on every request
	userAgent string

	// httpClient is the HTTP client used for API requests
	httpClient *http.Client
}

// NewClient creates a new ADSB.One client.
// Empty baseURL/userAgent and a zero timeout fall back to the package defaults.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues the query chosen by sel and returns the decoded tracks in feed order.
//
// Uses /v2/mil for the bulk military query and /v2/hex/[hex,hex,...] for targeted queries.
func (c *Client) Get(ctx context.Context, sel Selector) ([]Track, error) {
	url := c.baseURL + "/v2/" + sel.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch aircraft data")
	}
	defer resp.Body.Close()

	// Check for rate limit (HTTP 429)
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
			Message:    "Rate limit exceeded",
			Headers:    extractRateLimitHeaders(resp.Header),
		}
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp adsbOneResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.Wrap(err, "parse API response")
	}

	tracks := make([]Track, 0, len(apiResp.Aircraft))
	for _, ac := range apiResp.Aircraft {
		tracks = append(tracks, convertAircraft(ac))
	}
	return tracks, nil
}

// adsbOneResponse is the JSON envelope shared by all v2 endpoints.
type adsbOneResponse struct {
	// Aircraft is the array of aircraft data, in feed order
	Aircraft []adsbOneAircraft `json:"ac"`

	// Msg is "No error" on success
	Msg string `json:"msg"`

	// Total number of aircraft
	Total int `json:"total"`

	// Now is the server timestamp in milliseconds
	Now float64 `json:"now"`
}

// adsbOneAircraft is a single aircraft in the response.
// Field documentation: https://www.adsbexchange.com/version-2-api-wip/
type adsbOneAircraft struct {
	Hex    string  `json:"hex"`
	Flight *string `json:"flight"`

	// R is the registration, T the ICAO type designator
	R *string `json:"r"`
	T *string `json:"t"`

	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`

	// AltBaro is barometric altitude in feet
	// Note: Can be string "ground" or float
	AltBaro interface{} `json:"alt_baro"`

	Gs       *float64 `json:"gs"`
	Track    *float64 `json:"track"`
	BaroRate *float64 `json:"baro_rate"`
	Squawk   *string  `json:"squawk"`

	// Seen is seconds since the last message
	Seen *float64 `json:"seen"`
}

// convertAircraft converts an API aircraft to a Track, keeping absent fields absent.
func convertAircraft(ac adsbOneAircraft) Track {
	t := Track{
		ICAO:         strings.ToLower(strings.TrimSpace(ac.Hex)),
		Callsign:     deref(ac.Flight),
		Registration: strings.TrimSpace(deref(ac.R)),
		TypeCode:     strings.TrimSpace(deref(ac.T)),
		Altitude:     parseAltitude(ac.AltBaro),
		GroundSpeed:  ac.Gs,
		Heading:      ac.Track,
		VerticalRate: ac.BaroRate,
		Squawk:       strings.TrimSpace(deref(ac.Squawk)),
		SeenSeconds:  ac.Seen,
	}

	if ac.Lat != nil && ac.Lon != nil {
		t.Position = &Position{Latitude: *ac.Lat, Longitude: *ac.Lon}
	}

	return t
}

// parseAltitude reads alt_baro, which can be a number or the ground sentinel.
func parseAltitude(val interface{}) Altitude {
	switch v := val.(type) {
	case float64:
		return Altitude{Feet: v, Reported: true}
	case string:
		if strings.EqualFold(strings.TrimSpace(v), GroundSentinel) {
			return Altitude{OnGround: true, Reported: true}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return Altitude{Feet: f, Reported: true}
		}
	}
	return Altitude{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RateLimitError represents an HTTP 429 rate limit error with retry information.
type RateLimitError struct {
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Headers    RateLimitHeaders
}

// RateLimitHeaders contains rate limit information from response headers.
type RateLimitHeaders struct {
	Limit     int       // X-Rate-Limit-Limit: Maximum requests allowed
	Remaining int       // X-Rate-Limit-Remaining: Requests remaining in current window
	Reset     time.Time // X-Rate-Limit-Reset: When the rate limit resets
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
	}
	return e.Message
}

// IsRateLimitError checks if an error (or anything it wraps) is a rate limit error.
func IsRateLimitError(err error) (*RateLimitError, bool) {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return rle, true
	}
	return nil, false
}

// parseRetryAfter extracts the Retry-After header value.
// Supports both delay-seconds and HTTP-date formats; returns 0 when absent.
//
// Examples:
//
//	Retry-After: 30                            -> 30 seconds
//	Retry-After: Wed, 21 Oct 2015 07:28:00 GMT -> duration until that time
func parseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if retryTime, err := http.ParseTime(retryAfter); err == nil {
		if d := time.Until(retryTime); d > 0 {
			return d
		}
	}

	return 0
}

// extractRateLimitHeaders reads the X-Rate-Limit-* (or X-RateLimit-*) headers.
// Missing numeric values are reported as -1.
func extractRateLimitHeaders(headers http.Header) RateLimitHeaders {
	rlh := RateLimitHeaders{
		Limit:     headerInt(headers, "X-Rate-Limit-Limit", "X-RateLimit-Limit"),
		Remaining: headerInt(headers, "X-Rate-Limit-Remaining", "X-RateLimit-Remaining"),
	}

	if reset := headerInt(headers, "X-Rate-Limit-Reset", "X-RateLimit-Reset"); reset > 0 {
		rlh.Reset = time.Unix(int64(reset), 0)
	}

	return rlh
}

func headerInt(headers http.Header, names ...string) int {
	for _, name := range names {
		if v := headers.Get(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return -1
}
