package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/civicdata/permit-geocoder/internal/models"
	"golang.org/x/time/rate"
)

// NominatimProvider geocodes addresses through OpenStreetMap's Nominatim
// API. It sends structured street/city/state queries so that bare permit
// addresses ("1914 5th St") resolve inside the configured city rather than
// anywhere in the world. Free service; fair use is 1 request/second, which
// the provider enforces with its own limiter.
type NominatimProvider struct {
	client    HTTPClient    // client is the HTTP client for making requests.
	baseURL   string        // baseURL is the Nominatim search endpoint.
	city      string        // city scopes structured queries ("Berkeley").
	state     string        // state scopes structured queries ("California").
	log       *slog.Logger  // log is the logger for logging operations.
	limiter   *rate.Limiter // limiter enforces the fair-use rate.
	userAgent string        // userAgent is required by the Nominatim usage policy.
}

// HTTPClient is the interface for making HTTP requests. It allows mocking
// in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// nominatimResponse is the subset of the Nominatim JSON response the
// provider consumes.
type nominatimResponse struct {
	Lat string `json:"lat"` // Latitude as string.
	Lon string `json:"lon"` // Longitude as string.
}

// Common errors for the Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a Nominatim provider scoped to the given
// city and state, using the public API endpoint.
func NewNominatimProvider(city, state string, log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return &NominatimProvider{
		client: &http.Client{
			Timeout: timeout * time.Second,
		},
		baseURL: "https://nominatim.openstreetmap.org/search",
		city:    city,
		state:   state,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		// User-Agent MUST include valid contact info per Nominatim usage policy:
		// https://operations.osmfoundation.org/policies/nominatim/
		userAgent: "permit-geocoder/1.0 (https://github.com/civicdata/permit-geocoder)",
	}
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom
// HTTP client and limiter. Useful for testing.
func NewNominatimProviderWithClient(client HTTPClient, city, state string, limiter *rate.Limiter, log *slog.Logger) *NominatimProvider {
	provider := NewNominatimProvider(city, state, log)
	provider.client = client
	provider.limiter = limiter
	return provider
}

// Geocode converts a street address to coordinates using a structured
// Nominatim query bounded to the provider's city and state.
func (np *NominatimProvider) Geocode(ctx context.Context, addr string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", addr, "city", np.city)

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("street", addr)
	query.Set("city", np.city)
	query.Set("state", np.state)
	query.Set("country", "USA")
	query.Set("format", "json")
	query.Set("limit", "1")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	var lat, lon float64
	if _, err = fmt.Sscanf(results[0].Lat, "%f", &lat); err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	if _, err = fmt.Sscanf(results[0].Lon, "%f", &lon); err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
