package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/civicdata/permit-geocoder/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider geocodes addresses through the Google Maps Geocoding API.
// It is used as a fallback for addresses missing from the lookup table.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client.
	log    *slog.Logger    // log is the logger for logging operations.
}

// GoogleAPIClient is the slice of the Google Maps client the provider
// needs. It allows mocking in tests.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = errors.New("got empty response from Google Maps API")

// NewGoogleProvider creates a GoogleProvider with the given client and logger.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode resolves an address to coordinates using the Google Maps
// Geocoding API. An empty response yields ErrEmptyResponse.
func (gp *GoogleProvider) Geocode(ctx context.Context, addr string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", addr)

	req := maps.GeocodingRequest{Address: addr}
	results, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}
	location := results[0].Geometry.Location

	return &models.Coordinates{Latitude: location.Lat, Longitude: location.Lng}, nil
}
