package geocoding

import (
	"context"

	"github.com/civicdata/permit-geocoder/internal/models"
)

// Provider is an external geocoding service used as an optional fallback
// for addresses the lookup table cannot resolve. The Geocode method takes a
// context and an address string, and returns the corresponding coordinates
// or an error.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
