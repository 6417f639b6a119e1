package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/civicdata/permit-geocoder/internal/models"
)

// ErrOutOfBounds is returned when manually entered coordinates fall outside
// the configured region. The entry is not persisted; any surrounding batch
// continues.
var ErrOutOfBounds = errors.New("coordinates outside region bounds")

// LookupStore is the append surface of the lookup table, used only by the
// administrative manual-entry path. Mutations must run out of band, never
// interleaved with a running batch resolution.
type LookupStore interface {
	InsertLookupEntry(ctx context.Context, record models.LookupRecord) error
}

// Admin performs administrative mutations of the lookup table.
type Admin struct {
	store  LookupStore  // store is the writable side of the lookup table.
	region string       // region names the bounding box that gates manual entries.
	log    *slog.Logger // log is the logger for logging operations.
}

// NewAdmin creates an Admin gated by the named region's bounding box.
func NewAdmin(store LookupStore, region string, log *slog.Logger) *Admin {
	return &Admin{store: store, region: region, log: log}
}

// AddManualEntry appends a manually geocoded address to the lookup table.
// Coordinates outside the region's bounds are rejected with ErrOutOfBounds
// and the table is left untouched. The address is stored in the lookup
// table's own convention when it can be reformatted, raw otherwise.
func (a *Admin) AddManualEntry(ctx context.Context, raw string, lat, lon float64, parcelID string) error {
	if !ValidateBounds(lat, lon, a.region) {
		a.log.WarnContext(ctx, "Rejected manual entry outside region bounds",
			"address", raw, "lat", lat, "lon", lon, "region", a.region)
		return ErrOutOfBounds
	}

	addr := raw
	if formatted, ok := FormatForLookup(raw); ok {
		addr = formatted
	}

	record := models.LookupRecord{
		Address:   addr,
		Latitude:  lat,
		Longitude: lon,
		ParcelID:  parcelID,
	}
	if err := a.store.InsertLookupEntry(ctx, record); err != nil {
		return fmt.Errorf("failed to append manual entry: %w", err)
	}

	a.log.InfoContext(ctx, "Added manual entry to lookup table", "address", addr)

	return nil
}
