package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/civicdata/permit-geocoder/internal/address"
	"github.com/civicdata/permit-geocoder/internal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNoMatch is returned when an address cannot be resolved against the
// lookup table, either because it does not split into the expected
// number/name/type tokens or because no table row carries the reformatted
// address. Misses are the expected common case for imperfect source data;
// batch callers must treat them as routine.
var ErrNoMatch = errors.New("no exact match in lookup table")

// ErrAddressNotFound is the sentinel a LookupTable implementation returns
// when no row carries the queried address text.
var ErrAddressNotFound = errors.New("address not found in lookup table")

// LookupTable is the narrow read-only view of the external address
// reference dataset: keyed equality lookup by address text, nothing else.
// The resolution path never mutates the table.
type LookupTable interface {
	FindByAddress(ctx context.Context, addr string) (*models.LookupRecord, error)
}

// ordinalPattern matches a numeral ordinal street name with an uppercase
// alphabetic suffix ("5TH", "1ST").
var ordinalPattern = regexp.MustCompile(`^(\d+)(ST|ND|RD|TH)$`)

// lookupTypes maps every known street-type spelling directly to the
// title-cased short form used by the county lookup table. This table is
// intentionally separate from the general synonym table: it targets exactly
// one external formatting convention.
var lookupTypes = map[string]string{
	"ST": "St", "STREET": "St",
	"AV": "Av", "AVE": "Av", "AVENUE": "Av",
	"WY": "Wy", "WAY": "Wy",
	"BL": "Bl", "BLVD": "Bl", "BOULEVARD": "Bl",
	"RD": "Rd", "ROAD": "Rd",
	"DR": "Dr", "DRIVE": "Dr",
	"PL": "Pl", "PLACE": "Pl",
	"CT": "Ct", "COURT": "Ct",
	"LN": "Ln", "LANE": "Ln",
	"SQ": "Sq", "SQUARE": "Sq",
	"TE": "Te", "TER": "Te", "TERRACE": "Te",
	"CI": "Ci", "CIR": "Ci", "CIRCLE": "Ci",
}

// Resolver reformats raw addresses into the lookup table's convention and
// performs exact-match resolution against it.
type Resolver struct {
	table LookupTable  // table is the external reference dataset.
	log   *slog.Logger // log is the logger for logging operations.
}

// NewResolver creates a Resolver backed by the given lookup table.
func NewResolver(table LookupTable, log *slog.Logger) *Resolver {
	return &Resolver{table: table, log: log}
}

// FormatForLookup reformats a raw address into the lookup table's
// convention: exactly three whitespace tokens (number, name, type), the
// name converted from word-ordinal to numeral-ordinal with a lowercase
// suffix ("FIFTH" -> "5th", "5TH" -> "5th"), and the type mapped through
// the lookup-specific table (falling back to the title-cased literal).
// Non-ordinal names pass through unchanged. The second return is false for
// any other token count; multi-word street names are unsupported by this
// path by design.
func FormatForLookup(raw string) (string, bool) {
	const tokenCount = 3

	parts := strings.Fields(raw)
	if len(parts) != tokenCount {
		return "", false
	}

	number, name, streetType := parts[0], parts[1], parts[2]

	nameUpper := strings.ToUpper(name)
	if alternate, ok := address.OrdinalAlternate(nameUpper); ok && alternate[0] >= '0' && alternate[0] <= '9' {
		nameUpper = alternate
	}
	if m := ordinalPattern.FindStringSubmatch(nameUpper); m != nil {
		name = m[1] + strings.ToLower(m[2])
	}

	if mapped, ok := lookupTypes[strings.ToUpper(streetType)]; ok {
		streetType = mapped
	} else {
		streetType = cases.Title(language.English).String(strings.ToLower(streetType))
	}

	return number + " " + name + " " + streetType, true
}

// Resolve reformats the raw address and performs an exact string-equality
// lookup against the external table. A malformed token count and a table
// miss are both ordinary ErrNoMatch outcomes, not failures. When duplicate
// rows carry the same address text the first one encountered wins; this is
// a known, intentionally unresolved limitation of the reference data, not
// an error.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*models.GeocodeResult, error) {
	query, ok := FormatForLookup(raw)
	if !ok {
		r.log.DebugContext(ctx, "Address does not split into number/name/type", "address", raw)
		return nil, ErrNoMatch
	}

	record, err := r.table.FindByAddress(ctx, query)
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("failed to query lookup table: %w", err)
	}

	r.log.DebugContext(ctx, "Resolved address from lookup table",
		"address", raw, "query", query, "matched", record.Address)

	return &models.GeocodeResult{
		Latitude:        record.Latitude,
		Longitude:       record.Longitude,
		ParcelID:        record.ParcelID,
		MatchedAddress:  record.Address,
		NormalizedQuery: query,
	}, nil
}
