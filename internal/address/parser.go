package address

import (
	"regexp"
	"strings"

	"github.com/civicdata/permit-geocoder/internal/models"
)

// unitPattern matches an explicit unit marker followed by its identifier,
// anchored at the end of the address ("#101", "APT 4B", "Suite 200").
// A bare trailing token without a marker is never treated as a unit.
var unitPattern = regexp.MustCompile(`(?i)(#|APT\.?|UNIT|STE\.?|SUITE)\s*([A-Z0-9-]+)\s*$`)

// numberPattern matches a street number: digits with at most one trailing
// letter ("1914", "1914A").
var numberPattern = regexp.MustCompile(`(?i)^\d+[A-Z]?$`)

// Parse decomposes a raw address string into its components. It is total:
// it never fails, and empty or unparseable input yields empty fields with
// Original preserved.
//
// The first whitespace token becomes the street number if it is numeric or
// numeric with one trailing letter. The last remaining token becomes the
// street type if its uppercased form is a registered spelling; original
// casing is preserved. Everything left, space-joined, is the street name.
// Only the final token is examined for type-likeness, so an earlier
// type-like word stays embedded in the street name.
func Parse(raw string) models.ParsedAddress {
	result := models.ParsedAddress{Original: raw}

	addr := strings.TrimSpace(raw)
	if addr == "" {
		return result
	}

	if loc := unitPattern.FindStringSubmatchIndex(addr); loc != nil {
		result.Unit = addr[loc[4]:loc[5]]
		addr = strings.TrimSpace(addr[:loc[0]])
	}

	parts := strings.Fields(addr)
	if len(parts) == 0 {
		return result
	}

	if numberPattern.MatchString(parts[0]) {
		result.StreetNumber = parts[0]
		parts = parts[1:]
	}

	if len(parts) == 0 {
		return result
	}

	if _, ok := CanonicalType(parts[len(parts)-1]); ok {
		result.StreetType = parts[len(parts)-1]
		parts = parts[:len(parts)-1]
	}

	result.StreetName = strings.Join(parts, " ")

	return result
}
