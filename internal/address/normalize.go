package address

import "strings"

// Normalize produces the single deterministic equality key for an address:
// "{number} {NAME} {CANONICAL_TYPE}" with the unit dropped and whitespace
// collapsed. An unregistered street type falls back to its uppercased
// literal.
//
// Normalize deliberately applies no ordinal word/numeral conversion, so
// "FIFTH ST" and "5TH ST" yield distinct keys. Equality testing uses this
// literal form; matching against the external lookup table is a separate,
// ordinal-aware operation owned by the resolver. Normalize is idempotent.
func Normalize(raw string) string {
	parsed := Parse(raw)

	streetType := strings.ToUpper(parsed.StreetType)
	if canonical, ok := CanonicalType(streetType); ok {
		streetType = canonical
	}

	return joinNonEmpty(parsed.StreetNumber, strings.ToUpper(parsed.StreetName), streetType)
}

// Match reports whether two raw addresses normalize to the same equality key.
func Match(addr1, addr2 string) bool {
	return Normalize(addr1) == Normalize(addr2)
}
