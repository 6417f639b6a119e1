package models

// ParsedAddress holds the components of a street address after tokenization.
// Unit is informational only: it never participates in normalized or
// lookup forms of the address.
type ParsedAddress struct {
	StreetNumber string // StreetNumber is the leading house number, possibly with one trailing letter ("1914A").
	StreetName   string // StreetName is the free-text street name, possibly multi-word.
	StreetType   string // StreetType is the trailing type token as written ("Ave", "ST"), empty if unrecognized.
	Unit         string // Unit is the apartment/suite identifier, if an explicit marker was present.
	Original     string // Original is the source text exactly as received.
}

// LookupRecord is one row of the external address reference table.
type LookupRecord struct {
	Address   string  // Address in the provider's canonical form ("1914 5th St").
	Latitude  float64 // Latitude of the address point.
	Longitude float64 // Longitude of the address point.
	ParcelID  string  // ParcelID is the assessor parcel number, may be empty.
}

// GeocodeResult is the outcome of a successful lookup resolution.
// It is created per call and discarded by the caller.
type GeocodeResult struct {
	Latitude        float64 // Latitude of the matched record.
	Longitude       float64 // Longitude of the matched record.
	ParcelID        string  // ParcelID of the matched record, may be empty.
	MatchedAddress  string  // MatchedAddress is the record's address text as stored in the table.
	NormalizedQuery string  // NormalizedQuery is the query string the resolver built for the lookup.
}
