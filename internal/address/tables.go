package address

import "strings"

// streetTypes maps each canonical street-type abbreviation to the ordered
// list of spellings accepted for it. The canonical form is the short county
// style abbreviation ("AV" for Ave/Avenue). The table is process-wide,
// built once and never mutated.
var streetTypes = map[string][]string{
	"ST":  {"ST", "STREET", "STR"},
	"AV":  {"AV", "AVE", "AVENUE"},
	"WY":  {"WY", "WAY"},
	"BL":  {"BL", "BLVD", "BOULEVARD"},
	"RD":  {"RD", "ROAD"},
	"DR":  {"DR", "DRIVE"},
	"LN":  {"LN", "LANE"},
	"PL":  {"PL", "PLACE"},
	"CT":  {"CT", "COURT", "CRT"},
	"CR":  {"CR", "CIR", "CIRCLE"},
	"TER": {"TER", "TERR", "TERRACE"},
	"PK":  {"PK", "PARK", "PKWY", "PARKWAY"},
	"SQ":  {"SQ", "SQUARE"},
	"HWY": {"HWY", "HIGHWAY"},
}

// typeToCanonical is the reverse index derived from streetTypes:
// uppercased spelling -> canonical abbreviation. Deriving it here keeps the
// forward table and the index from drifting apart.
var typeToCanonical = func() map[string]string {
	index := make(map[string]string)
	for canonical, spellings := range streetTypes {
		for _, spelling := range spellings {
			index[spelling] = canonical
		}
	}
	return index
}()

// numberedStreets maps word-form ordinal street names to their numeral form
// and back, covering positions one through twelve. Applying the mapping
// twice restores the original modulo case.
var numberedStreets = map[string]string{
	"1ST": "FIRST", "FIRST": "1ST",
	"2ND": "SECOND", "SECOND": "2ND",
	"3RD": "THIRD", "THIRD": "3RD",
	"4TH": "FOURTH", "FOURTH": "4TH",
	"5TH": "FIFTH", "FIFTH": "5TH",
	"6TH": "SIXTH", "SIXTH": "6TH",
	"7TH": "SEVENTH", "SEVENTH": "7TH",
	"8TH": "EIGHTH", "EIGHTH": "8TH",
	"9TH": "NINTH", "NINTH": "9TH",
	"10TH": "TENTH", "TENTH": "10TH",
	"11TH": "ELEVENTH", "ELEVENTH": "11TH",
	"12TH": "TWELFTH", "TWELFTH": "12TH",
}

// CanonicalType resolves a street-type spelling to its canonical
// abbreviation, case-insensitively. The second return reports whether the
// spelling is registered.
func CanonicalType(spelling string) (string, bool) {
	canonical, ok := typeToCanonical[strings.ToUpper(spelling)]
	return canonical, ok
}

// OrdinalAlternate returns the opposite form of an ordinal street name
// ("FIFTH" -> "5TH", "5TH" -> "FIFTH"), case-insensitively. Names outside
// the first twelve ordinals report false.
func OrdinalAlternate(name string) (string, bool) {
	alternate, ok := numberedStreets[strings.ToUpper(name)]
	return alternate, ok
}
