package address_test

import (
	"testing"

	"github.com/civicdata/permit-geocoder/internal/address"
	"github.com/civicdata/permit-geocoder/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected models.ParsedAddress
	}{
		{
			name:  "number name and type",
			input: "1914 5TH ST",
			expected: models.ParsedAddress{
				StreetNumber: "1914",
				StreetName:   "5TH",
				StreetType:   "ST",
				Original:     "1914 5TH ST",
			},
		},
		{
			name:  "mixed case type spelling preserved",
			input: "2700 Shattuck Avenue",
			expected: models.ParsedAddress{
				StreetNumber: "2700",
				StreetName:   "Shattuck",
				StreetType:   "Avenue",
				Original:     "2700 Shattuck Avenue",
			},
		},
		{
			name:  "number with trailing letter",
			input: "1914A 5TH ST",
			expected: models.ParsedAddress{
				StreetNumber: "1914A",
				StreetName:   "5TH",
				StreetType:   "ST",
				Original:     "1914A 5TH ST",
			},
		},
		{
			name:  "unit with hash marker",
			input: "2700 SHATTUCK AVE #101",
			expected: models.ParsedAddress{
				StreetNumber: "2700",
				StreetName:   "SHATTUCK",
				StreetType:   "AVE",
				Unit:         "101",
				Original:     "2700 SHATTUCK AVE #101",
			},
		},
		{
			name:  "unit with apt marker",
			input: "2120 Berkeley Way Apt 4B",
			expected: models.ParsedAddress{
				StreetNumber: "2120",
				StreetName:   "Berkeley",
				StreetType:   "Way",
				Unit:         "4B",
				Original:     "2120 Berkeley Way Apt 4B",
			},
		},
		{
			name:  "trailing token without marker is not a unit",
			input: "1914 5TH ST 101",
			expected: models.ParsedAddress{
				StreetNumber: "1914",
				StreetName:   "5TH ST 101",
				Original:     "1914 5TH ST 101",
			},
		},
		{
			name:  "missing street number",
			input: "University Ave",
			expected: models.ParsedAddress{
				StreetName: "University",
				StreetType: "Ave",
				Original:   "University Ave",
			},
		},
		{
			name:  "missing street type",
			input: "2120 Vine",
			expected: models.ParsedAddress{
				StreetNumber: "2120",
				StreetName:   "Vine",
				Original:     "2120 Vine",
			},
		},
		{
			name:  "multi word street name",
			input: "1 Martin Luther King Jr Way",
			expected: models.ParsedAddress{
				StreetNumber: "1",
				StreetName:   "Martin Luther King Jr",
				StreetType:   "Way",
				Original:     "1 Martin Luther King Jr Way",
			},
		},
		{
			name:  "type-like word embedded in name stays in name",
			input: "2000 Parker St",
			expected: models.ParsedAddress{
				StreetNumber: "2000",
				StreetName:   "Parker",
				StreetType:   "St",
				Original:     "2000 Parker St",
			},
		},
		{
			name:  "marker prefix inside a word is not a unit",
			input: "1600 Steiner St",
			expected: models.ParsedAddress{
				StreetNumber: "1600",
				StreetName:   "Steiner",
				StreetType:   "St",
				Original:     "1600 Steiner St",
			},
		},
		{
			name:  "surrounding whitespace ignored",
			input: "  1914   5TH   ST  ",
			expected: models.ParsedAddress{
				StreetNumber: "1914",
				StreetName:   "5TH",
				StreetType:   "ST",
				Original:     "  1914   5TH   ST  ",
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: models.ParsedAddress{},
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: models.ParsedAddress{Original: "   "},
		},
		{
			name:  "number only",
			input: "1914",
			expected: models.ParsedAddress{
				StreetNumber: "1914",
				Original:     "1914",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, address.Parse(tc.input))
		})
	}
}

func TestCanonicalType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spelling  string
		canonical string
		ok        bool
	}{
		{"AVE", "AV", true},
		{"avenue", "AV", true},
		{"St", "ST", true},
		{"STREET", "ST", true},
		{"TERRACE", "TER", true},
		{"PKWY", "PK", true},
		{"RUE", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		canonical, ok := address.CanonicalType(tc.spelling)
		assert.Equal(t, tc.ok, ok, "spelling %q", tc.spelling)
		assert.Equal(t, tc.canonical, canonical, "spelling %q", tc.spelling)
	}
}

func TestOrdinalAlternate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		alternate string
		ok        bool
	}{
		{"FIFTH", "5TH", true},
		{"fifth", "5TH", true},
		{"5TH", "FIFTH", true},
		{"12th", "TWELFTH", true},
		{"THIRTEENTH", "", false},
		{"SHATTUCK", "", false},
	}

	for _, tc := range tests {
		alternate, ok := address.OrdinalAlternate(tc.name)
		assert.Equal(t, tc.ok, ok, "name %q", tc.name)
		assert.Equal(t, tc.alternate, alternate, "name %q", tc.name)
	}
}
