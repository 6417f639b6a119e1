package address_test

import (
	"testing"

	"github.com/civicdata/permit-geocoder/internal/address"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"folds type spelling to canonical", "2700 Shattuck Avenue", "2700 SHATTUCK AV"},
		{"canonical spelling kept", "2700 shattuck av", "2700 SHATTUCK AV"},
		{"unit dropped", "1914 Fifth St #3", "1914 FIFTH ST"},
		{"no ordinal conversion", "1914 5th Street", "1914 5TH ST"},
		{"unregistered type uppercased literally", "12 Main Rue", "12 MAIN RUE"},
		{"multi word name preserved", "1 Martin Luther King Jr Way", "1 MARTIN LUTHER KING JR WY"},
		{"missing number", "University Ave", "UNIVERSITY AV"},
		{"whitespace collapsed", "  1914   5TH   ST  ", "1914 5TH ST"},
		{"empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, address.Normalize(tc.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2700 Shattuck Avenue",
		"1914 Fifth St #3",
		"1914 5th Street",
		"1 Martin Luther King Jr Way",
		"12 Main Rue",
	}

	for _, input := range inputs {
		once := address.Normalize(input)
		assert.Equal(t, once, address.Normalize(once), "input %q", input)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("type spellings in the same group match", func(t *testing.T) {
		t.Parallel()
		assert.True(t, address.Match("2700 Shattuck Ave", "2700 SHATTUCK AVENUE"))
	})

	t.Run("unit does not affect matching", func(t *testing.T) {
		t.Parallel()
		assert.True(t, address.Match("1914 Fifth St #3", "1914 FIFTH STREET"))
	})

	t.Run("word and numeral ordinals stay distinct", func(t *testing.T) {
		t.Parallel()
		assert.False(t, address.Match("1914 5th St", "1914 Fifth St"))
	})

	t.Run("different numbers do not match", func(t *testing.T) {
		t.Parallel()
		assert.False(t, address.Match("1914 5th St", "1916 5th St"))
	})
}
