package geocoding_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/civicdata/permit-geocoder/internal/geocoding"
	"github.com/civicdata/permit-geocoder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookupTable is a stub implementation of LookupTable for testing.
type stubLookupTable struct {
	findFunc func(ctx context.Context, addr string) (*models.LookupRecord, error)
	queries  []string
}

func (s *stubLookupTable) FindByAddress(ctx context.Context, addr string) (*models.LookupRecord, error) {
	s.queries = append(s.queries, addr)
	return s.findFunc(ctx, addr)
}

func TestFormatForLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{"non-ordinal name passes through unchanged", "2700 Shattuck Ave", "2700 Shattuck Av", true},
		{"word ordinal converted to numeral", "1914 FIFTH ST", "1914 5th St", true},
		{"numeral ordinal suffix lowercased", "1914 5TH ST", "1914 5th St", true},
		{"mixed case ordinal", "1914 Fifth Street", "1914 5th St", true},
		{"numeral ordinal with full type spelling", "501 10TH TERRACE", "501 10th Te", true},
		{"terrace maps to lookup short form", "2420 Vista TER", "2420 Vista Te", true},
		{"circle maps to lookup short form", "5 Tunnel Cir", "5 Tunnel Ci", true},
		{"unknown type falls back to title case", "12 Main Rue", "12 Main Rue", true},
		{"two tokens rejected", "2700 Shattuck", "", false},
		{"four tokens rejected", "123 Multi Word Lane", "", false},
		{"empty rejected", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := geocoding.FormatForLookup(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("success - exact match in lookup table", func(t *testing.T) {
		t.Parallel()
		table := &stubLookupTable{
			findFunc: func(_ context.Context, addr string) (*models.LookupRecord, error) {
				require.Equal(t, "2700 Shattuck Av", addr)
				return &models.LookupRecord{
					Address:   "2700 Shattuck Av",
					Latitude:  37.8599,
					Longitude: -122.2672,
					ParcelID:  "054-1720-010",
				}, nil
			},
		}
		resolver := geocoding.NewResolver(table, logger)

		result, err := resolver.Resolve(ctx, "2700 Shattuck Ave")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.InEpsilon(t, 37.8599, result.Latitude, 0.0001)
		assert.InEpsilon(t, -122.2672, result.Longitude, 0.0001)
		assert.Equal(t, "054-1720-010", result.ParcelID)
		assert.Equal(t, "2700 Shattuck Av", result.MatchedAddress)
		assert.Equal(t, "2700 Shattuck Av", result.NormalizedQuery)
	})

	t.Run("success - word ordinal resolves to numeral row", func(t *testing.T) {
		t.Parallel()
		table := &stubLookupTable{
			findFunc: func(_ context.Context, addr string) (*models.LookupRecord, error) {
				require.Equal(t, "1914 5th St", addr)
				return &models.LookupRecord{Address: "1914 5th St", Latitude: 37.8701, Longitude: -122.2995}, nil
			},
		}
		resolver := geocoding.NewResolver(table, logger)

		result, err := resolver.Resolve(ctx, "1914 FIFTH ST")

		require.NoError(t, err)
		assert.Equal(t, "1914 5th St", result.NormalizedQuery)
		assert.Empty(t, result.ParcelID)
	})

	t.Run("miss - table returns not found", func(t *testing.T) {
		t.Parallel()
		table := &stubLookupTable{
			findFunc: func(_ context.Context, _ string) (*models.LookupRecord, error) {
				return nil, geocoding.ErrAddressNotFound
			},
		}
		resolver := geocoding.NewResolver(table, logger)

		result, err := resolver.Resolve(ctx, "9999 Nowhere St")

		require.Nil(t, result)
		require.ErrorIs(t, err, geocoding.ErrNoMatch)
	})

	t.Run("miss - malformed token count skips table", func(t *testing.T) {
		t.Parallel()
		table := &stubLookupTable{
			findFunc: func(_ context.Context, _ string) (*models.LookupRecord, error) {
				return nil, geocoding.ErrAddressNotFound
			},
		}
		resolver := geocoding.NewResolver(table, logger)

		result, err := resolver.Resolve(ctx, "123 Multi Word Lane")

		require.Nil(t, result)
		require.ErrorIs(t, err, geocoding.ErrNoMatch)
		assert.Empty(t, table.queries, "malformed address must not reach the table")
	})

	t.Run("error - table failure is not a miss", func(t *testing.T) {
		t.Parallel()
		table := &stubLookupTable{
			findFunc: func(_ context.Context, _ string) (*models.LookupRecord, error) {
				return nil, assert.AnError
			},
		}
		resolver := geocoding.NewResolver(table, logger)

		result, err := resolver.Resolve(ctx, "2700 Shattuck Ave")

		require.Nil(t, result)
		require.Error(t, err)
		require.NotErrorIs(t, err, geocoding.ErrNoMatch)
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to query lookup table")
	})
}
