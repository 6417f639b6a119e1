package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/civicdata/permit-geocoder/internal/repository"
)

// lookupCSVColumns is the expected header of a lookup-table export:
// address text, coordinates, and the optional parcel number.
var lookupCSVColumns = []string{"original_address", "latitude", "longitude", "apn"}

// lookupCSVSource adapts a csv.Reader to the pgx.CopyFromSource interface,
// converting coordinate columns to float64 on the way through.
type lookupCSVSource struct {
	reader *csv.Reader
	row    []string
	err    error
}

func (s *lookupCSVSource) Next() bool {
	record, err := s.reader.Read()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	s.row = record
	return true
}

func (s *lookupCSVSource) Values() ([]any, error) {
	const columns = 4
	if len(s.row) != columns {
		return nil, fmt.Errorf("expected %d columns, got %d", columns, len(s.row))
	}

	lat, err := strconv.ParseFloat(s.row[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", s.row[1], err)
	}
	lon, err := strconv.ParseFloat(s.row[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", s.row[2], err)
	}

	var apn any
	if s.row[3] != "" {
		apn = s.row[3]
	}

	return []any{s.row[0], lat, lon, apn}, nil
}

func (s *lookupCSVSource) Err() error {
	return s.err
}

// ImportLookupCSV bulk-loads a lookup-table CSV export into the
// lookup_addresses table using the postgres COPY protocol. The first row
// must be a header matching lookupCSVColumns. Returns the number of rows
// copied.
func ImportLookupCSV(ctx context.Context, db repository.Database, r io.Reader, log *slog.Logger) (int64, error) {
	reader := csv.NewReader(bufio.NewReader(r))

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if !slices.Equal(header, lookupCSVColumns) {
		return 0, fmt.Errorf("unexpected CSV header %v, want %v", header, lookupCSVColumns)
	}

	source := &lookupCSVSource{reader: reader}

	copied, err := db.CopyFrom(
		ctx,
		pgx.Identifier{"lookup_addresses"},
		lookupCSVColumns,
		source,
	)
	if err != nil {
		return copied, fmt.Errorf("failed to copy lookup rows: %w", err)
	}

	log.InfoContext(ctx, "Imported lookup table rows", "rows", copied)

	return copied, nil
}
