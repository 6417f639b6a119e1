package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/civicdata/permit-geocoder/internal/geocoding"
	"github.com/civicdata/permit-geocoder/internal/models"
)

// FetchPermitsForGeocoding retrieves permits that still need geocoding:
// NULL latitude, not closed, fewer than 5 attempts, and a non-empty
// address. Results are ordered by creation date and limited to the
// specified count.
func (r *Repository) FetchPermitsForGeocoding(ctx context.Context, limit int) ([]models.Permit, error) {
	var permits []models.Permit
	query := `
		SELECT permit_id, address
		FROM public.permits
		WHERE
			latitude IS NULL
			AND is_closed = false
			AND geocoding_attempts < 5
			AND address IS NOT NULL AND address <> ''
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query permits without coordinates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var permit models.Permit
		if errScan := rows.Scan(&permit.ID, &permit.Address); errScan != nil {
			return nil, fmt.Errorf("failed to scan permit row: %w", errScan)
		}
		r.log.DebugContext(ctx, "Fetched permit without coordinates",
			"ID", permit.ID, "Address", permit.Address)
		permits = append(permits, permit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return permits, nil
}

// UpdatePermitCoordinates stores the resolved coordinates and parcel
// identifier for a permit and clears any previous geocoding error.
func (r *Repository) UpdatePermitCoordinates(
	ctx context.Context,
	permitID int,
	coords models.Coordinates,
	parcelID string,
) error {
	query := `
		UPDATE permits
		SET
			latitude = $1,
			longitude = $2,
			parcel_id = NULLIF($3, ''),
			geocoding_error = NULL
		WHERE
			permit_id = $4;
	`

	_, err := r.db.Exec(ctx, query, coords.Latitude, coords.Longitude, parcelID, permitID)
	if err != nil {
		return fmt.Errorf("failed to update permit coordinates: %w", err)
	}

	return nil
}

// IncrementFailureCount bumps the geocoding attempt count for a permit and
// records the outcome message, including routine lookup misses. Permits
// over the attempt limit stop being fetched for geocoding.
func (r *Repository) IncrementFailureCount(ctx context.Context, permitID int, errMsg string) error {
	query := `
		UPDATE permits
		SET
			geocoding_attempts = geocoding_attempts + 1,
			geocoding_error = $1
		WHERE permit_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, permitID)
	if err != nil {
		return fmt.Errorf("failed to update geocoding error and number of attempts: %w", err)
	}

	return nil
}

// FindByAddress performs the exact string-equality lookup the resolver
// depends on. Duplicate rows with the same address text are possible in the
// reference data; ordering by id makes "first match wins" deterministic
// rather than silently deduplicating.
func (r *Repository) FindByAddress(ctx context.Context, addr string) (*models.LookupRecord, error) {
	query := `
		SELECT original_address, latitude, longitude, COALESCE(apn, '')
		FROM public.lookup_addresses
		WHERE original_address = $1
		ORDER BY id ASC
		LIMIT 1;
	`

	var record models.LookupRecord
	err := r.db.QueryRow(ctx, query, addr).
		Scan(&record.Address, &record.Latitude, &record.Longitude, &record.ParcelID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, geocoding.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to query lookup address: %w", err)
	}

	return &record, nil
}

// InsertLookupEntry appends one row to the lookup table. Used only by the
// administrative manual-entry path, never by batch resolution.
func (r *Repository) InsertLookupEntry(ctx context.Context, record models.LookupRecord) error {
	query := `
		INSERT INTO public.lookup_addresses (original_address, latitude, longitude, apn)
		VALUES ($1, $2, $3, NULLIF($4, ''));
	`

	_, err := r.db.Exec(ctx, query, record.Address, record.Latitude, record.Longitude, record.ParcelID)
	if err != nil {
		return fmt.Errorf("failed to insert lookup entry: %w", err)
	}

	return nil
}

// CountLookupEntries returns the current lookup table row count.
func (r *Repository) CountLookupEntries(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM public.lookup_addresses;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count lookup entries: %w", err)
	}

	return count, nil
}

// InsertPermits stores fetched permit records, skipping permit numbers that
// are already present. It returns the number of newly inserted rows.
func (r *Repository) InsertPermits(ctx context.Context, records []models.PermitRecord) (int, error) {
	query := `
		INSERT INTO public.permits (permit_number, address, status, filed_date, issued_date, net_units)
		VALUES ($1, $2, $3, NULLIF($4, '')::date, NULLIF($5, '')::date, NULLIF($6, '')::int)
		ON CONFLICT (permit_number) DO NOTHING;
	`

	inserted := 0
	for _, rec := range records {
		tag, err := r.db.Exec(ctx, query,
			rec.PermitNumber, rec.Address, rec.Status, rec.FiledDate, rec.IssuedDate, rec.NetUnits)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert permit %q: %w", rec.PermitNumber, err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ListPermits returns permit rows with their geocoding outcome, for status
// reporting.
func (r *Repository) ListPermits(ctx context.Context) ([]models.PermitDetail, error) {
	query := `
		SELECT permit_number, address, COALESCE(status, ''), COALESCE(net_units, 0), latitude, longitude
		FROM public.permits
		ORDER BY permit_number ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permits: %w", err)
	}
	defer rows.Close()

	var permits []models.PermitDetail
	for rows.Next() {
		var detail models.PermitDetail
		if errScan := rows.Scan(
			&detail.PermitNumber, &detail.Address, &detail.Status,
			&detail.NetUnits, &detail.Latitude, &detail.Longitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan permit detail: %w", errScan)
		}
		permits = append(permits, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return permits, nil
}
