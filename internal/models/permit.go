package models

// Permit represents a geocoding job for one municipal permit record.
type Permit struct {
	ID      int    // ID is the unique identifier of the permit row.
	Address string // Address is the free-text location to be geocoded.
}

// PermitDetail is a permit row as persisted, with whatever geocoding
// outcome it has accumulated. Used by status reporting.
type PermitDetail struct {
	PermitNumber string   // PermitNumber is the municipal permit identifier.
	Address      string   // Address is the free-text permit location.
	Status       string   // Status is the raw status text from the source record.
	NetUnits     int      // NetUnits is the net dwelling units the permit adds.
	Latitude     *float64 // Latitude is nil until the permit is geocoded.
	Longitude    *float64 // Longitude is nil until the permit is geocoded.
}

// PermitRecord is a permit row as fetched from the open-data portal,
// before it is persisted for geocoding.
type PermitRecord struct {
	PermitNumber string `json:"permit_number"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	FiledDate    string `json:"filed_date"`
	IssuedDate   string `json:"issued_date"`
	NetUnits     string `json:"net_units"`
}
