package geocoding

// Bounds is a closed rectangular coordinate interval.
type Bounds struct {
	LatMin float64 // LatMin is the southern edge of the box.
	LatMax float64 // LatMax is the northern edge of the box.
	LonMin float64 // LonMin is the western edge of the box.
	LonMax float64 // LonMax is the eastern edge of the box.
}

// regionBounds holds the fixed bounding box for each supported region.
var regionBounds = map[string]Bounds{
	"Berkeley": {
		LatMin: 37.84,
		LatMax: 37.91,
		LonMin: -122.32,
		LonMax: -122.23,
	},
}

// ValidateBounds reports whether both coordinates fall within the closed
// interval configured for the named region. Unknown regions validate
// nothing and report false. The check guards only the manual-entry
// administrative path; resolver output from the external table is trusted
// without re-validation.
func ValidateBounds(lat, lon float64, region string) bool {
	bounds, ok := regionBounds[region]
	if !ok {
		return false
	}

	return bounds.LatMin <= lat && lat <= bounds.LatMax &&
		bounds.LonMin <= lon && lon <= bounds.LonMax
}
