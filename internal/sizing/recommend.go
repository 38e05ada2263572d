package sizing

import "github.com/freemanindumentaria/storefront-backend/internal/catalog"

// Build is the self-reported body-frame category.
type Build string

const (
	BuildSmall  Build = "small"
	BuildMedium Build = "medium"
	BuildLarge  Build = "large"
)

// Valid reports whether the build is one of the known categories.
func (b Build) Valid() bool {
	switch b {
	case BuildSmall, BuildMedium, BuildLarge:
		return true
	}
	return false
}

const (
	minHeightCM = 140
	maxHeightCM = 220
	minWeightKG = 40
	maxWeightKG = 150
)

// band holds the three candidate sizes for a height band and the BMI
// thresholds that separate them.
type band struct {
	low, mid, high catalog.Size
	lowBMI, midBMI float64
}

// Recommend maps height, weight and build to a size label. It returns
// ok=false for inputs outside the supported ranges rather than an error.
//
// Within a band, a BMI below the low threshold or a declared small build
// picks the low size; a BMI below the high threshold or a medium build picks
// the middle size; everything else gets the high size. Build therefore
// overrides BMI for small and medium frames; that matches the storefront's
// published sizing guidance. The tallest band uses BMI alone.
func Recommend(heightCM, weightKG float64, build Build) (catalog.Size, bool) {
	// The comparisons are written so NaN falls out as invalid.
	if !(heightCM >= minHeightCM && heightCM <= maxHeightCM) {
		return "", false
	}
	if !(weightKG >= minWeightKG && weightKG <= maxWeightKG) {
		return "", false
	}

	meters := heightCM / 100
	bmi := weightKG / (meters * meters)

	if heightCM >= 185 {
		if bmi < 24 {
			return catalog.SizeXL, true
		}
		return catalog.SizeXXL, true
	}

	var b band
	switch {
	case heightCM < 165:
		b = band{low: catalog.SizeS, mid: catalog.SizeM, high: catalog.SizeL, lowBMI: 20, midBMI: 25}
	case heightCM < 175:
		b = band{low: catalog.SizeM, mid: catalog.SizeL, high: catalog.SizeXL, lowBMI: 20, midBMI: 25}
	default:
		b = band{low: catalog.SizeL, mid: catalog.SizeXL, high: catalog.SizeXXL, lowBMI: 22, midBMI: 27}
	}

	switch {
	case bmi < b.lowBMI || build == BuildSmall:
		return b.low, true
	case bmi < b.midBMI || build == BuildMedium:
		return b.mid, true
	default:
		return b.high, true
	}
}

// Measurements returns the size-chart row for a recommended size. Every size
// Recommend can return has a row.
func Measurements(size catalog.Size) (catalog.SizeMeasurements, bool) {
	return catalog.MeasurementsFor(size)
}
