// Package valueobject holds the pure care rules: profile derivation from
// catalog data, plant/location compatibility and care scheduling.
package valueobject

import "github.com/shopspring/decimal"

// Height is a length reported by the plant catalog in centimetres, metres or both.
type Height struct {
	CM *decimal.Decimal
	M  *decimal.Decimal
}

// Centimetres converts the height to whole centimetres. Fractions are
// truncated. It reports false when neither unit carries a positive value.
func (h *Height) Centimetres() (int, bool) {
	if h == nil {
		return 0, false
	}
	if h.CM != nil && h.CM.IsPositive() {
		return int(h.CM.IntPart()), true
	}
	if h.M != nil && h.M.IsPositive() {
		return int(h.M.Mul(decimal.NewFromInt(100)).IntPart()), true
	}
	return 0, false
}

// SpeciesAttributes is the raw, partially populated species record returned by
// the plant catalog. Nil pointers and empty strings mean the catalog had no data.
type SpeciesAttributes struct {
	ExternalID     int64
	ScientificName string
	CommonName     string
	ImageURL       string
	Family         string
	Genus          string

	// SoilHumidity is a 0-10 soil moisture indicator.
	SoilHumidity *int
	// GrowthRate is a free-text category such as "fast" or "slow".
	GrowthRate string
	// Light is either a 0-10 number or a text descriptor like "part shade".
	Light string

	SpecificationMaxHeight *Height
	SpeciesMaxHeight       *Height
	GrowthMaxHeight        *Height
	AverageHeight          *Height

	MinimumTemperatureC *decimal.Decimal
	// AtmosphericHumidity is a 0-10 air humidity indicator.
	AtmosphericHumidity *int
	SoilTexture         string
	Toxicity            *string
}
