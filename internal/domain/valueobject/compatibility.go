package valueobject

import (
	"fmt"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// maxLevelDifference is the largest light or humidity gap a plant tolerates.
const maxLevelDifference = 2

// MismatchKind identifies which environmental check failed.
type MismatchKind string

const (
	MismatchLight       MismatchKind = "light"
	MismatchHumidity    MismatchKind = "humidity"
	MismatchTemperature MismatchKind = "temperature"
	MismatchSpace       MismatchKind = "space"
	MismatchToxicity    MismatchKind = "toxicity"
)

// Mismatch is one failed check with a human-readable explanation.
type Mismatch struct {
	Kind   MismatchKind
	Reason string
}

// Compatibility is the outcome of matching a care profile against a location.
type Compatibility struct {
	Compatible bool
	Mismatches []Mismatch
}

// Reasons returns the explanation of every mismatch in check order.
func (c Compatibility) Reasons() []string {
	reasons := make([]string, 0, len(c.Mismatches))
	for _, m := range c.Mismatches {
		reasons = append(reasons, m.Reason)
	}
	return reasons
}

// Evaluate runs every compatibility check and collects all failures.
func Evaluate(profile *entity.CareProfile, location *entity.Location) Compatibility {
	var mismatches []Mismatch

	if abs(profile.SunlightRequirement-location.LightLevel) > maxLevelDifference {
		mismatches = append(mismatches, Mismatch{
			Kind: MismatchLight,
			Reason: fmt.Sprintf("light: plant needs %d, location has %d",
				profile.SunlightRequirement, location.LightLevel),
		})
	}

	if abs(profile.HumidityRequirement-location.HumidityLevel) > maxLevelDifference {
		mismatches = append(mismatches, Mismatch{
			Kind: MismatchHumidity,
			Reason: fmt.Sprintf("humidity: plant needs %d, location has %d",
				profile.HumidityRequirement, location.HumidityLevel),
		})
	}

	if location.TemperatureAvg < profile.TemperatureMin || location.TemperatureAvg > profile.TemperatureMax {
		mismatches = append(mismatches, Mismatch{
			Kind: MismatchTemperature,
			Reason: fmt.Sprintf("temperature: plant tolerates %d-%d°C, location averages %d°C",
				profile.TemperatureMin, profile.TemperatureMax, location.TemperatureAvg),
		})
	}

	if profile.MaxHeightCM > location.AvailableSpaceCM {
		mismatches = append(mismatches, Mismatch{
			Kind: MismatchSpace,
			Reason: fmt.Sprintf("space: plant grows to %d cm, location offers %d cm",
				profile.MaxHeightCM, location.AvailableSpaceCM),
		})
	}

	if profile.IsToxic && location.HasPetsOrChildren {
		mismatches = append(mismatches, Mismatch{
			Kind:   MismatchToxicity,
			Reason: "toxicity: plant is toxic and the location is reachable by pets or children",
		})
	}

	return Compatibility{
		Compatible: len(mismatches) == 0,
		Mismatches: mismatches,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
