package valueobject

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

const (
	fastGrowthRepotIntervalDays = 365
	tropicalHumidityThreshold   = 8
	tropicalTemperatureMin      = 18
	tropicalTemperatureMax      = 28
	minScaleValue               = 1
	maxScaleValue               = 10
)

// averageHeightMargin inflates an average height into a maximum height.
var averageHeightMargin = decimal.RequireFromString("1.2")

// soilHumidityBand maps a soil moisture threshold to watering and humidity needs.
type soilHumidityBand struct {
	threshold         int
	waterIntervalDays int
	humidity          int
}

// soilHumidityBands is ordered from wettest to driest; the first matching band wins.
var soilHumidityBands = []soilHumidityBand{
	{threshold: 9, waterIntervalDays: 2, humidity: 9},
	{threshold: 7, waterIntervalDays: 3, humidity: 7},
	{threshold: 5, waterIntervalDays: 7, humidity: 5},
	{threshold: 3, waterIntervalDays: 14, humidity: 3},
	{threshold: 0, waterIntervalDays: 21, humidity: 2},
}

var fertilizeIntervalByGrowthRate = map[string]int{
	"fast":     14,
	"moderate": 30,
	"slow":     60,
}

var soilTextureKeywords = []struct {
	keyword string
	soil    entity.SoilType
}{
	{"sand", entity.SoilSandy},
	{"clay", entity.SoilLoamy},
	{"loam", entity.SoilHumusRich},
}

var nonToxicValues = map[string]bool{
	"none":  true,
	"null":  true,
	"low":   true,
	"0":     true,
	"false": true,
}

// DeriveCareProfile builds a complete care profile from raw catalog attributes.
// The result is deterministic for a given input. When the derived values are
// indistinguishable from the defaults, species keyword heuristics fill the gaps.
func DeriveCareProfile(attrs SpeciesAttributes) *entity.CareProfile {
	profile := entity.NewCareProfile(attrs.ExternalID, attrs.ScientificName, attrs.CommonName, attrs.ImageURL)

	profile.WaterIntervalDays, profile.HumidityRequirement = waterAndHumidity(attrs.SoilHumidity)
	profile.FertilizeIntervalDays = fertilizeInterval(attrs.GrowthRate)
	if normalizeGrowthRate(attrs.GrowthRate) == "fast" {
		profile.RepotIntervalDays = fastGrowthRepotIntervalDays
	}
	profile.SunlightRequirement = sunlightRequirement(attrs.Light)
	profile.MaxHeightCM = maxHeight(attrs)
	profile.TemperatureMin, profile.TemperatureMax = temperatureRange(attrs.MinimumTemperatureC, attrs.AtmosphericHumidity)
	profile.SoilType = soilType(attrs.SoilTexture)
	profile.IsToxic = isToxic(attrs.Toxicity)

	if IsDefaultish(profile) {
		applySpeciesHeuristics(profile, speciesNameBlob(attrs))
	}

	return profile
}

func waterAndHumidity(soilHumidity *int) (int, int) {
	if soilHumidity == nil {
		return entity.DefaultWaterIntervalDays, entity.DefaultHumidityRequirement
	}
	for _, band := range soilHumidityBands {
		if *soilHumidity >= band.threshold {
			return band.waterIntervalDays, band.humidity
		}
	}
	last := soilHumidityBands[len(soilHumidityBands)-1]
	return last.waterIntervalDays, last.humidity
}

func normalizeGrowthRate(rate string) string {
	return strings.ToLower(strings.TrimSpace(rate))
}

func fertilizeInterval(rate string) int {
	if days, ok := fertilizeIntervalByGrowthRate[normalizeGrowthRate(rate)]; ok {
		return days
	}
	return entity.DefaultFertilizeIntervalDays
}

func sunlightRequirement(light string) int {
	light = strings.TrimSpace(light)
	if light == "" {
		return entity.DefaultSunlightRequirement
	}
	if value, err := strconv.Atoi(light); err == nil {
		return clampScale(value)
	}
	text := strings.ToLower(light)
	switch {
	case strings.Contains(text, "full sun"):
		return 10
	case strings.Contains(text, "part shade"):
		return 6
	case strings.Contains(text, "shade"):
		return 3
	default:
		return entity.DefaultSunlightRequirement
	}
}

func maxHeight(attrs SpeciesAttributes) int {
	for _, h := range []*Height{attrs.SpecificationMaxHeight, attrs.SpeciesMaxHeight, attrs.GrowthMaxHeight} {
		if cm, ok := h.Centimetres(); ok {
			return cm
		}
	}
	if attrs.AverageHeight != nil && attrs.AverageHeight.CM != nil && attrs.AverageHeight.CM.IsPositive() {
		if cm := int(attrs.AverageHeight.CM.Mul(averageHeightMargin).IntPart()); cm > 0 {
			return cm
		}
	}
	return entity.DefaultMaxHeightCM
}

func temperatureRange(minimum *decimal.Decimal, atmosphericHumidity *int) (int, int) {
	tmin, tmax := entity.DefaultTemperatureMin, entity.DefaultTemperatureMax
	if minimum != nil {
		tmin = int(minimum.IntPart())
	}
	if atmosphericHumidity != nil && *atmosphericHumidity >= tropicalHumidityThreshold {
		tmin, tmax = tropicalTemperatureMin, tropicalTemperatureMax
	}
	if tmax < tmin {
		tmax = tmin
	}
	return tmin, tmax
}

func soilType(texture string) entity.SoilType {
	text := strings.ToLower(texture)
	for _, candidate := range soilTextureKeywords {
		if strings.Contains(text, candidate.keyword) {
			return candidate.soil
		}
	}
	return entity.SoilUniversal
}

func isToxic(toxicity *string) bool {
	if toxicity == nil {
		return false
	}
	value := strings.ToLower(strings.TrimSpace(*toxicity))
	if value == "" {
		return false
	}
	return !nonToxicValues[value]
}

func clampScale(v int) int {
	if v < minScaleValue {
		return minScaleValue
	}
	if v > maxScaleValue {
		return maxScaleValue
	}
	return v
}
