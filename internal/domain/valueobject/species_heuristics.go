package valueobject

import (
	"strings"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// lightBand is a coarse grouping of a 1-10 sunlight requirement.
type lightBand int

const (
	lightBandLow lightBand = iota
	lightBandMid
	lightBandHigh
)

func lightBandOf(sunlight int) lightBand {
	switch {
	case sunlight >= 8:
		return lightBandHigh
	case sunlight <= 4:
		return lightBandLow
	default:
		return lightBandMid
	}
}

// waterByBand holds a watering interval per light band.
type waterByBand struct {
	high, mid, low int
}

func (w waterByBand) forBand(b lightBand) int {
	switch b {
	case lightBandHigh:
		return w.high
	case lightBandLow:
		return w.low
	default:
		return w.mid
	}
}

// careOverride is the fixed set of values a species category imposes.
// Zero values for the light and height fields mean "leave unchanged".
type careOverride struct {
	water          waterByBand
	humidity       int
	soil           entity.SoilType
	temperatureMin int
	temperatureMax int
	lightFloor     int
	lightCeiling   int
	heightCap      int
	height         int
}

func (o careOverride) apply(p *entity.CareProfile, band lightBand) {
	p.WaterIntervalDays = o.water.forBand(band)
	p.HumidityRequirement = o.humidity
	p.SoilType = o.soil
	p.TemperatureMin = o.temperatureMin
	p.TemperatureMax = o.temperatureMax
	if o.lightFloor > 0 && p.SunlightRequirement < o.lightFloor {
		p.SunlightRequirement = o.lightFloor
	}
	if o.lightCeiling > 0 && p.SunlightRequirement > o.lightCeiling {
		p.SunlightRequirement = o.lightCeiling
	}
	if o.heightCap > 0 && p.MaxHeightCM > o.heightCap {
		p.MaxHeightCM = o.heightCap
	}
	if o.height > 0 {
		p.MaxHeightCM = o.height
	}
}

// speciesCategory pairs a keyword predicate with the override it triggers.
type speciesCategory struct {
	name     string
	keywords []string
	override careOverride
}

func (c speciesCategory) matches(nameBlob string) bool {
	for _, kw := range c.keywords {
		if strings.Contains(nameBlob, kw) {
			return true
		}
	}
	return false
}

// speciesCategories is evaluated in order. Every matching category is applied,
// so a later match overwrites the fields an earlier one set.
var speciesCategories = []speciesCategory{
	{
		name: "cactus",
		keywords: []string{
			"cactus", "kaktus", "cactaceae", "opuntia", "echinopsis", "mammillaria",
			"succulent", "sukkulent", "crassula", "echeveria", "sedum", "haworthia", "aloe",
		},
		override: careOverride{
			water:    waterByBand{high: 21, mid: 21, low: 28},
			humidity: 2, soil: entity.SoilSandy,
			temperatureMin: 12, temperatureMax: 30,
			lightFloor: 8, heightCap: 80,
		},
	},
	{
		name:     "fern",
		keywords: []string{"fern", "farn", "nephrolepis", "asplenium", "pteris"},
		override: careOverride{
			water:    waterByBand{high: 2, mid: 3, low: 3},
			humidity: 8, soil: entity.SoilHumusRich,
			temperatureMin: 16, temperatureMax: 28,
			lightCeiling: 4, heightCap: 120,
		},
	},
	{
		name:     "orchid",
		keywords: []string{"orchid", "orchidee", "orchidaceae", "phalaenopsis"},
		override: careOverride{
			water:    waterByBand{high: 10, mid: 7, low: 10},
			humidity: 7, soil: entity.SoilHumusRich,
			temperatureMin: 18, temperatureMax: 28,
			height: 70,
		},
	},
	{
		name: "tropical",
		keywords: []string{
			"monstera", "philodendron", "calathea", "maranta", "anthurium",
			"alocasia", "pothos", "epipremnum", "dieffenbachia", "ficus",
		},
		override: careOverride{
			water:    waterByBand{high: 5, mid: 7, low: 7},
			humidity: 6, soil: entity.SoilHumusRich,
			temperatureMin: 18, temperatureMax: 28,
		},
	},
	{
		name:     "palm",
		keywords: []string{"palm", "palme", "areca", "dypsis", "chamaedorea", "kentia", "howea"},
		override: careOverride{
			water:    waterByBand{high: 7, mid: 7, low: 10},
			humidity: 6, soil: entity.SoilHumusRich,
			temperatureMin: 16, temperatureMax: 28,
		},
	},
	{
		name: "herb",
		keywords: []string{
			"basil", "basilikum", "mint", "minze", "thyme", "thymian",
			"rosemary", "rosmarin", "parsley", "petersilie", "oregano",
		},
		override: careOverride{
			water:    waterByBand{high: 3, mid: 5, low: 5},
			humidity: 5, soil: entity.SoilUniversal,
			temperatureMin: 12, temperatureMax: 28,
			height: 60,
		},
	},
	{
		name:     "citrus",
		keywords: []string{"citrus", "lemon", "zitrone", "orange", "mandarine", "kumquat"},
		override: careOverride{
			water:    waterByBand{high: 5, mid: 7, low: 7},
			humidity: 5, soil: entity.SoilUniversal,
			temperatureMin: 10, temperatureMax: 30,
		},
	},
}

// IsDefaultish reports whether a derived profile still carries every default
// that sparse catalog data leaves behind: humidity, temperature range, soil
// and height all untouched.
func IsDefaultish(p *entity.CareProfile) bool {
	return p.HumidityRequirement == entity.DefaultHumidityRequirement &&
		p.TemperatureMin == entity.DefaultTemperatureMin &&
		p.TemperatureMax == entity.DefaultTemperatureMax &&
		p.SoilType == entity.SoilUniversal &&
		p.MaxHeightCM == entity.DefaultMaxHeightCM
}

// matchingCategories returns every category whose keywords occur in the
// lower-cased name text, in table order. Later matches override earlier ones.
func matchingCategories(nameBlob string) []speciesCategory {
	var matched []speciesCategory
	for _, c := range speciesCategories {
		if c.matches(nameBlob) {
			matched = append(matched, c)
		}
	}
	return matched
}

func applySpeciesHeuristics(p *entity.CareProfile, nameBlob string) {
	band := lightBandOf(p.SunlightRequirement)
	applyLightBaseline(p, band)
	for _, c := range matchingCategories(nameBlob) {
		c.override.apply(p, band)
	}
}

// applyLightBaseline biases watering and humidity by the light band before
// any category override runs.
func applyLightBaseline(p *entity.CareProfile, band lightBand) {
	switch band {
	case lightBandHigh:
		p.WaterIntervalDays = min(p.WaterIntervalDays, 7)
		p.HumidityRequirement = max(p.HumidityRequirement, 4)
		p.SoilType = entity.SoilUniversal
	case lightBandLow:
		p.WaterIntervalDays = max(p.WaterIntervalDays, 10)
		p.HumidityRequirement = max(p.HumidityRequirement, 5)
	default:
		p.WaterIntervalDays = max(min(p.WaterIntervalDays, 9), 7)
	}
}

func speciesNameBlob(attrs SpeciesAttributes) string {
	return strings.ToLower(strings.Join([]string{
		attrs.ScientificName,
		attrs.CommonName,
		attrs.Family,
		attrs.Genus,
	}, " "))
}
