package entity

import (
	"time"

	"github.com/google/uuid"
)

// SoilType is a free-form soil category. The stored values follow the
// vocabulary of the plant catalog the profiles were first built for.
type SoilType string

// MaxSoilTypeLength is the longest soil category a profile can store.
const MaxSoilTypeLength = 50

const (
	SoilUniversal SoilType = "universal"
	SoilSandy     SoilType = "sandig"
	SoilLoamy     SoilType = "lehmig"
	SoilHumusRich SoilType = "humusreich"
)

// Care defaults applied when the species source gives no better signal.
const (
	DefaultWaterIntervalDays     = 7
	DefaultFertilizeIntervalDays = 30
	DefaultRepotIntervalDays     = 730
	DefaultPruneIntervalDays     = 90
	DefaultPropagateIntervalDays = 180
	DefaultSunlightRequirement   = 5
	DefaultHumidityRequirement   = 5
	DefaultTemperatureMin        = 15
	DefaultTemperatureMax        = 25
	DefaultMaxHeightCM           = 100
)

// CareProfile is the shared care-requirement record for one species.
// There is exactly one profile per ExternalID and it is read by every
// tracked plant and wishlist entry referencing that species.
type CareProfile struct {
	ID                    uuid.UUID
	ExternalID            int64
	ScientificName        string
	CommonName            string
	ImageURL              string
	WaterIntervalDays     int
	FertilizeIntervalDays int
	RepotIntervalDays     int
	PruneIntervalDays     int
	PropagateIntervalDays int
	SunlightRequirement   int
	HumidityRequirement   int
	TemperatureMin        int
	TemperatureMax        int
	MaxHeightCM           int
	SoilType              SoilType
	IsToxic               bool
	ManuallyEditedAt      *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewCareProfile creates a profile for the given species filled with defaults.
func NewCareProfile(externalID int64, scientificName, commonName, imageURL string) *CareProfile {
	now := time.Now().UTC()
	return &CareProfile{
		ID:                    uuid.New(),
		ExternalID:            externalID,
		ScientificName:        scientificName,
		CommonName:            commonName,
		ImageURL:              imageURL,
		WaterIntervalDays:     DefaultWaterIntervalDays,
		FertilizeIntervalDays: DefaultFertilizeIntervalDays,
		RepotIntervalDays:     DefaultRepotIntervalDays,
		PruneIntervalDays:     DefaultPruneIntervalDays,
		PropagateIntervalDays: DefaultPropagateIntervalDays,
		SunlightRequirement:   DefaultSunlightRequirement,
		HumidityRequirement:   DefaultHumidityRequirement,
		TemperatureMin:        DefaultTemperatureMin,
		TemperatureMax:        DefaultTemperatureMax,
		MaxHeightCM:           DefaultMaxHeightCM,
		SoilType:              SoilUniversal,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// DisplayName returns the common name, falling back to the scientific name.
func (p *CareProfile) DisplayName() string {
	if p.CommonName != "" {
		return p.CommonName
	}
	return p.ScientificName
}

// IntervalDays returns the recurrence interval configured for a care action.
func (p *CareProfile) IntervalDays(action CareAction) int {
	switch action {
	case CareActionWater:
		return p.WaterIntervalDays
	case CareActionFertilize:
		return p.FertilizeIntervalDays
	case CareActionRepot:
		return p.RepotIntervalDays
	case CareActionPrune:
		return p.PruneIntervalDays
	case CareActionPropagate:
		return p.PropagateIntervalDays
	default:
		return 0
	}
}
