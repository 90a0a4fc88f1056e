package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location defaults used when the owner leaves a field out.
const (
	DefaultLightLevel       = 5
	DefaultHumidityLevel    = 5
	DefaultTemperatureAvg   = 20
	DefaultAvailableSpaceCM = 200
)

// Location is a physical place with an environmental profile, owned by one user.
type Location struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	LightLevel        int
	HumidityLevel     int
	TemperatureAvg    int
	AvailableSpaceCM  int
	HasPetsOrChildren bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewLocation creates a Location with default environmental values.
func NewLocation(ownerID uuid.UUID, name string) *Location {
	now := time.Now().UTC()
	return &Location{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             name,
		LightLevel:       DefaultLightLevel,
		HumidityLevel:    DefaultHumidityLevel,
		TemperatureAvg:   DefaultTemperatureAvg,
		AvailableSpaceCM: DefaultAvailableSpaceCM,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
