// Package location contains location-related use cases.
package location

import (
	"strings"

	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

func locationNotFound(err error) error {
	return domainerror.NotFoundError(err, domainerror.ErrLocationNotFound,
		domainerror.ErrCodeLocationNotFound, "find location")
}

func invalidLocation(message string) error {
	return domainerror.NewPlantError(domainerror.ErrCodeInvalidLocation, message, domainerror.ErrInvalidLocation)
}

// Environment holds the optional location fields shared by create and update.
// Nil fields keep their current value.
type Environment struct {
	LightLevel        *int
	HumidityLevel     *int
	TemperatureAvg    *int
	AvailableSpaceCM  *int
	HasPetsOrChildren *bool
}

func (e Environment) applyTo(l *entity.Location) {
	if e.LightLevel != nil {
		l.LightLevel = *e.LightLevel
	}
	if e.HumidityLevel != nil {
		l.HumidityLevel = *e.HumidityLevel
	}
	if e.TemperatureAvg != nil {
		l.TemperatureAvg = *e.TemperatureAvg
	}
	if e.AvailableSpaceCM != nil {
		l.AvailableSpaceCM = *e.AvailableSpaceCM
	}
	if e.HasPetsOrChildren != nil {
		l.HasPetsOrChildren = *e.HasPetsOrChildren
	}
}

func validateLocation(l *entity.Location) error {
	if strings.TrimSpace(l.Name) == "" {
		return invalidLocation("name is required")
	}
	if l.LightLevel < 1 || l.LightLevel > 10 {
		return invalidLocation("light level must be between 1 and 10")
	}
	if l.HumidityLevel < 1 || l.HumidityLevel > 10 {
		return invalidLocation("humidity level must be between 1 and 10")
	}
	if l.AvailableSpaceCM <= 0 {
		return invalidLocation("available space must be positive")
	}
	return nil
}
