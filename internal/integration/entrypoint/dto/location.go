package dto

import (
	"time"

	"github.com/care-for-plants/backend/internal/application/usecase/location"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// CreateLocationRequest represents the request body for location creation.
// Omitted environmental values fall back to defaults.
type CreateLocationRequest struct {
	Name              string `json:"name" binding:"required,max=100"`
	LightLevel        *int   `json:"light_level,omitempty"`
	HumidityLevel     *int   `json:"humidity_level,omitempty"`
	TemperatureAvg    *int   `json:"temperature_avg,omitempty"`
	AvailableSpaceCM  *int   `json:"available_space_cm,omitempty"`
	HasPetsOrChildren *bool  `json:"has_pets_or_children,omitempty"`
}

// UpdateLocationRequest represents the request body for a partial location update.
type UpdateLocationRequest struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,max=100"`
	LightLevel        *int    `json:"light_level,omitempty"`
	HumidityLevel     *int    `json:"humidity_level,omitempty"`
	TemperatureAvg    *int    `json:"temperature_avg,omitempty"`
	AvailableSpaceCM  *int    `json:"available_space_cm,omitempty"`
	HasPetsOrChildren *bool   `json:"has_pets_or_children,omitempty"`
}

// Environment extracts the environmental fields of the request.
func (r CreateLocationRequest) Environment() location.Environment {
	return location.Environment{
		LightLevel:        r.LightLevel,
		HumidityLevel:     r.HumidityLevel,
		TemperatureAvg:    r.TemperatureAvg,
		AvailableSpaceCM:  r.AvailableSpaceCM,
		HasPetsOrChildren: r.HasPetsOrChildren,
	}
}

// Environment extracts the environmental fields of the request.
func (r UpdateLocationRequest) Environment() location.Environment {
	return location.Environment{
		LightLevel:        r.LightLevel,
		HumidityLevel:     r.HumidityLevel,
		TemperatureAvg:    r.TemperatureAvg,
		AvailableSpaceCM:  r.AvailableSpaceCM,
		HasPetsOrChildren: r.HasPetsOrChildren,
	}
}

// LocationResponse represents a single location in API responses.
type LocationResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LightLevel        int       `json:"light_level"`
	HumidityLevel     int       `json:"humidity_level"`
	TemperatureAvg    int       `json:"temperature_avg"`
	AvailableSpaceCM  int       `json:"available_space_cm"`
	HasPetsOrChildren bool      `json:"has_pets_or_children"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// LocationListResponse represents the response for listing locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// SuitableWishlistResponse is a wishlist entry that fits a location.
type SuitableWishlistResponse struct {
	EntryID     string               `json:"entry_id"`
	ExternalID  int64                `json:"external_id"`
	CareProfile *CareProfileResponse `json:"care_profile"`
}

// LocationDetailResponse represents the location detail view.
type LocationDetailResponse struct {
	LocationResponse
	Plants           []PlantResponse            `json:"plants"`
	SuitableWishlist []SuitableWishlistResponse `json:"suitable_wishlist"`
}

// ToLocationResponse converts a domain Location entity to a LocationResponse DTO.
func ToLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:                l.ID.String(),
		Name:              l.Name,
		LightLevel:        l.LightLevel,
		HumidityLevel:     l.HumidityLevel,
		TemperatureAvg:    l.TemperatureAvg,
		AvailableSpaceCM:  l.AvailableSpaceCM,
		HasPetsOrChildren: l.HasPetsOrChildren,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// ToLocationListResponse converts a list of locations to a LocationListResponse DTO.
func ToLocationListResponse(locations []*entity.Location) LocationListResponse {
	out := make([]LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = ToLocationResponse(l)
	}
	return LocationListResponse{Locations: out}
}

// ToLocationDetailResponse converts the location detail view to its DTO.
func ToLocationDetailResponse(output *location.GetLocationOutput) LocationDetailResponse {
	response := LocationDetailResponse{
		LocationResponse: ToLocationResponse(output.Location),
		Plants:           make([]PlantResponse, len(output.Plants)),
		SuitableWishlist: make([]SuitableWishlistResponse, len(output.SuitableWishlist)),
	}
	for i, p := range output.Plants {
		response.Plants[i] = ToPlantResponse(p.Plant, p.Profile, p.Schedule)
	}
	for i, fit := range output.SuitableWishlist {
		response.SuitableWishlist[i] = SuitableWishlistResponse{
			EntryID:     fit.Entry.ID.String(),
			ExternalID:  fit.Entry.ExternalID,
			CareProfile: ToCareProfileResponse(fit.Profile),
		}
	}
	return response
}
