package dto

import (
	"time"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

// SpeciesSummaryResponse is one catalog search hit.
type SpeciesSummaryResponse struct {
	ExternalID     int64  `json:"external_id"`
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	Family         string `json:"family,omitempty"`
	Genus          string `json:"genus,omitempty"`
}

// SpeciesSearchResponse represents the response for a species search.
type SpeciesSearchResponse struct {
	Results []SpeciesSummaryResponse `json:"results"`
}

// SpeciesPreviewResponse represents the care profile a species would get.
type SpeciesPreviewResponse struct {
	Found   bool                 `json:"found"`
	Stored  bool                 `json:"stored"`
	Profile *CareProfileResponse `json:"care_profile,omitempty"`
}

// CareProfileResponse represents a care profile in API responses.
type CareProfileResponse struct {
	ID                    string     `json:"id"`
	ExternalID            int64      `json:"external_id"`
	ScientificName        string     `json:"scientific_name"`
	CommonName            string     `json:"common_name"`
	DisplayName           string     `json:"display_name"`
	ImageURL              string     `json:"image_url,omitempty"`
	WaterIntervalDays     int        `json:"water_interval_days"`
	FertilizeIntervalDays int        `json:"fertilize_interval_days"`
	RepotIntervalDays     int        `json:"repot_interval_days"`
	PruneIntervalDays     int        `json:"prune_interval_days"`
	PropagateIntervalDays int        `json:"propagate_interval_days"`
	SunlightRequirement   int        `json:"sunlight_requirement"`
	HumidityRequirement   int        `json:"humidity_requirement"`
	TemperatureMin        int        `json:"temperature_min"`
	TemperatureMax        int        `json:"temperature_max"`
	MaxHeightCM           int        `json:"max_height_cm"`
	SoilType              string     `json:"soil_type"`
	IsToxic               bool       `json:"is_toxic"`
	ManuallyEditedAt      *time.Time `json:"manually_edited_at,omitempty"`
}

// UpdateCareProfileRequest represents a partial manual care profile edit.
type UpdateCareProfileRequest struct {
	WaterIntervalDays     *int    `json:"water_interval_days,omitempty"`
	FertilizeIntervalDays *int    `json:"fertilize_interval_days,omitempty"`
	RepotIntervalDays     *int    `json:"repot_interval_days,omitempty"`
	PruneIntervalDays     *int    `json:"prune_interval_days,omitempty"`
	PropagateIntervalDays *int    `json:"propagate_interval_days,omitempty"`
	SunlightRequirement   *int    `json:"sunlight_requirement,omitempty"`
	HumidityRequirement   *int    `json:"humidity_requirement,omitempty"`
	TemperatureMin        *int    `json:"temperature_min,omitempty"`
	TemperatureMax        *int    `json:"temperature_max,omitempty"`
	MaxHeightCM           *int    `json:"max_height_cm,omitempty"`
	SoilType              *string `json:"soil_type,omitempty"`
	IsToxic               *bool   `json:"is_toxic,omitempty"`
}

// ToSpeciesSearchResponse converts catalog hits to a SpeciesSearchResponse DTO.
func ToSpeciesSearchResponse(results []adapter.SpeciesSummary) SpeciesSearchResponse {
	out := make([]SpeciesSummaryResponse, len(results))
	for i, r := range results {
		out[i] = SpeciesSummaryResponse{
			ExternalID:     r.ExternalID,
			ScientificName: r.ScientificName,
			CommonName:     r.CommonName,
			ImageURL:       r.ImageURL,
			Family:         r.Family,
			Genus:          r.Genus,
		}
	}
	return SpeciesSearchResponse{Results: out}
}

// ToCareProfileResponse converts a domain CareProfile entity to a CareProfileResponse DTO.
// It returns nil for a nil profile.
func ToCareProfileResponse(p *entity.CareProfile) *CareProfileResponse {
	if p == nil {
		return nil
	}
	return &CareProfileResponse{
		ID:                    p.ID.String(),
		ExternalID:            p.ExternalID,
		ScientificName:        p.ScientificName,
		CommonName:            p.CommonName,
		DisplayName:           p.DisplayName(),
		ImageURL:              p.ImageURL,
		WaterIntervalDays:     p.WaterIntervalDays,
		FertilizeIntervalDays: p.FertilizeIntervalDays,
		RepotIntervalDays:     p.RepotIntervalDays,
		PruneIntervalDays:     p.PruneIntervalDays,
		PropagateIntervalDays: p.PropagateIntervalDays,
		SunlightRequirement:   p.SunlightRequirement,
		HumidityRequirement:   p.HumidityRequirement,
		TemperatureMin:        p.TemperatureMin,
		TemperatureMax:        p.TemperatureMax,
		MaxHeightCM:           p.MaxHeightCM,
		SoilType:              string(p.SoilType),
		IsToxic:               p.IsToxic,
		ManuallyEditedAt:      p.ManuallyEditedAt,
	}
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// ParseDate parses a calendar date in the wire format.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
