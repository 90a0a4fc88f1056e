package dto

import (
	"github.com/care-for-plants/backend/internal/application/usecase/plant"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// AddPlantRequest represents the request body for adding a plant at a location.
type AddPlantRequest struct {
	ExternalID   int64   `json:"external_id" binding:"required,gt=0"`
	LocationID   string  `json:"location_id" binding:"required,uuid"`
	Nickname     string  `json:"nickname,omitempty" binding:"max=100"`
	DateAcquired *string `json:"date_acquired,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// RelocatePlantRequest represents the request body for moving a plant.
type RelocatePlantRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
}

// ScheduleResponse represents the care schedule of a plant.
type ScheduleResponse struct {
	DaysUntilDue   map[string]int `json:"days_until_due"`
	NextAction     string         `json:"next_action"`
	NextActionDays int            `json:"next_action_days"`
	Status         string         `json:"status"`
}

// PlantResponse represents a tracked plant with its profile and schedule.
type PlantResponse struct {
	ID             string               `json:"id"`
	Nickname       string               `json:"nickname"`
	LocationID     string               `json:"location_id"`
	LocationName   string               `json:"location_name,omitempty"`
	DateAcquired   string               `json:"date_acquired"`
	LastWatered    *string              `json:"last_watered"`
	LastFertilized *string              `json:"last_fertilized"`
	LastRepotted   *string              `json:"last_repotted"`
	LastPruned     *string              `json:"last_pruned"`
	LastPropagated *string              `json:"last_propagated"`
	CareProfile    *CareProfileResponse `json:"care_profile"`
	Schedule       *ScheduleResponse    `json:"schedule,omitempty"`
}

// PlantListResponse represents the response for listing plants.
type PlantListResponse struct {
	Plants []PlantResponse `json:"plants"`
}

// RelocatePlantResponse represents the outcome of moving a plant.
type RelocatePlantResponse struct {
	Plant      PlantResponse    `json:"plant"`
	Location   LocationResponse `json:"location"`
	Compatible bool             `json:"compatible"`
	Reasons    []string         `json:"reasons"`
}

// LocationRecommendationResponse is one location annotated for a plant.
type LocationRecommendationResponse struct {
	Location    LocationResponse `json:"location"`
	Current     bool             `json:"current"`
	Recommended bool             `json:"recommended"`
	Reasons     []string         `json:"reasons"`
}

// RecommendationsResponse represents the relocation recommendations of a plant.
type RecommendationsResponse struct {
	PlantID         string                           `json:"plant_id"`
	Recommendations []LocationRecommendationResponse `json:"recommendations"`
}

// DashboardResponse represents the care task dashboard.
type DashboardResponse struct {
	Tasks []PlantResponse `json:"tasks"`
}

// ToScheduleResponse converts a care schedule to its DTO.
func ToScheduleResponse(s valueobject.CareSchedule) *ScheduleResponse {
	days := make(map[string]int, len(s.DaysUntilDue))
	for action, d := range s.DaysUntilDue {
		days[string(action)] = d
	}
	return &ScheduleResponse{
		DaysUntilDue:   days,
		NextAction:     string(s.NextAction),
		NextActionDays: s.NextActionDays,
		Status:         string(s.Status),
	}
}

// ToPlantResponse converts a tracked plant and its profile and schedule to a PlantResponse DTO.
func ToPlantResponse(p *entity.TrackedPlant, profile *entity.CareProfile, schedule valueobject.CareSchedule) PlantResponse {
	response := toPlantBase(p, profile)
	response.Schedule = ToScheduleResponse(schedule)
	return response
}

func toPlantBase(p *entity.TrackedPlant, profile *entity.CareProfile) PlantResponse {
	return PlantResponse{
		ID:             p.ID.String(),
		Nickname:       p.Nickname,
		LocationID:     p.LocationID.String(),
		DateAcquired:   formatDate(p.DateAcquired),
		LastWatered:    formatOptionalDate(p.LastWatered),
		LastFertilized: formatOptionalDate(p.LastFertilized),
		LastRepotted:   formatOptionalDate(p.LastRepotted),
		LastPruned:     formatOptionalDate(p.LastPruned),
		LastPropagated: formatOptionalDate(p.LastPropagated),
		CareProfile:    ToCareProfileResponse(profile),
	}
}

// ToPlantViewResponse converts a plant view to a PlantResponse DTO.
func ToPlantViewResponse(v plant.PlantView) PlantResponse {
	return ToPlantResponse(v.Plant, v.Profile, v.Schedule)
}

// ToPlantListResponse converts plant views to a PlantListResponse DTO.
func ToPlantListResponse(views []plant.PlantView) PlantListResponse {
	out := make([]PlantResponse, len(views))
	for i, v := range views {
		out[i] = ToPlantViewResponse(v)
	}
	return PlantListResponse{Plants: out}
}

// ToRelocatePlantResponse converts a relocation outcome to its DTO.
func ToRelocatePlantResponse(output *plant.RelocatePlantOutput) RelocatePlantResponse {
	return RelocatePlantResponse{
		Plant:      toPlantBase(output.Plant, nil),
		Location:   ToLocationResponse(output.Location),
		Compatible: output.Compatibility.Compatible,
		Reasons:    output.Compatibility.Reasons(),
	}
}

// ToRecommendationsResponse converts relocation recommendations to their DTO.
func ToRecommendationsResponse(output *plant.RecommendLocationsOutput) RecommendationsResponse {
	recs := make([]LocationRecommendationResponse, len(output.Recommendations))
	for i, r := range output.Recommendations {
		reasons := r.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		recs[i] = LocationRecommendationResponse{
			Location:    ToLocationResponse(r.Location),
			Current:     r.Current,
			Recommended: r.Recommended,
			Reasons:     reasons,
		}
	}
	return RecommendationsResponse{
		PlantID:         output.Plant.ID.String(),
		Recommendations: recs,
	}
}

// ToDashboardResponse converts dashboard tasks to a DashboardResponse DTO.
func ToDashboardResponse(tasks []plant.DashboardTask) DashboardResponse {
	out := make([]PlantResponse, len(tasks))
	for i, task := range tasks {
		out[i] = ToPlantViewResponse(task.PlantView)
		out[i].LocationName = task.LocationName
	}
	return DashboardResponse{Tasks: out}
}
