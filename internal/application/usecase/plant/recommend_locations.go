package plant

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// RecommendLocationsInput represents the input for relocation recommendations.
type RecommendLocationsInput struct {
	UserID  uuid.UUID
	PlantID uuid.UUID
}

// LocationRecommendation is one of the user's locations judged for a plant.
type LocationRecommendation struct {
	Location    *entity.Location
	Current     bool
	Recommended bool
	Reasons     []string
}

// RecommendLocationsOutput represents the recommendations for a plant.
type RecommendLocationsOutput struct {
	Plant           *entity.TrackedPlant
	Profile         *entity.CareProfile
	Recommendations []LocationRecommendation
}

// RecommendLocationsUseCase rates every location of the user for a plant.
type RecommendLocationsUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
}

// NewRecommendLocationsUseCase creates a new RecommendLocationsUseCase instance.
func NewRecommendLocationsUseCase(store adapter.GardenStore, profileRepo adapter.CareProfileRepository) *RecommendLocationsUseCase {
	return &RecommendLocationsUseCase{
		store:       store,
		profileRepo: profileRepo,
	}
}

// Execute returns the recommendations with compatible locations first, then
// by name ignoring case.
func (uc *RecommendLocationsUseCase) Execute(ctx context.Context, input RecommendLocationsInput) (*RecommendLocationsOutput, error) {
	scope := uc.store.ForOwner(input.UserID)

	plant, err := scope.Plants().FindByID(ctx, input.PlantID)
	if err != nil {
		return nil, plantNotFound(err)
	}

	profile, err := uc.profileRepo.FindByID(ctx, plant.CareProfileID)
	if err != nil {
		return nil, profileNotFound(err)
	}

	locations, err := scope.Locations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	recommendations := make([]LocationRecommendation, 0, len(locations))
	for _, l := range locations {
		result := valueobject.Evaluate(profile, l)
		recommendations = append(recommendations, LocationRecommendation{
			Location:    l,
			Current:     l.ID == plant.LocationID,
			Recommended: result.Compatible,
			Reasons:     result.Reasons(),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if a.Recommended != b.Recommended {
			return a.Recommended
		}
		return strings.ToLower(a.Location.Name) < strings.ToLower(b.Location.Name)
	})

	return &RecommendLocationsOutput{
		Plant:           plant,
		Profile:         profile,
		Recommendations: recommendations,
	}, nil
}
