package plant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// RelocatePlantInput represents the input for moving a plant.
type RelocatePlantInput struct {
	UserID     uuid.UUID
	PlantID    uuid.UUID
	LocationID uuid.UUID
}

// RelocatePlantOutput represents the moved plant and how well it fits its new spot.
type RelocatePlantOutput struct {
	Plant         *entity.TrackedPlant
	Location      *entity.Location
	Compatibility valueobject.Compatibility
}

// RelocatePlantUseCase moves a plant to another of the user's locations.
type RelocatePlantUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewRelocatePlantUseCase creates a new RelocatePlantUseCase instance.
func NewRelocatePlantUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *RelocatePlantUseCase {
	return &RelocatePlantUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute moves the plant. Both the plant and the target location must
// belong to the user.
func (uc *RelocatePlantUseCase) Execute(ctx context.Context, input RelocatePlantInput) (*RelocatePlantOutput, error) {
	scope := uc.store.ForOwner(input.UserID)

	plant, err := scope.Plants().FindByID(ctx, input.PlantID)
	if err != nil {
		return nil, plantNotFound(err)
	}

	location, err := scope.Locations().FindByID(ctx, input.LocationID)
	if err != nil {
		return nil, locationNotFound(err)
	}

	profile, err := uc.profileRepo.FindByID(ctx, plant.CareProfileID)
	if err != nil {
		return nil, profileNotFound(err)
	}

	plant.LocationID = location.ID
	plant.UpdatedAt = uc.clock.Now().UTC()
	if err := scope.Plants().Update(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	return &RelocatePlantOutput{
		Plant:         plant,
		Location:      location,
		Compatibility: valueobject.Evaluate(profile, location),
	}, nil
}
