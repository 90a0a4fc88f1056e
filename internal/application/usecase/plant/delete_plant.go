package plant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
)

// DeletePlantInput represents the input for removing a tracked plant.
type DeletePlantInput struct {
	UserID  uuid.UUID
	PlantID uuid.UUID
}

// DeletePlantUseCase stops tracking a plant.
type DeletePlantUseCase struct {
	store adapter.GardenStore
}

// NewDeletePlantUseCase creates a new DeletePlantUseCase instance.
func NewDeletePlantUseCase(store adapter.GardenStore) *DeletePlantUseCase {
	return &DeletePlantUseCase{store: store}
}

// Execute removes the plant.
func (uc *DeletePlantUseCase) Execute(ctx context.Context, input DeletePlantInput) error {
	plants := uc.store.ForOwner(input.UserID).Plants()

	if _, err := plants.FindByID(ctx, input.PlantID); err != nil {
		return plantNotFound(err)
	}
	if err := plants.Delete(ctx, input.PlantID); err != nil {
		return fmt.Errorf("failed to delete plant: %w", err)
	}
	return nil
}
