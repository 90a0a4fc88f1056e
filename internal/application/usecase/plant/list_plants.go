package plant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
)

// ListPlantsInput represents the input for listing tracked plants.
type ListPlantsInput struct {
	UserID uuid.UUID
}

// ListPlantsOutput represents the output of listing tracked plants.
type ListPlantsOutput struct {
	Plants []PlantView
}

// ListPlantsUseCase lists the user's tracked plants.
type ListPlantsUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewListPlantsUseCase creates a new ListPlantsUseCase instance.
func NewListPlantsUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *ListPlantsUseCase {
	return &ListPlantsUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute lists the plants in creation order.
func (uc *ListPlantsUseCase) Execute(ctx context.Context, input ListPlantsInput) (*ListPlantsOutput, error) {
	plants, err := uc.store.ForOwner(input.UserID).Plants().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	views, err := buildViews(ctx, uc.profileRepo, plants, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &ListPlantsOutput{Plants: views}, nil
}
