package plant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// MarkCareDoneInput represents the input for recording a care action.
type MarkCareDoneInput struct {
	UserID  uuid.UUID
	PlantID uuid.UUID
	Action  string
}

// MarkCareDoneOutput represents the plant after the action was recorded.
type MarkCareDoneOutput struct {
	PlantView
}

// MarkCareDoneUseCase records that a care action was performed today.
type MarkCareDoneUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewMarkCareDoneUseCase creates a new MarkCareDoneUseCase instance.
func NewMarkCareDoneUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *MarkCareDoneUseCase {
	return &MarkCareDoneUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute sets the action's last-performed date to today.
func (uc *MarkCareDoneUseCase) Execute(ctx context.Context, input MarkCareDoneInput) (*MarkCareDoneOutput, error) {
	action, ok := entity.ParseCareAction(input.Action)
	if !ok {
		return nil, domainerror.NewPlantError(
			domainerror.ErrCodeInvalidCareAction,
			fmt.Sprintf("unknown care action %q", input.Action),
			domainerror.ErrInvalidCareAction,
		)
	}

	plants := uc.store.ForOwner(input.UserID).Plants()
	plant, err := plants.FindByID(ctx, input.PlantID)
	if err != nil {
		return nil, plantNotFound(err)
	}

	profile, err := uc.profileRepo.FindByID(ctx, plant.CareProfileID)
	if err != nil {
		return nil, profileNotFound(err)
	}

	today := uc.clock.Now()
	plant.MarkDone(action, today)
	if err := plants.Update(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	return &MarkCareDoneOutput{PlantView: newPlantView(plant, profile, today)}, nil
}
