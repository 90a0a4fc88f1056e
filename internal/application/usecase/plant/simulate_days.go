package plant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// Bounds of a single simulation shift. One shift can make any default
// care interval due.
const (
	MinSimulationDays = 1
	MaxSimulationDays = entity.DefaultRepotIntervalDays
)

// SimulateDaysInput represents the input for a time-travel simulation.
type SimulateDaysInput struct {
	UserID  uuid.UUID
	PlantID uuid.UUID
	Days    int
}

// SimulateDaysOutput represents the plant after the shift.
type SimulateDaysOutput struct {
	PlantView
}

// SimulateDaysUseCase pretends time has passed by moving a plant's care
// history into the past.
type SimulateDaysUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewSimulateDaysUseCase creates a new SimulateDaysUseCase instance.
func NewSimulateDaysUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *SimulateDaysUseCase {
	return &SimulateDaysUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute shifts every recorded care date back by the requested number of days.
func (uc *SimulateDaysUseCase) Execute(ctx context.Context, input SimulateDaysInput) (*SimulateDaysOutput, error) {
	if input.Days < MinSimulationDays || input.Days > MaxSimulationDays {
		return nil, domainerror.NewPlantError(
			domainerror.ErrCodeInvalidSimulationDays,
			fmt.Sprintf("days must be between %d and %d", MinSimulationDays, MaxSimulationDays),
			domainerror.ErrInvalidSimulationDays,
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

	plant.ShiftHistory(input.Days)
	if err := plants.Update(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to update plant: %w", err)
	}

	return &SimulateDaysOutput{PlantView: newPlantView(plant, profile, uc.clock.Now())}, nil
}
