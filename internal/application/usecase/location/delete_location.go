package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// DeleteLocationInput represents the input for deleting a location.
type DeleteLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
}

// DeleteLocationUseCase handles location deletion.
type DeleteLocationUseCase struct {
	store adapter.GardenStore
}

// NewDeleteLocationUseCase creates a new DeleteLocationUseCase instance.
func NewDeleteLocationUseCase(store adapter.GardenStore) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{store: store}
}

// Execute deletes the location. Locations that still hold plants are kept.
func (uc *DeleteLocationUseCase) Execute(ctx context.Context, input DeleteLocationInput) error {
	scope := uc.store.ForOwner(input.UserID)

	if _, err := scope.Locations().FindByID(ctx, input.LocationID); err != nil {
		return locationNotFound(err)
	}

	count, err := scope.Plants().CountByLocation(ctx, input.LocationID)
	if err != nil {
		return fmt.Errorf("failed to count plants: %w", err)
	}
	if count > 0 {
		return domainerror.NewPlantError(
			domainerror.ErrCodeLocationNotEmpty,
			fmt.Sprintf("location still holds %d plants", count),
			domainerror.ErrLocationNotEmpty,
		)
	}

	if err := scope.Locations().Delete(ctx, input.LocationID); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}
