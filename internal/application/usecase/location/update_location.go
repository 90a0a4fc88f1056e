package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// UpdateLocationInput represents a partial location update.
type UpdateLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
	Name       *string
	Environment
}

// UpdateLocationOutput represents the output of a location update.
type UpdateLocationOutput struct {
	Location *entity.Location
}

// UpdateLocationUseCase handles location updates.
type UpdateLocationUseCase struct {
	store adapter.GardenStore
	clock adapter.Clock
}

// NewUpdateLocationUseCase creates a new UpdateLocationUseCase instance.
func NewUpdateLocationUseCase(store adapter.GardenStore, clock adapter.Clock) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{store: store, clock: clock}
}

// Execute applies the update.
func (uc *UpdateLocationUseCase) Execute(ctx context.Context, input UpdateLocationInput) (*UpdateLocationOutput, error) {
	locations := uc.store.ForOwner(input.UserID).Locations()

	location, err := locations.FindByID(ctx, input.LocationID)
	if err != nil {
		return nil, locationNotFound(err)
	}

	if input.Name != nil {
		location.Name = strings.TrimSpace(*input.Name)
	}
	input.Environment.applyTo(location)

	if err := validateLocation(location); err != nil {
		return nil, err
	}

	location.UpdatedAt = uc.clock.Now().UTC()
	if err := locations.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return &UpdateLocationOutput{Location: location}, nil
}
