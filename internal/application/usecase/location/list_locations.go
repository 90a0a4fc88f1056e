package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// ListLocationsInput represents the input for listing locations.
type ListLocationsInput struct {
	UserID uuid.UUID
}

// ListLocationsOutput represents the output of listing locations.
type ListLocationsOutput struct {
	Locations []*entity.Location
}

// ListLocationsUseCase lists the user's locations.
type ListLocationsUseCase struct {
	store adapter.GardenStore
}

// NewListLocationsUseCase creates a new ListLocationsUseCase instance.
func NewListLocationsUseCase(store adapter.GardenStore) *ListLocationsUseCase {
	return &ListLocationsUseCase{store: store}
}

// Execute lists the locations ordered by name.
func (uc *ListLocationsUseCase) Execute(ctx context.Context, input ListLocationsInput) (*ListLocationsOutput, error) {
	locations, err := uc.store.ForOwner(input.UserID).Locations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return &ListLocationsOutput{Locations: locations}, nil
}
