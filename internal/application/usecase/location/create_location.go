package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// CreateLocationInput represents the input for creating a location.
type CreateLocationInput struct {
	UserID uuid.UUID
	Name   string
	Environment
}

// CreateLocationOutput represents the output of creating a location.
type CreateLocationOutput struct {
	Location *entity.Location
}

// CreateLocationUseCase handles location creation.
type CreateLocationUseCase struct {
	store adapter.GardenStore
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase instance.
func NewCreateLocationUseCase(store adapter.GardenStore) *CreateLocationUseCase {
	return &CreateLocationUseCase{store: store}
}

// Execute creates the location, using defaults for omitted environmental values.
func (uc *CreateLocationUseCase) Execute(ctx context.Context, input CreateLocationInput) (*CreateLocationOutput, error) {
	location := entity.NewLocation(input.UserID, strings.TrimSpace(input.Name))
	input.Environment.applyTo(location)

	if err := validateLocation(location); err != nil {
		return nil, err
	}

	if err := uc.store.ForOwner(input.UserID).Locations().Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return &CreateLocationOutput{Location: location}, nil
}
