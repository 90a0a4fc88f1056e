package location

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// GetLocationInput represents the input for the location detail view.
type GetLocationInput struct {
	UserID     uuid.UUID
	LocationID uuid.UUID
}

// PlantAtLocation is a tracked plant shown in the location detail view.
type PlantAtLocation struct {
	Plant    *entity.TrackedPlant
	Profile  *entity.CareProfile
	Schedule valueobject.CareSchedule
}

// WishlistFit is a wishlist entry whose profile fits the location.
type WishlistFit struct {
	Entry   *entity.WishlistEntry
	Profile *entity.CareProfile
}

// GetLocationOutput represents the location detail view.
type GetLocationOutput struct {
	Location         *entity.Location
	Plants           []PlantAtLocation
	SuitableWishlist []WishlistFit
}

// GetLocationUseCase builds the location detail view.
type GetLocationUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewGetLocationUseCase creates a new GetLocationUseCase instance.
func NewGetLocationUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *GetLocationUseCase {
	return &GetLocationUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute returns the location, the plants placed there and the wishlist
// entries that would be compatible with it.
func (uc *GetLocationUseCase) Execute(ctx context.Context, input GetLocationInput) (*GetLocationOutput, error) {
	scope := uc.store.ForOwner(input.UserID)

	location, err := scope.Locations().FindByID(ctx, input.LocationID)
	if err != nil {
		return nil, locationNotFound(err)
	}

	plants, err := scope.Plants().ListByLocation(ctx, location.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	entries, err := scope.Wishlist().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(plants)+len(entries))
	for _, p := range plants {
		ids = append(ids, p.CareProfileID)
	}
	for _, e := range entries {
		ids = append(ids, e.CareProfileID)
	}
	profiles, err := uc.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load care profiles: %w", err)
	}

	today := uc.clock.Now()
	output := &GetLocationOutput{
		Location:         location,
		Plants:           make([]PlantAtLocation, 0, len(plants)),
		SuitableWishlist: []WishlistFit{},
	}
	for _, p := range plants {
		profile, ok := profiles[p.CareProfileID]
		if !ok {
			continue
		}
		output.Plants = append(output.Plants, PlantAtLocation{
			Plant:    p,
			Profile:  profile,
			Schedule: valueobject.NextTask(p, profile, today),
		})
	}
	for _, e := range entries {
		profile, ok := profiles[e.CareProfileID]
		if !ok {
			continue
		}
		if valueobject.Evaluate(profile, location).Compatible {
			output.SuitableWishlist = append(output.SuitableWishlist, WishlistFit{Entry: e, Profile: profile})
		}
	}

	return output, nil
}
