package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// ListWishlistInput represents the input for listing the wishlist.
type ListWishlistInput struct {
	UserID uuid.UUID
}

// WishlistItem is a wishlist entry with the locations it would fit in.
type WishlistItem struct {
	Entry             *entity.WishlistEntry
	Profile           *entity.CareProfile
	SuitableLocations []string
}

// ListWishlistOutput represents the wishlist view.
type ListWishlistOutput struct {
	Items []WishlistItem
}

// ListWishlistUseCase lists the wishlist and matches it against the user's locations.
type ListWishlistUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
}

// NewListWishlistUseCase creates a new ListWishlistUseCase instance.
func NewListWishlistUseCase(store adapter.GardenStore, profileRepo adapter.CareProfileRepository) *ListWishlistUseCase {
	return &ListWishlistUseCase{
		store:       store,
		profileRepo: profileRepo,
	}
}

// Execute returns the entries in the order they were added.
func (uc *ListWishlistUseCase) Execute(ctx context.Context, input ListWishlistInput) (*ListWishlistOutput, error) {
	scope := uc.store.ForOwner(input.UserID)

	entries, err := scope.Wishlist().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	locations, err := scope.Locations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.CareProfileID)
	}
	profiles, err := uc.profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load care profiles: %w", err)
	}

	items := make([]WishlistItem, 0, len(entries))
	for _, e := range entries {
		profile, ok := profiles[e.CareProfileID]
		if !ok {
			continue
		}
		suitable := []string{}
		for _, l := range locations {
			if valueobject.Evaluate(profile, l).Compatible {
				suitable = append(suitable, l.Name)
			}
		}
		items = append(items, WishlistItem{Entry: e, Profile: profile, SuitableLocations: suitable})
	}

	return &ListWishlistOutput{Items: items}, nil
}
