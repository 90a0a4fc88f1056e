// Package wishlist contains wishlist use cases.
package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// AddToWishlistInput represents the input for adding a species to the wishlist.
type AddToWishlistInput struct {
	UserID     uuid.UUID
	ExternalID int64
}

// AddToWishlistOutput represents the created wishlist entry.
type AddToWishlistOutput struct {
	Entry   *entity.WishlistEntry
	Profile *entity.CareProfile
}

// AddToWishlistUseCase adds a species to the user's wishlist.
type AddToWishlistUseCase struct {
	store    adapter.GardenStore
	resolver adapter.CareProfileResolver
	clock    adapter.Clock
}

// NewAddToWishlistUseCase creates a new AddToWishlistUseCase instance.
func NewAddToWishlistUseCase(
	store adapter.GardenStore,
	resolver adapter.CareProfileResolver,
	clock adapter.Clock,
) *AddToWishlistUseCase {
	return &AddToWishlistUseCase{
		store:    store,
		resolver: resolver,
		clock:    clock,
	}
}

// Execute adds the entry. A species can be on a user's wishlist only once.
func (uc *AddToWishlistUseCase) Execute(ctx context.Context, input AddToWishlistInput) (*AddToWishlistOutput, error) {
	wishlist := uc.store.ForOwner(input.UserID).Wishlist()

	exists, err := wishlist.ExistsByExternalID(ctx, input.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}
	if exists {
		return nil, alreadyOnWishlist()
	}

	profile, err := uc.resolver.Resolve(ctx, input.ExternalID)
	if err != nil {
		return nil, err
	}

	entry := entity.NewWishlistEntry(input.UserID, input.ExternalID, profile.ID, uc.clock.Now())
	if err := wishlist.Create(ctx, entry); err != nil {
		if errors.Is(err, domainerror.ErrAlreadyOnWishlist) {
			return nil, alreadyOnWishlist()
		}
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}

	return &AddToWishlistOutput{Entry: entry, Profile: profile}, nil
}

func alreadyOnWishlist() error {
	return domainerror.NewPlantError(
		domainerror.ErrCodeAlreadyOnWishlist,
		"species is already on the wishlist",
		domainerror.ErrAlreadyOnWishlist,
	)
}
