package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// RemoveFromWishlistInput represents the input for removing a wishlist entry.
type RemoveFromWishlistInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// RemoveFromWishlistUseCase removes an entry from the wishlist.
type RemoveFromWishlistUseCase struct {
	store adapter.GardenStore
}

// NewRemoveFromWishlistUseCase creates a new RemoveFromWishlistUseCase instance.
func NewRemoveFromWishlistUseCase(store adapter.GardenStore) *RemoveFromWishlistUseCase {
	return &RemoveFromWishlistUseCase{store: store}
}

// Execute removes the entry. The shared care profile is kept.
func (uc *RemoveFromWishlistUseCase) Execute(ctx context.Context, input RemoveFromWishlistInput) error {
	wishlist := uc.store.ForOwner(input.UserID).Wishlist()

	if _, err := wishlist.FindByID(ctx, input.EntryID); err != nil {
		return domainerror.NotFoundError(err, domainerror.ErrWishlistEntryNotFound,
			domainerror.ErrCodeWishlistEntryNotFound, "find wishlist entry")
	}
	if err := wishlist.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	return nil
}
