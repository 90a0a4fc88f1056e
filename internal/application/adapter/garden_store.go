package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// GardenStore hands out repositories bound to a single owner. Every read and
// write through an OwnerScope is restricted to that owner's rows: lookups of
// another user's entity fail with domainerror.ErrOwnershipViolation and
// created entities are always stamped with the scope's owner.
type GardenStore interface {
	ForOwner(ownerID uuid.UUID) OwnerScope
}

// OwnerScope groups the owner-bound repositories.
type OwnerScope interface {
	Locations() LocationRepository
	Plants() TrackedPlantRepository
	Wishlist() WishlistRepository
}

// LocationRepository persists an owner's locations.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	// FindByID returns domainerror.ErrLocationNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	// List returns the owner's locations ordered by name.
	List(ctx context.Context) ([]*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TrackedPlantRepository persists an owner's tracked plants.
type TrackedPlantRepository interface {
	Create(ctx context.Context, plant *entity.TrackedPlant) error
	// FindByID returns domainerror.ErrPlantNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TrackedPlant, error)
	// List returns the owner's plants in creation order.
	List(ctx context.Context) ([]*entity.TrackedPlant, error)
	// ListByLocation returns the plants at a location in creation order.
	ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.TrackedPlant, error)
	CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
	Update(ctx context.Context, plant *entity.TrackedPlant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WishlistRepository persists an owner's wishlist.
type WishlistRepository interface {
	// Create returns domainerror.ErrAlreadyOnWishlist when the species is already listed.
	Create(ctx context.Context, entry *entity.WishlistEntry) error
	// FindByID returns domainerror.ErrWishlistEntryNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistEntry, error)
	ExistsByExternalID(ctx context.Context, externalID int64) (bool, error)
	// List returns the owner's wishlist in the order entries were added.
	List(ctx context.Context) ([]*entity.WishlistEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
