package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/persistence/model"
)

// gardenStore implements the adapter.GardenStore interface.
type gardenStore struct {
	db *gorm.DB
}

// NewGardenStore creates a new owner-scoped store over the garden tables.
func NewGardenStore(db *gorm.DB) adapter.GardenStore {
	return &gardenStore{
		db: db,
	}
}

// ForOwner returns repositories restricted to the given owner.
func (s *gardenStore) ForOwner(ownerID uuid.UUID) adapter.OwnerScope {
	return &ownerScope{db: s.db, ownerID: ownerID}
}

type ownerScope struct {
	db      *gorm.DB
	ownerID uuid.UUID
}

func (o *ownerScope) Locations() adapter.LocationRepository {
	return &locationRepository{o}
}

func (o *ownerScope) Plants() adapter.TrackedPlantRepository {
	return &trackedPlantRepository{o}
}

func (o *ownerScope) Wishlist() adapter.WishlistRepository {
	return &wishlistRepository{o}
}

// findOwned loads a row by ID and checks it belongs to the scope's owner.
// ownerOf extracts the owner of the loaded row.
func findOwned[M any](ctx context.Context, o *ownerScope, id uuid.UUID, notFound error, ownerOf func(*M) uuid.UUID) (*M, error) {
	var m M
	result := o.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, result.Error
	}
	if ownerOf(&m) != o.ownerID {
		return nil, domainerror.ErrOwnershipViolation
	}
	return &m, nil
}

// locationRepository implements the adapter.LocationRepository interface.
type locationRepository struct {
	*ownerScope
}

func locationOwner(m *model.LocationModel) uuid.UUID { return m.OwnerID }

// Create stores a new location for the scope's owner.
func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	location.OwnerID = r.ownerID
	return r.db.WithContext(ctx).Create(model.LocationFromEntity(location)).Error
}

// FindByID retrieves one of the owner's locations.
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	m, err := findOwned(ctx, r.ownerScope, id, domainerror.ErrLocationNotFound, locationOwner)
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns the owner's locations ordered by name.
func (r *locationRepository) List(ctx context.Context) ([]*entity.Location, error) {
	var models []model.LocationModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", r.ownerID).
		Order("name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	locations := make([]*entity.Location, 0, len(models))
	for i := range models {
		locations = append(locations, models[i].ToEntity())
	}
	return locations, nil
}

// Update saves an existing location of the owner.
func (r *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	if _, err := findOwned(ctx, r.ownerScope, location.ID, domainerror.ErrLocationNotFound, locationOwner); err != nil {
		return err
	}
	location.OwnerID = r.ownerID
	return r.db.WithContext(ctx).Save(model.LocationFromEntity(location)).Error
}

// Delete removes one of the owner's locations.
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, r.ownerID).
		Delete(&model.LocationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLocationNotFound
	}
	return nil
}

// trackedPlantRepository implements the adapter.TrackedPlantRepository interface.
type trackedPlantRepository struct {
	*ownerScope
}

func plantOwner(m *model.TrackedPlantModel) uuid.UUID { return m.OwnerID }

// Create stores a new plant for the scope's owner.
func (r *trackedPlantRepository) Create(ctx context.Context, plant *entity.TrackedPlant) error {
	plant.OwnerID = r.ownerID
	return r.db.WithContext(ctx).Create(model.TrackedPlantFromEntity(plant)).Error
}

// FindByID retrieves one of the owner's plants.
func (r *trackedPlantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TrackedPlant, error) {
	m, err := findOwned(ctx, r.ownerScope, id, domainerror.ErrPlantNotFound, plantOwner)
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns the owner's plants in creation order.
func (r *trackedPlantRepository) List(ctx context.Context) ([]*entity.TrackedPlant, error) {
	return r.find(r.db.WithContext(ctx).Where("owner_id = ?", r.ownerID))
}

// ListByLocation returns the owner's plants at a location in creation order.
func (r *trackedPlantRepository) ListByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.TrackedPlant, error) {
	return r.find(r.db.WithContext(ctx).Where("owner_id = ? AND location_id = ?", r.ownerID, locationID))
}

func (r *trackedPlantRepository) find(query *gorm.DB) ([]*entity.TrackedPlant, error) {
	var models []model.TrackedPlantModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	plants := make([]*entity.TrackedPlant, 0, len(models))
	for i := range models {
		plants = append(plants, models[i].ToEntity())
	}
	return plants, nil
}

// CountByLocation counts the owner's plants at a location.
func (r *trackedPlantRepository) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TrackedPlantModel{}).
		Where("owner_id = ? AND location_id = ?", r.ownerID, locationID).
		Count(&count)
	return count, result.Error
}

// Update saves an existing plant of the owner.
func (r *trackedPlantRepository) Update(ctx context.Context, plant *entity.TrackedPlant) error {
	if _, err := findOwned(ctx, r.ownerScope, plant.ID, domainerror.ErrPlantNotFound, plantOwner); err != nil {
		return err
	}
	plant.OwnerID = r.ownerID
	return r.db.WithContext(ctx).Save(model.TrackedPlantFromEntity(plant)).Error
}

// Delete removes one of the owner's plants.
func (r *trackedPlantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, r.ownerID).
		Delete(&model.TrackedPlantModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPlantNotFound
	}
	return nil
}

// wishlistRepository implements the adapter.WishlistRepository interface.
type wishlistRepository struct {
	*ownerScope
}

func wishlistOwner(m *model.WishlistEntryModel) uuid.UUID { return m.OwnerID }

// Create stores a new entry. The unique index on (owner_id, external_id)
// rejects a species that is already listed.
func (r *wishlistRepository) Create(ctx context.Context, entry *entity.WishlistEntry) error {
	entry.OwnerID = r.ownerID
	result := r.db.WithContext(ctx).Create(model.WishlistEntryFromEntity(entry))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrAlreadyOnWishlist
		}
		if exists, err := r.ExistsByExternalID(ctx, entry.ExternalID); err == nil && exists {
			return domainerror.ErrAlreadyOnWishlist
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves one of the owner's wishlist entries.
func (r *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistEntry, error) {
	m, err := findOwned(ctx, r.ownerScope, id, domainerror.ErrWishlistEntryNotFound, wishlistOwner)
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

// ExistsByExternalID checks whether the owner already listed a species.
func (r *wishlistRepository) ExistsByExternalID(ctx context.Context, externalID int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.WishlistEntryModel{}).
		Where("owner_id = ? AND external_id = ?", r.ownerID, externalID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List returns the owner's entries in the order they were added.
func (r *wishlistRepository) List(ctx context.Context) ([]*entity.WishlistEntry, error) {
	var models []model.WishlistEntryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", r.ownerID).
		Order("added_date ASC").
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.WishlistEntry, 0, len(models))
	for i := range models {
		entries = append(entries, models[i].ToEntity())
	}
	return entries, nil
}

// Delete removes one of the owner's wishlist entries.
func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, r.ownerID).
		Delete(&model.WishlistEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWishlistEntryNotFound
	}
	return nil
}
