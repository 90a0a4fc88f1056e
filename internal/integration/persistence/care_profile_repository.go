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

// careProfileRepository implements the adapter.CareProfileRepository interface.
type careProfileRepository struct {
	db *gorm.DB
}

// NewCareProfileRepository creates a new care profile repository instance.
func NewCareProfileRepository(db *gorm.DB) adapter.CareProfileRepository {
	return &careProfileRepository{
		db: db,
	}
}

// Create inserts a new profile. The unique index on external_id decides
// between concurrent inserts of the same species.
func (r *careProfileRepository) Create(ctx context.Context, profile *entity.CareProfile) error {
	result := r.db.WithContext(ctx).Create(model.CareProfileFromEntity(profile))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || r.existsByExternalID(ctx, profile.ExternalID) {
			return domainerror.ErrCareProfileExists
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a profile by its ID.
func (r *careProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareProfile, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByExternalID retrieves the profile of an external species ID.
func (r *careProfileRepository) FindByExternalID(ctx context.Context, externalID int64) (*entity.CareProfile, error) {
	return r.first(ctx, "external_id = ?", externalID)
}

// FindByIDs retrieves several profiles in one query.
func (r *careProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.CareProfile, error) {
	profiles := make(map[uuid.UUID]*entity.CareProfile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var models []model.CareProfileModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for i := range models {
		profiles[models[i].ID] = models[i].ToEntity()
	}
	return profiles, nil
}

// Update saves every field of an existing profile.
func (r *careProfileRepository) Update(ctx context.Context, profile *entity.CareProfile) error {
	result := r.db.WithContext(ctx).Save(model.CareProfileFromEntity(profile))
	return result.Error
}

func (r *careProfileRepository) first(ctx context.Context, query string, arg any) (*entity.CareProfile, error) {
	var profileModel model.CareProfileModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCareProfileNotFound
		}
		return nil, result.Error
	}
	return profileModel.ToEntity(), nil
}

func (r *careProfileRepository) existsByExternalID(ctx context.Context, externalID int64) bool {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CareProfileModel{}).
		Where("external_id = ?", externalID).Count(&count).Error
	return err == nil && count > 0
}
