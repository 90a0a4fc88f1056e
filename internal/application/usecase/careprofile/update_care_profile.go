package careprofile

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// UpdateCareProfileInput represents a manual edit of a care profile. The
// profile is addressed through one of the owner's plants or wishlist entries.
// Nil fields are left unchanged.
type UpdateCareProfileInput struct {
	UserID          uuid.UUID
	PlantID         *uuid.UUID
	WishlistEntryID *uuid.UUID

	WaterIntervalDays     *int
	FertilizeIntervalDays *int
	RepotIntervalDays     *int
	PruneIntervalDays     *int
	PropagateIntervalDays *int
	SunlightRequirement   *int
	HumidityRequirement   *int
	TemperatureMin        *int
	TemperatureMax        *int
	MaxHeightCM           *int
	SoilType              *string
	IsToxic               *bool
}

// UpdateCareProfileOutput represents the output of a manual care profile edit.
type UpdateCareProfileOutput struct {
	Profile *entity.CareProfile
}

// UpdateCareProfileUseCase applies manual overrides to a shared care profile.
type UpdateCareProfileUseCase struct {
	profileRepo adapter.CareProfileRepository
	store       adapter.GardenStore
	clock       adapter.Clock
}

// NewUpdateCareProfileUseCase creates a new UpdateCareProfileUseCase instance.
func NewUpdateCareProfileUseCase(
	profileRepo adapter.CareProfileRepository,
	store adapter.GardenStore,
	clock adapter.Clock,
) *UpdateCareProfileUseCase {
	return &UpdateCareProfileUseCase{
		profileRepo: profileRepo,
		store:       store,
		clock:       clock,
	}
}

// Execute performs the manual edit.
func (uc *UpdateCareProfileUseCase) Execute(ctx context.Context, input UpdateCareProfileInput) (*UpdateCareProfileOutput, error) {
	profileID, err := uc.profileIDFor(ctx, input)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, domainerror.NotFoundError(err, domainerror.ErrCareProfileNotFound,
			domainerror.ErrCodeCareProfileNotFound, "find care profile")
	}

	applyPatch(profile, input)
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	profile.ManuallyEditedAt = &now
	profile.UpdatedAt = now

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update care profile: %w", err)
	}

	return &UpdateCareProfileOutput{Profile: profile}, nil
}

func (uc *UpdateCareProfileUseCase) profileIDFor(ctx context.Context, input UpdateCareProfileInput) (uuid.UUID, error) {
	scope := uc.store.ForOwner(input.UserID)

	switch {
	case input.PlantID != nil:
		plant, err := scope.Plants().FindByID(ctx, *input.PlantID)
		if err != nil {
			return uuid.Nil, domainerror.NotFoundError(err, domainerror.ErrPlantNotFound,
				domainerror.ErrCodePlantNotFound, "find plant")
		}
		return plant.CareProfileID, nil
	case input.WishlistEntryID != nil:
		entry, err := scope.Wishlist().FindByID(ctx, *input.WishlistEntryID)
		if err != nil {
			return uuid.Nil, domainerror.NotFoundError(err, domainerror.ErrWishlistEntryNotFound,
				domainerror.ErrCodeWishlistEntryNotFound, "find wishlist entry")
		}
		return entry.CareProfileID, nil
	default:
		return uuid.Nil, domainerror.NewPlantError(
			domainerror.ErrCodeMissingPlantFields,
			"a plant or wishlist entry is required",
			domainerror.ErrInvalidCareProfile,
		)
	}
}

func applyPatch(p *entity.CareProfile, in UpdateCareProfileInput) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&p.WaterIntervalDays, in.WaterIntervalDays)
	setInt(&p.FertilizeIntervalDays, in.FertilizeIntervalDays)
	setInt(&p.RepotIntervalDays, in.RepotIntervalDays)
	setInt(&p.PruneIntervalDays, in.PruneIntervalDays)
	setInt(&p.PropagateIntervalDays, in.PropagateIntervalDays)
	setInt(&p.SunlightRequirement, in.SunlightRequirement)
	setInt(&p.HumidityRequirement, in.HumidityRequirement)
	setInt(&p.TemperatureMin, in.TemperatureMin)
	setInt(&p.TemperatureMax, in.TemperatureMax)
	setInt(&p.MaxHeightCM, in.MaxHeightCM)
	if in.SoilType != nil {
		p.SoilType = entity.SoilType(strings.TrimSpace(*in.SoilType))
	}
	if in.IsToxic != nil {
		p.IsToxic = *in.IsToxic
	}
}

func validateProfile(p *entity.CareProfile) error {
	invalid := func(message string) error {
		return domainerror.NewPlantError(domainerror.ErrCodeInvalidCareProfile, message, domainerror.ErrInvalidCareProfile)
	}

	for _, action := range entity.CareActions {
		if p.IntervalDays(action) <= 0 {
			return invalid(fmt.Sprintf("%s interval must be positive", action))
		}
	}
	if p.SunlightRequirement < 1 || p.SunlightRequirement > 10 {
		return invalid("sunlight requirement must be between 1 and 10")
	}
	if p.HumidityRequirement < 1 || p.HumidityRequirement > 10 {
		return invalid("humidity requirement must be between 1 and 10")
	}
	if p.TemperatureMin > p.TemperatureMax {
		return invalid("minimum temperature must not exceed maximum temperature")
	}
	if p.MaxHeightCM <= 0 {
		return invalid("maximum height must be positive")
	}
	if p.SoilType == "" {
		return invalid("soil type must not be empty")
	}
	if utf8.RuneCountInString(string(p.SoilType)) > entity.MaxSoilTypeLength {
		return invalid(fmt.Sprintf("soil type must be at most %d characters", entity.MaxSoilTypeLength))
	}
	return nil
}
