package plant

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// AddPlantInput represents the input for adding a plant at a location.
type AddPlantInput struct {
	UserID     uuid.UUID
	ExternalID int64
	LocationID uuid.UUID
	Nickname   string
	// DateAcquired defaults to today.
	DateAcquired *time.Time
}

// AddPlantOutput represents the output of adding a plant.
type AddPlantOutput struct {
	PlantView
}

// AddPlantUseCase starts tracking a plant of a species at one of the user's locations.
type AddPlantUseCase struct {
	store    adapter.GardenStore
	resolver adapter.CareProfileResolver
	clock    adapter.Clock
}

// NewAddPlantUseCase creates a new AddPlantUseCase instance.
func NewAddPlantUseCase(
	store adapter.GardenStore,
	resolver adapter.CareProfileResolver,
	clock adapter.Clock,
) *AddPlantUseCase {
	return &AddPlantUseCase{
		store:    store,
		resolver: resolver,
		clock:    clock,
	}
}

// Execute adds the plant. The species' care profile is resolved as a side effect.
func (uc *AddPlantUseCase) Execute(ctx context.Context, input AddPlantInput) (*AddPlantOutput, error) {
	nickname := strings.TrimSpace(input.Nickname)
	if utf8.RuneCountInString(nickname) > entity.MaxNicknameLength {
		return nil, domainerror.NewPlantError(
			domainerror.ErrCodeInvalidPlant,
			fmt.Sprintf("nickname must be at most %d characters", entity.MaxNicknameLength),
			domainerror.ErrInvalidPlant,
		)
	}

	scope := uc.store.ForOwner(input.UserID)

	location, err := scope.Locations().FindByID(ctx, input.LocationID)
	if err != nil {
		return nil, locationNotFound(err)
	}

	profile, err := uc.resolver.Resolve(ctx, input.ExternalID)
	if err != nil {
		return nil, err
	}

	today := uc.clock.Now()
	acquired := today
	if input.DateAcquired != nil {
		acquired = *input.DateAcquired
	}

	if nickname == "" {
		nickname = defaultNickname(profile.DisplayName())
	}

	plant := entity.NewTrackedPlant(input.UserID, location.ID, profile.ID, nickname, acquired)
	if err := scope.Plants().Create(ctx, plant); err != nil {
		return nil, fmt.Errorf("failed to create plant: %w", err)
	}

	return &AddPlantOutput{PlantView: newPlantView(plant, profile, today)}, nil
}

// defaultNickname cuts species names that would not fit a nickname.
func defaultNickname(name string) string {
	runes := []rune(name)
	if len(runes) > entity.MaxNicknameLength {
		return strings.TrimSpace(string(runes[:entity.MaxNicknameLength]))
	}
	return name
}
