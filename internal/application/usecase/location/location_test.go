package location

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/care-for-plants/backend/internal/application/adapter/adaptertest"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

var testNow = time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func requireCode(t *testing.T, err error, code domainerror.PlantErrorCode) {
	t.Helper()
	var plantErr *domainerror.PlantError
	require.True(t, errors.As(err, &plantErr), "expected PlantError, got %v", err)
	assert.Equal(t, code, plantErr.Code)
}

func TestCreateLocationUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("applies defaults", func(t *testing.T) {
		store := adaptertest.NewGardenStore()

		output, err := NewCreateLocationUseCase(store).Execute(ctx, CreateLocationInput{UserID: owner, Name: " Hallway "})

		require.NoError(t, err)
		assert.Equal(t, "Hallway", output.Location.Name)
		assert.Equal(t, entity.DefaultLightLevel, output.Location.LightLevel)
		assert.Equal(t, entity.DefaultHumidityLevel, output.Location.HumidityLevel)
		assert.Equal(t, entity.DefaultTemperatureAvg, output.Location.TemperatureAvg)
		assert.Equal(t, entity.DefaultAvailableSpaceCM, output.Location.AvailableSpaceCM)
		assert.False(t, output.Location.HasPetsOrChildren)
		assert.Equal(t, owner, output.Location.OwnerID)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			input CreateLocationInput
		}{
			{"blank name", CreateLocationInput{Name: "  "}},
			{"light out of range", CreateLocationInput{Name: "a", Environment: Environment{LightLevel: intPtr(11)}}},
			{"humidity out of range", CreateLocationInput{Name: "a", Environment: Environment{HumidityLevel: intPtr(0)}}},
			{"no space", CreateLocationInput{Name: "a", Environment: Environment{AvailableSpaceCM: intPtr(0)}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewCreateLocationUseCase(adaptertest.NewGardenStore()).Execute(ctx, tt.input)
				requireCode(t, err, domainerror.ErrCodeInvalidLocation)
			})
		}
	})
}

func TestUpdateLocationUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := adaptertest.NewGardenStore()
	created, err := NewCreateLocationUseCase(store).Execute(ctx, CreateLocationInput{UserID: owner, Name: "Office"})
	require.NoError(t, err)
	uc := NewUpdateLocationUseCase(store, adaptertest.FixedClock{At: testNow})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		pets := true
		output, err := uc.Execute(ctx, UpdateLocationInput{
			UserID:      owner,
			LocationID:  created.Location.ID,
			Environment: Environment{LightLevel: intPtr(9), HasPetsOrChildren: &pets},
		})

		require.NoError(t, err)
		assert.Equal(t, "Office", output.Location.Name)
		assert.Equal(t, 9, output.Location.LightLevel)
		assert.Equal(t, entity.DefaultHumidityLevel, output.Location.HumidityLevel)
		assert.True(t, output.Location.HasPetsOrChildren)
	})

	t.Run("another user's location is not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateLocationInput{UserID: uuid.New(), LocationID: created.Location.ID})
		requireCode(t, err, domainerror.ErrCodeLocationNotFound)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateLocationInput{
			UserID:      owner,
			LocationID:  created.Location.ID,
			Environment: Environment{HumidityLevel: intPtr(12)},
		})
		requireCode(t, err, domainerror.ErrCodeInvalidLocation)
	})
}

func TestDeleteLocationUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("refuses while plants remain", func(t *testing.T) {
		store := adaptertest.NewGardenStore()
		scope := store.ForOwner(owner)
		location := entity.NewLocation(owner, "Kitchen")
		require.NoError(t, scope.Locations().Create(ctx, location))
		plant := entity.NewTrackedPlant(owner, location.ID, uuid.New(), "Basil", testNow)
		require.NoError(t, scope.Plants().Create(ctx, plant))

		err := NewDeleteLocationUseCase(store).Execute(ctx, DeleteLocationInput{UserID: owner, LocationID: location.ID})

		requireCode(t, err, domainerror.ErrCodeLocationNotEmpty)
		_, err = scope.Locations().FindByID(ctx, location.ID)
		assert.NoError(t, err)
	})

	t.Run("deletes an empty location", func(t *testing.T) {
		store := adaptertest.NewGardenStore()
		scope := store.ForOwner(owner)
		location := entity.NewLocation(owner, "Kitchen")
		require.NoError(t, scope.Locations().Create(ctx, location))

		err := NewDeleteLocationUseCase(store).Execute(ctx, DeleteLocationInput{UserID: owner, LocationID: location.ID})

		require.NoError(t, err)
		_, err = scope.Locations().FindByID(ctx, location.ID)
		assert.ErrorIs(t, err, domainerror.ErrLocationNotFound)
	})

	t.Run("another user's location is not found", func(t *testing.T) {
		store := adaptertest.NewGardenStore()
		location := entity.NewLocation(owner, "Kitchen")
		require.NoError(t, store.ForOwner(owner).Locations().Create(ctx, location))

		err := NewDeleteLocationUseCase(store).Execute(ctx, DeleteLocationInput{UserID: uuid.New(), LocationID: location.ID})

		requireCode(t, err, domainerror.ErrCodeLocationNotFound)
	})
}

func TestGetLocationUseCase(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	store := adaptertest.NewGardenStore()
	profiles := adaptertest.NewCareProfileRepository()
	scope := store.ForOwner(owner)

	shade := entity.NewLocation(owner, "North window")
	shade.LightLevel = 3
	require.NoError(t, scope.Locations().Create(ctx, shade))

	fern := entity.NewCareProfile(1, "Nephrolepis exaltata", "Boston fern", "")
	fern.SunlightRequirement = 3
	cactus := entity.NewCareProfile(2, "Echinopsis", "Cactus", "")
	cactus.SunlightRequirement = 9
	require.NoError(t, profiles.Create(ctx, fern))
	require.NoError(t, profiles.Create(ctx, cactus))

	plant := entity.NewTrackedPlant(owner, shade.ID, fern.ID, "Fernando", testNow.AddDate(0, 0, -10))
	require.NoError(t, scope.Plants().Create(ctx, plant))
	require.NoError(t, scope.Wishlist().Create(ctx, entity.NewWishlistEntry(owner, 1, fern.ID, testNow)))
	require.NoError(t, scope.Wishlist().Create(ctx, entity.NewWishlistEntry(owner, 2, cactus.ID, testNow)))

	uc := NewGetLocationUseCase(store, profiles, adaptertest.FixedClock{At: testNow})

	output, err := uc.Execute(ctx, GetLocationInput{UserID: owner, LocationID: shade.ID})

	require.NoError(t, err)
	require.Len(t, output.Plants, 1)
	assert.Equal(t, plant.ID, output.Plants[0].Plant.ID)
	assert.Equal(t, -3, output.Plants[0].Schedule.NextActionDays)
	require.Len(t, output.SuitableWishlist, 1)
	assert.Equal(t, fern.ID, output.SuitableWishlist[0].Profile.ID)

	_, err = uc.Execute(ctx, GetLocationInput{UserID: uuid.New(), LocationID: shade.ID})
	requireCode(t, err, domainerror.ErrCodeLocationNotFound)
}
