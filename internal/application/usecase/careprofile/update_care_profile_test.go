package careprofile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/care-for-plants/backend/internal/application/adapter/adaptertest"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

type updateFixture struct {
	profiles *adaptertest.CareProfileRepository
	store    *adaptertest.GardenStore
	owner    uuid.UUID
	profile  *entity.CareProfile
	plant    *entity.TrackedPlant
	entry    *entity.WishlistEntry
	uc       *UpdateCareProfileUseCase
	now      time.Time
}

func newUpdateFixture(t *testing.T) *updateFixture {
	t.Helper()
	ctx := context.Background()

	f := &updateFixture{
		profiles: adaptertest.NewCareProfileRepository(),
		store:    adaptertest.NewGardenStore(),
		owner:    uuid.New(),
		now:      time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
	}
	f.profile = entity.NewCareProfile(182512, "Monstera deliciosa", "", "")
	require.NoError(t, f.profiles.Create(ctx, f.profile))

	scope := f.store.ForOwner(f.owner)
	location := entity.NewLocation(f.owner, "Living room")
	require.NoError(t, scope.Locations().Create(ctx, location))
	f.plant = entity.NewTrackedPlant(f.owner, location.ID, f.profile.ID, "Monty", f.now)
	require.NoError(t, scope.Plants().Create(ctx, f.plant))
	f.entry = entity.NewWishlistEntry(f.owner, 182512, f.profile.ID, f.now)
	require.NoError(t, scope.Wishlist().Create(ctx, f.entry))

	f.uc = NewUpdateCareProfileUseCase(f.profiles, f.store, adaptertest.FixedClock{At: f.now})
	return f
}

func TestUpdateCareProfileUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("patches through a plant", func(t *testing.T) {
		f := newUpdateFixture(t)
		soil := "sandig"

		output, err := f.uc.Execute(ctx, UpdateCareProfileInput{
			UserID:            f.owner,
			PlantID:           &f.plant.ID,
			WaterIntervalDays: intPtr(12),
			SoilType:          &soil,
		})

		require.NoError(t, err)
		assert.Equal(t, 12, output.Profile.WaterIntervalDays)
		assert.Equal(t, entity.SoilSandy, output.Profile.SoilType)
		assert.Equal(t, entity.DefaultFertilizeIntervalDays, output.Profile.FertilizeIntervalDays)
		require.NotNil(t, output.Profile.ManuallyEditedAt)
		assert.Equal(t, f.now, *output.Profile.ManuallyEditedAt)

		stored, err := f.profiles.FindByID(ctx, f.profile.ID)
		require.NoError(t, err)
		assert.Equal(t, 12, stored.WaterIntervalDays)
	})

	t.Run("patches through a wishlist entry", func(t *testing.T) {
		f := newUpdateFixture(t)
		toxic := true

		output, err := f.uc.Execute(ctx, UpdateCareProfileInput{
			UserID:          f.owner,
			WishlistEntryID: &f.entry.ID,
			IsToxic:         &toxic,
		})

		require.NoError(t, err)
		assert.True(t, output.Profile.IsToxic)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			input UpdateCareProfileInput
		}{
			{"zero interval", UpdateCareProfileInput{PruneIntervalDays: intPtr(0)}},
			{"light above scale", UpdateCareProfileInput{SunlightRequirement: intPtr(11)}},
			{"humidity below scale", UpdateCareProfileInput{HumidityRequirement: intPtr(0)}},
			{"inverted temperature", UpdateCareProfileInput{TemperatureMin: intPtr(30)}},
			{"non-positive height", UpdateCareProfileInput{MaxHeightCM: intPtr(0)}},
			{"blank soil", UpdateCareProfileInput{SoilType: strPtr("  ")}},
			{"soil too long", UpdateCareProfileInput{SoilType: strPtr(strings.Repeat("x", entity.MaxSoilTypeLength+1))}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newUpdateFixture(t)
				input := tt.input
				input.UserID = f.owner
				input.PlantID = &f.plant.ID

				_, err := f.uc.Execute(ctx, input)

				var plantErr *domainerror.PlantError
				require.True(t, errors.As(err, &plantErr))
				assert.Equal(t, domainerror.ErrCodeInvalidCareProfile, plantErr.Code)

				stored, err := f.profiles.FindByID(ctx, f.profile.ID)
				require.NoError(t, err)
				assert.Nil(t, stored.ManuallyEditedAt)
			})
		}
	})

	t.Run("soil at the limit counts characters", func(t *testing.T) {
		f := newUpdateFixture(t)
		soil := strings.Repeat("ö", entity.MaxSoilTypeLength)

		output, err := f.uc.Execute(ctx, UpdateCareProfileInput{UserID: f.owner, PlantID: &f.plant.ID, SoilType: &soil})

		require.NoError(t, err)
		assert.Equal(t, entity.SoilType(soil), output.Profile.SoilType)
	})

	t.Run("another user's plant is not found", func(t *testing.T) {
		f := newUpdateFixture(t)

		_, err := f.uc.Execute(ctx, UpdateCareProfileInput{
			UserID:            uuid.New(),
			PlantID:           &f.plant.ID,
			WaterIntervalDays: intPtr(3),
		})

		var plantErr *domainerror.PlantError
		require.True(t, errors.As(err, &plantErr))
		assert.Equal(t, domainerror.ErrCodePlantNotFound, plantErr.Code)
	})

	t.Run("requires a target", func(t *testing.T) {
		f := newUpdateFixture(t)

		_, err := f.uc.Execute(ctx, UpdateCareProfileInput{UserID: f.owner})

		var plantErr *domainerror.PlantError
		require.True(t, errors.As(err, &plantErr))
		assert.Equal(t, domainerror.ErrCodeMissingPlantFields, plantErr.Code)
	})
}
