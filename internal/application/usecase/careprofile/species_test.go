package careprofile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/application/adapter/adaptertest"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

func TestSearchSpeciesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns catalog hits", func(t *testing.T) {
		catalog := new(adaptertest.MockPlantCatalog)
		hits := []adapter.SpeciesSummary{{ExternalID: 182512, ScientificName: "Monstera deliciosa"}}
		catalog.On("Search", mock.Anything, "monstera").Return(hits, nil)

		output, err := NewSearchSpeciesUseCase(catalog).Execute(ctx, SearchSpeciesInput{Query: "  monstera "})

		require.NoError(t, err)
		assert.Equal(t, hits, output.Results)
	})

	t.Run("catalog failure yields empty results", func(t *testing.T) {
		catalog := new(adaptertest.MockPlantCatalog)
		catalog.On("Search", mock.Anything, "ficus").Return(nil, domainerror.ErrLookupFailure)

		output, err := NewSearchSpeciesUseCase(catalog).Execute(ctx, SearchSpeciesInput{Query: "ficus"})

		require.NoError(t, err)
		assert.NotNil(t, output.Results)
		assert.Empty(t, output.Results)
	})

	t.Run("blank query skips the catalog", func(t *testing.T) {
		catalog := new(adaptertest.MockPlantCatalog)

		output, err := NewSearchSpeciesUseCase(catalog).Execute(ctx, SearchSpeciesInput{Query: " "})

		require.NoError(t, err)
		assert.Empty(t, output.Results)
		catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})
}

func TestPreviewSpeciesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("derives without persisting", func(t *testing.T) {
		repo := adaptertest.NewCareProfileRepository()
		catalog := new(adaptertest.MockPlantCatalog)
		catalog.On("Lookup", mock.Anything, int64(182512)).Return(monsteraAttributes(), nil)

		output, err := NewPreviewSpeciesUseCase(repo, catalog).Execute(ctx, PreviewSpeciesInput{ExternalID: 182512})

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.False(t, output.Stored)
		assert.Equal(t, 3, output.Profile.WaterIntervalDays)
		assert.Zero(t, repo.Creates())
	})

	t.Run("prefers the stored profile", func(t *testing.T) {
		repo := adaptertest.NewCareProfileRepository()
		stored := entity.NewCareProfile(182512, "Monstera deliciosa", "", "")
		require.NoError(t, repo.Create(ctx, stored))
		catalog := new(adaptertest.MockPlantCatalog)

		output, err := NewPreviewSpeciesUseCase(repo, catalog).Execute(ctx, PreviewSpeciesInput{ExternalID: 182512})

		require.NoError(t, err)
		assert.True(t, output.Stored)
		assert.Equal(t, stored.ID, output.Profile.ID)
	})

	t.Run("failure yields empty result", func(t *testing.T) {
		catalog := new(adaptertest.MockPlantCatalog)
		catalog.On("Lookup", mock.Anything, int64(9)).Return(nil, errors.New("timeout"))

		output, err := NewPreviewSpeciesUseCase(adaptertest.NewCareProfileRepository(), catalog).
			Execute(ctx, PreviewSpeciesInput{ExternalID: 9})

		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Nil(t, output.Profile)
	})
}
