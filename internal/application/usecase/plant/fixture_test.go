package plant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/application/adapter/adaptertest"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

var testToday = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// repoResolver resolves profiles that were stored up front.
type repoResolver struct {
	repo adapter.CareProfileRepository
}

func (r repoResolver) Resolve(ctx context.Context, externalID int64) (*entity.CareProfile, error) {
	profile, err := r.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, domainerror.CatalogError(domainerror.ErrSpeciesNotFound)
	}
	return profile, nil
}

type garden struct {
	t        *testing.T
	store    *adaptertest.GardenStore
	profiles *adaptertest.CareProfileRepository
	clock    adaptertest.FixedClock
	owner    uuid.UUID
}

func newGarden(t *testing.T) *garden {
	t.Helper()
	return &garden{
		t:        t,
		store:    adaptertest.NewGardenStore(),
		profiles: adaptertest.NewCareProfileRepository(),
		clock:    adaptertest.FixedClock{At: testToday},
		owner:    uuid.New(),
	}
}

func (g *garden) scope() adapter.OwnerScope {
	return g.store.ForOwner(g.owner)
}

func (g *garden) profile(externalID int64, name string, modify func(*entity.CareProfile)) *entity.CareProfile {
	g.t.Helper()
	p := entity.NewCareProfile(externalID, name, "", "")
	if modify != nil {
		modify(p)
	}
	require.NoError(g.t, g.profiles.Create(context.Background(), p))
	return p
}

func (g *garden) location(name string, modify func(*entity.Location)) *entity.Location {
	g.t.Helper()
	l := entity.NewLocation(g.owner, name)
	if modify != nil {
		modify(l)
	}
	require.NoError(g.t, g.scope().Locations().Create(context.Background(), l))
	return l
}

func (g *garden) plant(nickname string, location *entity.Location, profile *entity.CareProfile, acquired time.Time) *entity.TrackedPlant {
	g.t.Helper()
	p := entity.NewTrackedPlant(g.owner, location.ID, profile.ID, nickname, acquired)
	require.NoError(g.t, g.scope().Plants().Create(context.Background(), p))
	return p
}

func requireCode(t *testing.T, err error, code domainerror.PlantErrorCode) {
	t.Helper()
	var plantErr *domainerror.PlantError
	require.True(t, errors.As(err, &plantErr), "expected PlantError, got %v", err)
	assert.Equal(t, code, plantErr.Code)
}
