// Package careprofile contains use cases around the shared species care profiles.
package careprofile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// ResolveCareProfileUseCase returns the stored profile of a species, deriving
// and persisting it from the plant catalog on first use.
type ResolveCareProfileUseCase struct {
	profileRepo adapter.CareProfileRepository
	catalog     adapter.PlantCatalog
	recorder    adapter.ResolutionRecorder
}

// NewResolveCareProfileUseCase creates a new ResolveCareProfileUseCase instance.
// recorder may be nil.
func NewResolveCareProfileUseCase(
	profileRepo adapter.CareProfileRepository,
	catalog adapter.PlantCatalog,
	recorder adapter.ResolutionRecorder,
) *ResolveCareProfileUseCase {
	return &ResolveCareProfileUseCase{
		profileRepo: profileRepo,
		catalog:     catalog,
		recorder:    recorder,
	}
}

// Resolve implements adapter.CareProfileResolver. A stored profile is returned
// unchanged, including manual edits.
func (uc *ResolveCareProfileUseCase) Resolve(ctx context.Context, externalID int64) (*entity.CareProfile, error) {
	profile, err := uc.profileRepo.FindByExternalID(ctx, externalID)
	if err == nil {
		uc.record(adapter.ResolutionStored)
		return profile, nil
	}
	if !errors.Is(err, domainerror.ErrCareProfileNotFound) {
		return nil, fmt.Errorf("failed to find care profile: %w", err)
	}

	attrs, err := uc.catalog.Lookup(ctx, externalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSpeciesNotFound) {
			uc.record(adapter.ResolutionNotFound)
		} else {
			uc.record(adapter.ResolutionLookupError)
			slog.Warn("plant catalog lookup failed", "external_id", externalID, "error", err)
		}
		return nil, domainerror.CatalogError(err)
	}

	profile = valueobject.DeriveCareProfile(*attrs)
	profile.ExternalID = externalID

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		if !errors.Is(err, domainerror.ErrCareProfileExists) {
			return nil, fmt.Errorf("failed to create care profile: %w", err)
		}
		// Another request stored the profile first.
		stored, err := uc.profileRepo.FindByExternalID(ctx, externalID)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read care profile: %w", err)
		}
		uc.record(adapter.ResolutionStored)
		return stored, nil
	}

	uc.record(adapter.ResolutionDerived)
	slog.Info("care profile derived", "external_id", externalID, "name", profile.DisplayName())
	return profile, nil
}

func (uc *ResolveCareProfileUseCase) record(outcome string) {
	if uc.recorder != nil {
		uc.recorder.RecordResolution(outcome)
	}
}
