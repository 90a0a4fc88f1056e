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

// PreviewSpeciesInput represents the input for a species preview.
type PreviewSpeciesInput struct {
	ExternalID int64
}

// PreviewSpeciesOutput represents the output of a species preview.
type PreviewSpeciesOutput struct {
	Found   bool
	Stored  bool
	Profile *entity.CareProfile
}

// PreviewSpeciesUseCase shows the care profile a species would get without persisting it.
type PreviewSpeciesUseCase struct {
	profileRepo adapter.CareProfileRepository
	catalog     adapter.PlantCatalog
}

// NewPreviewSpeciesUseCase creates a new PreviewSpeciesUseCase instance.
func NewPreviewSpeciesUseCase(profileRepo adapter.CareProfileRepository, catalog adapter.PlantCatalog) *PreviewSpeciesUseCase {
	return &PreviewSpeciesUseCase{
		profileRepo: profileRepo,
		catalog:     catalog,
	}
}

// Execute returns the stored profile when there is one, otherwise a freshly
// derived one. Catalog failures yield an empty result instead of an error.
func (uc *PreviewSpeciesUseCase) Execute(ctx context.Context, input PreviewSpeciesInput) (*PreviewSpeciesOutput, error) {
	stored, err := uc.profileRepo.FindByExternalID(ctx, input.ExternalID)
	if err == nil {
		return &PreviewSpeciesOutput{Found: true, Stored: true, Profile: stored}, nil
	}
	if !errors.Is(err, domainerror.ErrCareProfileNotFound) {
		return nil, fmt.Errorf("failed to find care profile: %w", err)
	}

	attrs, err := uc.catalog.Lookup(ctx, input.ExternalID)
	if err != nil {
		slog.Warn("species preview failed", "external_id", input.ExternalID, "error", err)
		return &PreviewSpeciesOutput{Found: false}, nil
	}

	profile := valueobject.DeriveCareProfile(*attrs)
	profile.ExternalID = input.ExternalID

	return &PreviewSpeciesOutput{Found: true, Profile: profile}, nil
}
