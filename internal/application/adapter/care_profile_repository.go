package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// CareProfileRepository persists the shared species care profiles.
type CareProfileRepository interface {
	// Create stores a new profile. It returns domainerror.ErrCareProfileExists
	// when a profile for the same external ID is already stored.
	Create(ctx context.Context, profile *entity.CareProfile) error

	// FindByID returns domainerror.ErrCareProfileNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareProfile, error)

	// FindByExternalID returns domainerror.ErrCareProfileNotFound when absent.
	FindByExternalID(ctx context.Context, externalID int64) (*entity.CareProfile, error)

	// FindByIDs returns the stored profiles keyed by ID. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.CareProfile, error)

	// Update saves a modified profile.
	Update(ctx context.Context, profile *entity.CareProfile) error
}

// CareProfileResolver returns the profile for a species, creating it on first use.
type CareProfileResolver interface {
	Resolve(ctx context.Context, externalID int64) (*entity.CareProfile, error)
}

// Resolution outcomes reported to a ResolutionRecorder.
const (
	ResolutionStored      = "stored"
	ResolutionDerived     = "derived"
	ResolutionNotFound    = "not_found"
	ResolutionLookupError = "lookup_failure"
)

// ResolutionRecorder counts care profile resolutions by outcome.
type ResolutionRecorder interface {
	RecordResolution(outcome string)
}
