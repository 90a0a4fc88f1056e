package adapter

import (
	"context"

	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// SpeciesSummary is one hit of a catalog search.
type SpeciesSummary struct {
	ExternalID     int64
	ScientificName string
	CommonName     string
	ImageURL       string
	Family         string
	Genus          string
}

// PlantCatalog is the external source of species data.
type PlantCatalog interface {
	// Search returns species matching a free-text query.
	Search(ctx context.Context, query string) ([]SpeciesSummary, error)

	// Lookup returns the raw attributes of a species. It fails with
	// domainerror.ErrSpeciesNotFound for unknown IDs and with
	// domainerror.ErrLookupFailure when the catalog cannot be used.
	Lookup(ctx context.Context, externalID int64) (*valueobject.SpeciesAttributes, error)
}
