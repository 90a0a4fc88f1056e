package careprofile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/care-for-plants/backend/internal/application/adapter"
)

// SearchSpeciesInput represents the input for a species search.
type SearchSpeciesInput struct {
	Query string
}

// SearchSpeciesOutput represents the output of a species search.
type SearchSpeciesOutput struct {
	Results []adapter.SpeciesSummary
}

// SearchSpeciesUseCase searches the plant catalog.
type SearchSpeciesUseCase struct {
	catalog adapter.PlantCatalog
}

// NewSearchSpeciesUseCase creates a new SearchSpeciesUseCase instance.
func NewSearchSpeciesUseCase(catalog adapter.PlantCatalog) *SearchSpeciesUseCase {
	return &SearchSpeciesUseCase{catalog: catalog}
}

// Execute runs the search. Catalog failures are logged and yield no results.
func (uc *SearchSpeciesUseCase) Execute(ctx context.Context, input SearchSpeciesInput) (*SearchSpeciesOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchSpeciesOutput{Results: []adapter.SpeciesSummary{}}, nil
	}

	results, err := uc.catalog.Search(ctx, query)
	if err != nil {
		slog.Warn("species search failed", "query", query, "error", err)
		return &SearchSpeciesOutput{Results: []adapter.SpeciesSummary{}}, nil
	}
	if results == nil {
		results = []adapter.SpeciesSummary{}
	}

	return &SearchSpeciesOutput{Results: results}, nil
}
