package plant

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
)

// GetDashboardInput represents the input for the care dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// DashboardTask is the next care task of one plant.
type DashboardTask struct {
	PlantView
	LocationName string
}

// GetDashboardOutput lists the next task of every plant, most urgent first.
type GetDashboardOutput struct {
	Tasks []DashboardTask
}

// GetDashboardUseCase builds the care dashboard.
type GetDashboardUseCase struct {
	store       adapter.GardenStore
	profileRepo adapter.CareProfileRepository
	clock       adapter.Clock
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	store adapter.GardenStore,
	profileRepo adapter.CareProfileRepository,
	clock adapter.Clock,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		store:       store,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// Execute returns one task per plant sorted by days until due. Plants with
// the same urgency keep their creation order.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	scope := uc.store.ForOwner(input.UserID)

	plants, err := scope.Plants().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}

	locations, err := scope.Locations().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	names := make(map[uuid.UUID]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}

	views, err := buildViews(ctx, uc.profileRepo, plants, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	tasks := make([]DashboardTask, 0, len(views))
	for _, v := range views {
		tasks = append(tasks, DashboardTask{PlantView: v, LocationName: names[v.Plant.LocationID]})
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Schedule.NextActionDays < tasks[j].Schedule.NextActionDays
	})

	return &GetDashboardOutput{Tasks: tasks}, nil
}
