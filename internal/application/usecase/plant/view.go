package plant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// PlantView is a tracked plant together with its care profile and schedule.
type PlantView struct {
	Plant    *entity.TrackedPlant
	Profile  *entity.CareProfile
	Schedule valueobject.CareSchedule
}

func newPlantView(p *entity.TrackedPlant, profile *entity.CareProfile, today time.Time) PlantView {
	return PlantView{
		Plant:    p,
		Profile:  profile,
		Schedule: valueobject.NextTask(p, profile, today),
	}
}

// buildViews loads the profiles of the given plants in one query and pairs
// them up. Plants whose profile vanished are skipped.
func buildViews(
	ctx context.Context,
	profileRepo adapter.CareProfileRepository,
	plants []*entity.TrackedPlant,
	today time.Time,
) ([]PlantView, error) {
	ids := make([]uuid.UUID, 0, len(plants))
	for _, p := range plants {
		ids = append(ids, p.CareProfileID)
	}

	profiles, err := profileRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load care profiles: %w", err)
	}

	views := make([]PlantView, 0, len(plants))
	for _, p := range plants {
		profile, ok := profiles[p.CareProfileID]
		if !ok {
			continue
		}
		views = append(views, newPlantView(p, profile, today))
	}
	return views, nil
}
