package valueobject

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

var scheduleToday = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func newScheduledPlant(acquired time.Time) *entity.TrackedPlant {
	return entity.NewTrackedPlant(uuid.New(), uuid.New(), uuid.New(), "Fern", acquired)
}

func TestNextTask_OverdueWatering(t *testing.T) {
	profile := newTestProfile()
	profile.WaterIntervalDays = 7
	plant := newScheduledPlant(scheduleToday.AddDate(0, 0, -10))

	schedule := NextTask(plant, profile, scheduleToday)

	assert.Equal(t, -3, schedule.DaysUntilDue[entity.CareActionWater])
	assert.Equal(t, entity.CareActionWater, schedule.NextAction)
	assert.Equal(t, -3, schedule.NextActionDays)
	assert.Equal(t, DueStatusOverdue, schedule.Status)
}

func TestNextTask_Status(t *testing.T) {
	tests := []struct {
		name          string
		daysSinceDone int
		expected      DueStatus
		expectedDays  int
	}{
		{name: "ok", daysSinceDone: 2, expected: DueStatusOK, expectedDays: 5},
		{name: "due today", daysSinceDone: 7, expected: DueStatusDueToday, expectedDays: 0},
		{name: "overdue", daysSinceDone: 8, expected: DueStatusOverdue, expectedDays: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := newTestProfile()
			plant := newScheduledPlant(scheduleToday.AddDate(0, 0, -tt.daysSinceDone))

			schedule := NextTask(plant, profile, scheduleToday)

			assert.Equal(t, tt.expected, schedule.Status)
			assert.Equal(t, tt.expectedDays, schedule.NextActionDays)
		})
	}
}

func TestNextTask_FallsBackToAcquisitionDate(t *testing.T) {
	profile := newTestProfile()
	plant := newScheduledPlant(scheduleToday.AddDate(0, 0, -3))
	plant.LastWatered = nil
	plant.LastFertilized = nil

	schedule := NextTask(plant, profile, scheduleToday)

	assert.Equal(t, 4, schedule.DaysUntilDue[entity.CareActionWater])
	assert.Equal(t, 27, schedule.DaysUntilDue[entity.CareActionFertilize])
	assert.Equal(t, 727, schedule.DaysUntilDue[entity.CareActionRepot])
	assert.Equal(t, 87, schedule.DaysUntilDue[entity.CareActionPrune])
	assert.Equal(t, 177, schedule.DaysUntilDue[entity.CareActionPropagate])
}

func TestNextTask_TiesFollowActionPriority(t *testing.T) {
	profile := newTestProfile()
	profile.WaterIntervalDays = 30
	profile.FertilizeIntervalDays = 30
	plant := newScheduledPlant(scheduleToday)

	schedule := NextTask(plant, profile, scheduleToday)

	assert.Equal(t, entity.CareActionWater, schedule.NextAction)

	profile.WaterIntervalDays = 31
	schedule = NextTask(plant, profile, scheduleToday)

	assert.Equal(t, entity.CareActionFertilize, schedule.NextAction)

	profile.PruneIntervalDays = 10
	profile.PropagateIntervalDays = 10
	schedule = NextTask(plant, profile, scheduleToday)

	assert.Equal(t, entity.CareActionPrune, schedule.NextAction)
	assert.Equal(t, 10, schedule.NextActionDays)
}

func TestNextTask_AdvancingTodayShiftsEveryAction(t *testing.T) {
	profile := newTestProfile()
	plant := newScheduledPlant(scheduleToday.AddDate(0, 0, -20))
	water := scheduleToday.AddDate(0, 0, -2)
	plant.LastWatered = &water

	base := NextTask(plant, profile, scheduleToday)

	for _, k := range []int{1, 5, 40, 400} {
		later := NextTask(plant, profile, scheduleToday.AddDate(0, 0, k))
		for _, action := range entity.CareActions {
			assert.Equal(t, base.DaysUntilDue[action]-k, later.DaysUntilDue[action], "action %s after %d days", action, k)
		}
	}
}

func TestNextTask_IgnoresTimeOfDay(t *testing.T) {
	profile := newTestProfile()
	plant := newScheduledPlant(scheduleToday.AddDate(0, 0, -7))

	morning := NextTask(plant, profile, scheduleToday.Add(30*time.Minute))
	evening := NextTask(plant, profile, scheduleToday.Add(23*time.Hour+59*time.Minute))

	assert.Equal(t, 0, morning.NextActionDays)
	assert.Equal(t, 0, evening.NextActionDays)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(scheduleToday, scheduleToday.Add(5*time.Hour)))
	assert.Equal(t, 1, DaysBetween(scheduleToday, scheduleToday.AddDate(0, 0, 1)))
	assert.Equal(t, -28, DaysBetween(scheduleToday, scheduleToday.AddDate(0, -1, 0)))
}
