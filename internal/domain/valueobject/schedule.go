package valueobject

import (
	"time"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// DueStatus classifies the most urgent pending care action.
type DueStatus string

const (
	DueStatusOK       DueStatus = "OK"
	DueStatusDueToday DueStatus = "DUE_TODAY"
	DueStatusOverdue  DueStatus = "OVERDUE"
)

// CareSchedule is the care plan of one plant as of a given day.
type CareSchedule struct {
	// DaysUntilDue holds, per action, the whole days until it is due again.
	// Negative values mean overdue.
	DaysUntilDue   map[entity.CareAction]int
	NextAction     entity.CareAction
	NextActionDays int
	Status         DueStatus
}

// NextTask computes the care schedule of a plant for the given day. The
// schedule is always derived from the plant's current history.
func NextTask(plant *entity.TrackedPlant, profile *entity.CareProfile, today time.Time) CareSchedule {
	today = entity.TruncateToDate(today)
	schedule := CareSchedule{
		DaysUntilDue: make(map[entity.CareAction]int, len(entity.CareActions)),
	}

	first := true
	for _, action := range entity.CareActions {
		due := entity.TruncateToDate(plant.LastPerformed(action)).AddDate(0, 0, profile.IntervalDays(action))
		days := DaysBetween(today, due)
		schedule.DaysUntilDue[action] = days
		if first || days < schedule.NextActionDays {
			schedule.NextAction = action
			schedule.NextActionDays = days
			first = false
		}
	}

	switch {
	case schedule.NextActionDays < 0:
		schedule.Status = DueStatusOverdue
	case schedule.NextActionDays == 0:
		schedule.Status = DueStatusDueToday
	default:
		schedule.Status = DueStatusOK
	}

	return schedule
}

// DaysBetween returns the number of calendar days from one date to another.
func DaysBetween(from, to time.Time) int {
	from = entity.TruncateToDate(from)
	to = entity.TruncateToDate(to)
	return int(to.Sub(from).Hours() / 24)
}
