package entity

import (
	"time"

	"github.com/google/uuid"
)

// CareAction names one of the recurring care tasks.
type CareAction string

const (
	CareActionWater     CareAction = "water"
	CareActionFertilize CareAction = "fertilize"
	CareActionRepot     CareAction = "repot"
	CareActionPrune     CareAction = "prune"
	CareActionPropagate CareAction = "propagate"
)

// CareActions lists every care action in priority order. Schedule ties are
// resolved in favour of the action that comes first here.
var CareActions = []CareAction{
	CareActionWater,
	CareActionFertilize,
	CareActionRepot,
	CareActionPrune,
	CareActionPropagate,
}

// ParseCareAction converts a raw string into a CareAction.
func ParseCareAction(s string) (CareAction, bool) {
	for _, action := range CareActions {
		if string(action) == s {
			return action, true
		}
	}
	return "", false
}

// MaxNicknameLength is the longest nickname a tracked plant can carry.
const MaxNicknameLength = 100

// TrackedPlant is one physical specimen owned by a user.
type TrackedPlant struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Nickname       string
	LocationID     uuid.UUID
	CareProfileID  uuid.UUID
	DateAcquired   time.Time
	LastWatered    *time.Time
	LastFertilized *time.Time
	LastRepotted   *time.Time
	LastPruned     *time.Time
	LastPropagated *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTrackedPlant creates a plant acquired on the given date. Every care
// history date starts at the acquisition date.
func NewTrackedPlant(ownerID, locationID, careProfileID uuid.UUID, nickname string, acquired time.Time) *TrackedPlant {
	now := time.Now().UTC()
	acquired = TruncateToDate(acquired)
	plant := &TrackedPlant{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Nickname:      nickname,
		LocationID:    locationID,
		CareProfileID: careProfileID,
		DateAcquired:  acquired,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, action := range CareActions {
		plant.MarkDone(action, acquired)
	}
	return plant
}

// lastPerformedField returns a pointer to the history field of an action.
func (p *TrackedPlant) lastPerformedField(action CareAction) **time.Time {
	switch action {
	case CareActionWater:
		return &p.LastWatered
	case CareActionFertilize:
		return &p.LastFertilized
	case CareActionRepot:
		return &p.LastRepotted
	case CareActionPrune:
		return &p.LastPruned
	case CareActionPropagate:
		return &p.LastPropagated
	default:
		return nil
	}
}

// LastPerformed returns when the action was last done, falling back to the
// acquisition date when there is no record.
func (p *TrackedPlant) LastPerformed(action CareAction) time.Time {
	if field := p.lastPerformedField(action); field != nil && *field != nil {
		return **field
	}
	return p.DateAcquired
}

// MarkDone records the action as performed on the given day.
func (p *TrackedPlant) MarkDone(action CareAction, day time.Time) {
	field := p.lastPerformedField(action)
	if field == nil {
		return
	}
	d := TruncateToDate(day)
	*field = &d
	p.UpdatedAt = time.Now().UTC()
}

// ShiftHistory moves every recorded care date back by the given number of
// days. The acquisition date and missing records are left untouched.
func (p *TrackedPlant) ShiftHistory(days int) {
	for _, action := range CareActions {
		field := p.lastPerformedField(action)
		if *field == nil {
			continue
		}
		shifted := (**field).AddDate(0, 0, -days)
		*field = &shifted
	}
	p.UpdatedAt = time.Now().UTC()
}

// TruncateToDate returns midnight UTC of the calendar day t falls on.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
