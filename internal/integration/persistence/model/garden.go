package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// LocationModel represents the locations table.
type LocationModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID `gorm:"type:uuid;index;not null"`
	Name              string    `gorm:"type:varchar(100);not null"`
	LightLevel        int       `gorm:"not null"`
	HumidityLevel     int       `gorm:"not null"`
	TemperatureAvg    int       `gorm:"not null"`
	AvailableSpaceCM  int       `gorm:"column:available_space_cm;not null"`
	HasPetsOrChildren bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for the LocationModel.
func (LocationModel) TableName() string {
	return "locations"
}

// ToEntity converts a LocationModel to a domain Location entity.
func (m *LocationModel) ToEntity() *entity.Location {
	return &entity.Location{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		LightLevel:        m.LightLevel,
		HumidityLevel:     m.HumidityLevel,
		TemperatureAvg:    m.TemperatureAvg,
		AvailableSpaceCM:  m.AvailableSpaceCM,
		HasPetsOrChildren: m.HasPetsOrChildren,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// LocationFromEntity creates a LocationModel from a domain Location entity.
func LocationFromEntity(l *entity.Location) *LocationModel {
	return &LocationModel{
		ID:                l.ID,
		OwnerID:           l.OwnerID,
		Name:              l.Name,
		LightLevel:        l.LightLevel,
		HumidityLevel:     l.HumidityLevel,
		TemperatureAvg:    l.TemperatureAvg,
		AvailableSpaceCM:  l.AvailableSpaceCM,
		HasPetsOrChildren: l.HasPetsOrChildren,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// TrackedPlantModel represents the tracked_plants table.
type TrackedPlantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Nickname       string    `gorm:"type:varchar(100);not null"`
	LocationID     uuid.UUID `gorm:"type:uuid;index;not null"`
	CareProfileID  uuid.UUID `gorm:"type:uuid;index;not null"`
	DateAcquired   time.Time `gorm:"not null"`
	LastWatered    *time.Time
	LastFertilized *time.Time
	LastRepotted   *time.Time
	LastPruned     *time.Time
	LastPropagated *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the TrackedPlantModel.
func (TrackedPlantModel) TableName() string {
	return "tracked_plants"
}

// ToEntity converts a TrackedPlantModel to a domain TrackedPlant entity.
func (m *TrackedPlantModel) ToEntity() *entity.TrackedPlant {
	return &entity.TrackedPlant{
		ID:             m.ID,
		OwnerID:        m.OwnerID,
		Nickname:       m.Nickname,
		LocationID:     m.LocationID,
		CareProfileID:  m.CareProfileID,
		DateAcquired:   entity.TruncateToDate(m.DateAcquired),
		LastWatered:    truncateDate(m.LastWatered),
		LastFertilized: truncateDate(m.LastFertilized),
		LastRepotted:   truncateDate(m.LastRepotted),
		LastPruned:     truncateDate(m.LastPruned),
		LastPropagated: truncateDate(m.LastPropagated),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TrackedPlantFromEntity creates a TrackedPlantModel from a domain TrackedPlant entity.
func TrackedPlantFromEntity(p *entity.TrackedPlant) *TrackedPlantModel {
	return &TrackedPlantModel{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Nickname:       p.Nickname,
		LocationID:     p.LocationID,
		CareProfileID:  p.CareProfileID,
		DateAcquired:   p.DateAcquired,
		LastWatered:    p.LastWatered,
		LastFertilized: p.LastFertilized,
		LastRepotted:   p.LastRepotted,
		LastPruned:     p.LastPruned,
		LastPropagated: p.LastPropagated,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// WishlistEntryModel represents the wishlist_entries table. A species appears
// at most once per owner.
type WishlistEntryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_owner_species"`
	ExternalID    int64     `gorm:"not null;uniqueIndex:idx_wishlist_owner_species"`
	CareProfileID uuid.UUID `gorm:"type:uuid;index;not null"`
	AddedDate     time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the WishlistEntryModel.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}

// ToEntity converts a WishlistEntryModel to a domain WishlistEntry entity.
func (m *WishlistEntryModel) ToEntity() *entity.WishlistEntry {
	return &entity.WishlistEntry{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		ExternalID:    m.ExternalID,
		CareProfileID: m.CareProfileID,
		AddedDate:     entity.TruncateToDate(m.AddedDate),
		CreatedAt:     m.CreatedAt,
	}
}

// WishlistEntryFromEntity creates a WishlistEntryModel from a domain WishlistEntry entity.
func WishlistEntryFromEntity(e *entity.WishlistEntry) *WishlistEntryModel {
	return &WishlistEntryModel{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		ExternalID:    e.ExternalID,
		CareProfileID: e.CareProfileID,
		AddedDate:     e.AddedDate,
		CreatedAt:     e.CreatedAt,
	}
}

func truncateDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.TruncateToDate(*t)
	return &d
}
