package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// CareProfileModel represents the care_profiles table. Profiles are shared
// by every user and there is at most one per external species ID.
type CareProfileModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalID            int64     `gorm:"uniqueIndex;not null"`
	ScientificName        string    `gorm:"type:varchar(255);not null"`
	CommonName            string    `gorm:"type:varchar(255)"`
	ImageURL              string    `gorm:"type:varchar(1000)"`
	WaterIntervalDays     int       `gorm:"not null"`
	FertilizeIntervalDays int       `gorm:"not null"`
	RepotIntervalDays     int       `gorm:"not null"`
	PruneIntervalDays     int       `gorm:"not null"`
	PropagateIntervalDays int       `gorm:"not null"`
	SunlightRequirement   int       `gorm:"not null"`
	HumidityRequirement   int       `gorm:"not null"`
	TemperatureMin        int       `gorm:"not null"`
	TemperatureMax        int       `gorm:"not null"`
	MaxHeightCM           int       `gorm:"column:max_height_cm;not null"`
	SoilType              string    `gorm:"type:varchar(50);not null"`
	IsToxic               bool      `gorm:"not null;default:false"`
	ManuallyEditedAt      *time.Time
	CreatedAt             time.Time `gorm:"not null"`
	UpdatedAt             time.Time `gorm:"not null"`
}

// TableName returns the table name for the CareProfileModel.
func (CareProfileModel) TableName() string {
	return "care_profiles"
}

// ToEntity converts a CareProfileModel to a domain CareProfile entity.
func (m *CareProfileModel) ToEntity() *entity.CareProfile {
	return &entity.CareProfile{
		ID:                    m.ID,
		ExternalID:            m.ExternalID,
		ScientificName:        m.ScientificName,
		CommonName:            m.CommonName,
		ImageURL:              m.ImageURL,
		WaterIntervalDays:     m.WaterIntervalDays,
		FertilizeIntervalDays: m.FertilizeIntervalDays,
		RepotIntervalDays:     m.RepotIntervalDays,
		PruneIntervalDays:     m.PruneIntervalDays,
		PropagateIntervalDays: m.PropagateIntervalDays,
		SunlightRequirement:   m.SunlightRequirement,
		HumidityRequirement:   m.HumidityRequirement,
		TemperatureMin:        m.TemperatureMin,
		TemperatureMax:        m.TemperatureMax,
		MaxHeightCM:           m.MaxHeightCM,
		SoilType:              entity.SoilType(m.SoilType),
		IsToxic:               m.IsToxic,
		ManuallyEditedAt:      m.ManuallyEditedAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// CareProfileFromEntity creates a CareProfileModel from a domain CareProfile entity.
func CareProfileFromEntity(p *entity.CareProfile) *CareProfileModel {
	return &CareProfileModel{
		ID:                    p.ID,
		ExternalID:            p.ExternalID,
		ScientificName:        p.ScientificName,
		CommonName:            p.CommonName,
		ImageURL:              p.ImageURL,
		WaterIntervalDays:     p.WaterIntervalDays,
		FertilizeIntervalDays: p.FertilizeIntervalDays,
		RepotIntervalDays:     p.RepotIntervalDays,
		PruneIntervalDays:     p.PruneIntervalDays,
		PropagateIntervalDays: p.PropagateIntervalDays,
		SunlightRequirement:   p.SunlightRequirement,
		HumidityRequirement:   p.HumidityRequirement,
		TemperatureMin:        p.TemperatureMin,
		TemperatureMax:        p.TemperatureMax,
		MaxHeightCM:           p.MaxHeightCM,
		SoilType:              string(p.SoilType),
		IsToxic:               p.IsToxic,
		ManuallyEditedAt:      p.ManuallyEditedAt,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
