package repository

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type VitalsModel struct {
	ID               string    `gorm:"column:id;size:36;primaryKey"`
	RecordedAt       time.Time `gorm:"column:recorded_at;not null;index:idx_vital_signs_recorded_at"`
	SystolicBP       *int      `gorm:"column:systolic_bp"`
	DiastolicBP      *int      `gorm:"column:diastolic_bp"`
	HeartRate        *int      `gorm:"column:heart_rate"`
	RespiratoryRate  *int      `gorm:"column:respiratory_rate"`
	OxygenSaturation *int      `gorm:"column:oxygen_saturation"`
	Temperature      *float64  `gorm:"column:temperature"`
	BloodSugar       *float64  `gorm:"column:blood_sugar"`
	Notes            string    `gorm:"column:notes;not null;default:''"`
	CreatedAt        time.Time `gorm:"column:created_at;not null"`
}

func (VitalsModel) TableName() string {
	return "vital_signs"
}

func (m *VitalsModel) ToEntity() (*domain.VitalSigns, error) {
	id, err := domain.VitalsIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	readings := domain.Readings{
		SystolicBP:       m.SystolicBP,
		DiastolicBP:      m.DiastolicBP,
		HeartRate:        m.HeartRate,
		RespiratoryRate:  m.RespiratoryRate,
		OxygenSaturation: m.OxygenSaturation,
		Temperature:      m.Temperature,
		BloodSugar:       m.BloodSugar,
	}

	return domain.ReconstituteVitalSigns(id, m.RecordedAt, readings, m.Notes, m.CreatedAt), nil
}

func FromVitalSigns(e *domain.VitalSigns) *VitalsModel {
	r := e.Readings()

	return &VitalsModel{
		ID:               e.ID().String(),
		RecordedAt:       e.RecordedAt(),
		SystolicBP:       r.SystolicBP,
		DiastolicBP:      r.DiastolicBP,
		HeartRate:        r.HeartRate,
		RespiratoryRate:  r.RespiratoryRate,
		OxygenSaturation: r.OxygenSaturation,
		Temperature:      r.Temperature,
		BloodSugar:       r.BloodSugar,
		Notes:            e.Notes(),
		CreatedAt:        e.CreatedAt(),
	}
}
