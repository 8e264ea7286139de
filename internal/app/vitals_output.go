package app

import (
	"time"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

type VitalsOutput struct {
	ID               string
	RecordedAt       time.Time
	SystolicBP       *int
	DiastolicBP      *int
	HeartRate        *int
	RespiratoryRate  *int
	OxygenSaturation *int
	Temperature      *float64
	BloodSugar       *float64
	Notes            string
	CreatedAt        time.Time
}

type VitalsListOutput struct {
	Vitals []VitalsOutput
	Count  int32
}

func FromVitalSigns(v *domain.VitalSigns) VitalsOutput {
	r := v.Readings()

	return VitalsOutput{
		ID:               v.ID().String(),
		RecordedAt:       v.RecordedAt(),
		SystolicBP:       r.SystolicBP,
		DiastolicBP:      r.DiastolicBP,
		HeartRate:        r.HeartRate,
		RespiratoryRate:  r.RespiratoryRate,
		OxygenSaturation: r.OxygenSaturation,
		Temperature:      r.Temperature,
		BloodSugar:       r.BloodSugar,
		Notes:            v.Notes(),
		CreatedAt:        v.CreatedAt(),
	}
}

func FromVitalSignsList(list []*domain.VitalSigns) VitalsListOutput {
	outputs := make([]VitalsOutput, 0, len(list))
	for _, v := range list {
		outputs = append(outputs, FromVitalSigns(v))
	}

	return VitalsListOutput{
		Vitals: outputs,
		Count:  int32(len(outputs)), //nolint:gosec
	}
}
