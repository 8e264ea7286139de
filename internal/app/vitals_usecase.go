package app

import (
	"context"
	"time"
)

type VitalsUseCase interface {
	RecordVitals(ctx context.Context, input RecordVitalsInput) (VitalsOutput, error)
	ListVitals(ctx context.Context) (VitalsListOutput, error)
	GetLatestVitals(ctx context.Context) (VitalsOutput, error)
	DeleteVitals(ctx context.Context, input DeleteVitalsInput) error
}

type RecordVitalsInput struct {
	RecordedAt       time.Time
	SystolicBP       *int
	DiastolicBP      *int
	HeartRate        *int
	RespiratoryRate  *int
	OxygenSaturation *int
	Temperature      *float64
	BloodSugar       *float64
	Notes            string
}

type DeleteVitalsInput struct {
	ID string
}
