package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestNewVitalSignsSuccess(t *testing.T) {
	tests := []struct {
		name     string
		readings domain.Readings
	}{
		{
			name: "full reading",
			readings: domain.Readings{
				SystolicBP:       intPtr(120),
				DiastolicBP:      intPtr(80),
				HeartRate:        intPtr(72),
				RespiratoryRate:  intPtr(16),
				OxygenSaturation: intPtr(98),
				Temperature:      floatPtr(36.6),
				BloodSugar:       floatPtr(5.4),
			},
		},
		{
			name:     "heart rate only",
			readings: domain.Readings{HeartRate: intPtr(64)},
		},
		{
			name:     "no readings",
			readings: domain.Readings{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordedAt := time.Date(2025, time.June, 10, 8, 30, 0, 0, time.UTC)

			vitals, err := domain.NewVitalSigns(recordedAt, tt.readings, "after walk")

			assert.NoError(t, err)
			assert.False(t, vitals.ID().IsZero())
			assert.Equal(t, recordedAt, vitals.RecordedAt())
			assert.Equal(t, tt.readings, vitals.Readings())
			assert.Equal(t, "after walk", vitals.Notes())
		})
	}
}

func TestNewVitalSignsError(t *testing.T) {
	tests := []struct {
		name        string
		recordedAt  time.Time
		readings    domain.Readings
		expectedErr error
	}{
		{
			name:        "missing recorded time",
			recordedAt:  time.Time{},
			readings:    domain.Readings{},
			expectedErr: domain.ErrMissingRecordedAt,
		},
		{
			name:        "negative heart rate",
			recordedAt:  time.Now(),
			readings:    domain.Readings{HeartRate: intPtr(-1)},
			expectedErr: domain.ErrNegativeReading,
		},
		{
			name:        "negative temperature",
			recordedAt:  time.Now(),
			readings:    domain.Readings{Temperature: floatPtr(-0.5)},
			expectedErr: domain.ErrNegativeReading,
		},
		{
			name:        "oxygen above 100",
			recordedAt:  time.Now(),
			readings:    domain.Readings{OxygenSaturation: intPtr(101)},
			expectedErr: domain.ErrOxygenOutOfRange,
		},
		{
			name:        "systolic below diastolic",
			recordedAt:  time.Now(),
			readings:    domain.Readings{SystolicBP: intPtr(70), DiastolicBP: intPtr(90)},
			expectedErr: domain.ErrBloodPressureInverse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewVitalSigns(tt.recordedAt, tt.readings, "")

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
