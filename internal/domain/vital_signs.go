package domain

import "time"

// Readings holds optional vital sign measurements; nil means not measured.
type Readings struct {
	SystolicBP       *int
	DiastolicBP      *int
	HeartRate        *int
	RespiratoryRate  *int
	OxygenSaturation *int
	Temperature      *float64 // °C
	BloodSugar       *float64
}

func (r Readings) validate() error {
	for _, v := range []*int{r.SystolicBP, r.DiastolicBP, r.HeartRate, r.RespiratoryRate, r.OxygenSaturation} {
		if v != nil && *v < 0 {
			return ErrNegativeReading
		}
	}

	for _, v := range []*float64{r.Temperature, r.BloodSugar} {
		if v != nil && *v < 0 {
			return ErrNegativeReading
		}
	}

	if r.OxygenSaturation != nil && *r.OxygenSaturation > 100 {
		return ErrOxygenOutOfRange
	}

	if r.SystolicBP != nil && r.DiastolicBP != nil && *r.SystolicBP < *r.DiastolicBP {
		return ErrBloodPressureInverse
	}

	return nil
}

type VitalSigns struct {
	id         VitalsID
	recordedAt time.Time
	readings   Readings
	notes      string
	createdAt  time.Time
}

func NewVitalSigns(recordedAt time.Time, readings Readings, notes string) (*VitalSigns, error) {
	if recordedAt.IsZero() {
		return nil, ErrMissingRecordedAt
	}

	if err := readings.validate(); err != nil {
		return nil, err
	}

	return &VitalSigns{
		id:         NewVitalsID(),
		recordedAt: recordedAt,
		readings:   readings,
		notes:      notes,
		createdAt:  time.Now(),
	}, nil
}

func ReconstituteVitalSigns(
	id VitalsID,
	recordedAt time.Time,
	readings Readings,
	notes string,
	createdAt time.Time,
) *VitalSigns {
	return &VitalSigns{
		id:         id,
		recordedAt: recordedAt,
		readings:   readings,
		notes:      notes,
		createdAt:  createdAt,
	}
}

func (v *VitalSigns) ID() VitalsID {
	return v.id
}

func (v *VitalSigns) RecordedAt() time.Time {
	return v.recordedAt
}

func (v *VitalSigns) Readings() Readings {
	return v.readings
}

func (v *VitalSigns) Notes() string {
	return v.notes
}

func (v *VitalSigns) CreatedAt() time.Time {
	return v.createdAt
}
