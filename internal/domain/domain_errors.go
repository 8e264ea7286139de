package domain

import "errors"

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrVitalsNotFound     = errors.New("vital signs not found")
	ErrContactNotFound    = errors.New("emergency contact not found")
	ErrProfileNotFound    = errors.New("profile not found")

	ErrInvalidConfiguration = errors.New("invalid reminder configuration")

	ErrEmptyName         = errors.New("name cannot be empty")
	ErrEmptyDosage       = errors.New("dosage cannot be empty")
	ErrEmptyFrequency    = errors.New("frequency cannot be empty")
	ErrEmptyRelationship = errors.New("relationship cannot be empty")
	ErrEmptyPhone        = errors.New("primary phone cannot be empty")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")

	ErrNegativeReading      = errors.New("vital sign reading cannot be negative")
	ErrOxygenOutOfRange     = errors.New("oxygen saturation must be between 0 and 100")
	ErrBloodPressureInverse = errors.New("systolic pressure must not be lower than diastolic pressure")
	ErrMissingRecordedAt    = errors.New("recorded time is required")

	ErrInvalidBloodType  = errors.New("invalid blood type")
	ErrNegativeMeasure   = errors.New("height and weight cannot be negative")
	ErrFutureDateOfBirth = errors.New("date of birth cannot be in the future")
	ErrInvalidEmail      = errors.New("invalid email address")

	ErrInvalidMedicationID = errors.New("invalid medication ID: must be valid UUIDv7")
	ErrInvalidVitalsID     = errors.New("invalid vital signs ID: must be valid UUIDv7")
	ErrInvalidContactID    = errors.New("invalid emergency contact ID: must be valid UUIDv7")
	ErrInvalidProfileID    = errors.New("invalid profile ID: must be valid UUIDv7")
)
