package domain

import (
	"slices"
	"time"
)

const DefaultProfileFirstName = "Default User"

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type ProfileDetails struct {
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	HeightCM          float64
	WeightKG          float64
	BloodType         string
	Allergies         string
	MedicalConditions string
}

func (d ProfileDetails) validate(now time.Time) error {
	if d.HeightCM < 0 || d.WeightKG < 0 {
		return ErrNegativeMeasure
	}

	if d.BloodType != "" && !slices.Contains(bloodTypes, d.BloodType) {
		return ErrInvalidBloodType
	}

	if truncateToDate(d.DateOfBirth).After(truncateToDate(now)) {
		return ErrFutureDateOfBirth
	}

	return nil
}

// Profile is the single personal profile of the application user.
type Profile struct {
	id        ProfileID
	details   ProfileDetails
	updatedAt time.Time
}

func NewDefaultProfile(now time.Time) *Profile {
	return &Profile{
		id: NewProfileID(),
		details: ProfileDetails{
			FirstName:   DefaultProfileFirstName,
			DateOfBirth: truncateToDate(now),
		},
		updatedAt: now,
	}
}

func ReconstituteProfile(id ProfileID, details ProfileDetails, updatedAt time.Time) *Profile {
	return &Profile{
		id:        id,
		details:   details,
		updatedAt: updatedAt,
	}
}

func (p *Profile) Update(details ProfileDetails) error {
	now := time.Now()

	if err := details.validate(now); err != nil {
		return err
	}

	details.DateOfBirth = truncateToDate(details.DateOfBirth)
	p.details = details
	p.updatedAt = now

	return nil
}

// Age is the number of completed years at now.
func (p *Profile) Age(now time.Time) int {
	dob := p.details.DateOfBirth
	age := now.Year() - dob.Year()

	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}

	return max(age, 0)
}

func (p *Profile) ID() ProfileID {
	return p.id
}

func (p *Profile) Details() ProfileDetails {
	return p.details
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
