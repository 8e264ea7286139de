package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-helper/internal/domain"
)

func newTestMedication(t *testing.T, name string, enabled bool, times string) *domain.Medication {
	t.Helper()

	reminder, err := domain.ParseReminderConfig(enabled, times)
	require.NoError(t, err)

	m, err := domain.NewMedication(domain.MedicationDetails{
		Name:      name,
		Dosage:    "10mg",
		Frequency: "daily",
		Notes:     "after breakfast",
	}, reminder)
	require.NoError(t, err)

	return m
}

func newTestVitals(t *testing.T, recordedAt time.Time, heartRate int) *domain.VitalSigns {
	t.Helper()

	v, err := domain.NewVitalSigns(recordedAt, domain.Readings{HeartRate: &heartRate}, "")
	require.NoError(t, err)

	return v
}

func newTestContact(t *testing.T, name string) *domain.EmergencyContact {
	t.Helper()

	c, err := domain.NewEmergencyContact(domain.ContactDetails{
		Name:         name,
		Relationship: "sibling",
		PhonePrimary: "555-0100",
		Email:        "sibling@example.com",
	})
	require.NoError(t, err)

	return c
}
